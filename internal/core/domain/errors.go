package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrStore      = errors.New("failed to authorize user")
)

type FieldErrorCode string

const (
	CodeInvalidEmail    FieldErrorCode = "InvalidEmail"
	CodeDateNotInFuture FieldErrorCode = "DateNotInFuture"
)

const (
	FieldEmail          = "email"
	FieldExpirationDate = "expirationDate"
)

type FieldError struct {
	Field   string         `json:"field"`
	Code    FieldErrorCode `json:"code"`
	Message string         `json:"message"`
}

func InvalidEmail() FieldError {
	return FieldError{Field: FieldEmail, Code: CodeInvalidEmail, Message: "Invalid email address"}
}

func DateNotInFuture() FieldError {
	return FieldError{Field: FieldExpirationDate, Code: CodeDateNotInFuture, Message: "Date must be in the future"}
}

// ValidationError collects every field that failed validation. Its
// messages are safe to show to the operator as is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether code is among the failed fields.
func (e *ValidationError) Has(code FieldErrorCode) bool {
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

// StoreError hides a persistence failure behind a generic message. Ref
// identifies the log entry carrying the underlying cause.
type StoreError struct {
	Ref   uuid.UUID
	cause error
}

func NewStoreError(cause error) *StoreError {
	return &StoreError{Ref: uuid.New(), cause: cause}
}

func (e *StoreError) Error() string {
	return ErrStore.Error()
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.cause
}

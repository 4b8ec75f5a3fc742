package services

import (
	"net/mail"
	"regexp"
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

// local-part "@" domain, with at least one dot in the domain and no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Validator struct {
	clock ports.Clock
}

func NewValidator(clock ports.Clock) *Validator {
	return &Validator{clock: clock}
}

// Validate checks both fields and reports every failure at once.
func (v *Validator) Validate(email string, expirationDate time.Time) error {
	var fields []domain.FieldError

	if !IsValidEmail(email) {
		fields = append(fields, domain.InvalidEmail())
	}
	if !expirationDate.After(v.clock.Now()) {
		fields = append(fields, domain.DateNotInFuture())
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func IsValidEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == email
}

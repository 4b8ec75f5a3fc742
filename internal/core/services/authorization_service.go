package services

import (
	"context"
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

type authorizationService struct {
	validator *Validator
	store     *RecordStore
}

func NewAuthorizationService(validator *Validator, store *RecordStore) ports.AuthorizationService {
	return &authorizationService{
		validator: validator,
		store:     store,
	}
}

// RequestAuthorization returns a *domain.ValidationError for bad input,
// in which case nothing is written, or a *domain.StoreError when the
// write fails.
func (s *authorizationService) RequestAuthorization(ctx context.Context, email string, expirationDate time.Time) error {
	if err := s.validator.Validate(email, expirationDate); err != nil {
		return err
	}

	return s.store.Authorize(ctx, email, expirationDate)
}

func (s *authorizationService) FetchAuthorizedUsers(ctx context.Context) []domain.AuthorizedUserView {
	return s.store.ListAll(ctx)
}

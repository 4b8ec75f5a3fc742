package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
)

// AuthorizedUserRepository persists one record per email. Upsert replaces
// any existing record for the same email in full.
type AuthorizedUserRepository interface {
	Upsert(ctx context.Context, record *domain.AuthorizedUserRecord) error
	ListAll(ctx context.Context) ([]*domain.AuthorizedUserRecord, error)
}

type Clock interface {
	Now() time.Time
}

type AuthorizationService interface {
	RequestAuthorization(ctx context.Context, email string, expirationDate time.Time) error
	FetchAuthorizedUsers(ctx context.Context) []domain.AuthorizedUserView
}

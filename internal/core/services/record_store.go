package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

// RecordStore converts between authorized users and stored records. It
// trusts its inputs; validation happens before Authorize is called.
type RecordStore struct {
	repo  ports.AuthorizedUserRepository
	clock ports.Clock
	log   *zap.Logger
}

func NewRecordStore(repo ports.AuthorizedUserRepository, clock ports.Clock, log *zap.Logger) *RecordStore {
	return &RecordStore{
		repo:  repo,
		clock: clock,
		log:   log,
	}
}

// Authorize writes the grant for email, replacing any previous one. The
// time of day of expirationDate is discarded.
func (s *RecordStore) Authorize(ctx context.Context, email string, expirationDate time.Time) error {
	record := &domain.AuthorizedUserRecord{
		Email:          email,
		ExpirationDate: domain.FormatExpirationDate(expirationDate),
		Authorized:     true,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		storeErr := domain.NewStoreError(err)
		s.log.Error("failed to upsert authorized user",
			zap.Error(err),
			zap.String("email", email),
			zap.String("collection", domain.CollectionAuthorizedUsers),
			zap.String("ref", storeErr.Ref.String()),
		)
		return storeErr
	}

	s.log.Info("authorized user",
		zap.String("email", email),
		zap.String("expiration_date", record.ExpirationDate),
	)
	return nil
}

// ListAll returns every record with its status as of now, in store order.
// Read failures are logged and yield an empty list.
func (s *RecordStore) ListAll(ctx context.Context) []domain.AuthorizedUserView {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list authorized users",
			zap.Error(err),
			zap.String("collection", domain.CollectionAuthorizedUsers),
		)
		return []domain.AuthorizedUserView{}
	}

	now := s.clock.Now()
	views := make([]domain.AuthorizedUserView, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		views = append(views, domain.NewView(*record, now))
	}
	return views
}

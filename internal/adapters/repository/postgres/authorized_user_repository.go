package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

type authorizedUserRepository struct {
	db *sql.DB
}

func NewAuthorizedUserRepository(db *sql.DB) ports.AuthorizedUserRepository {
	return &authorizedUserRepository{
		db: db,
	}
}

func (r *authorizedUserRepository) Upsert(ctx context.Context, record *domain.AuthorizedUserRecord) error {
	query := `
		INSERT INTO authorized_users (email, expiration_date, authorized, created_at)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET expiration_date = EXCLUDED.expiration_date,
		    authorized = EXCLUDED.authorized,
		    created_at = EXCLUDED.created_at
	`
	_, err := r.db.ExecContext(ctx, query, record.Email, record.ExpirationDate, record.Authorized, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert authorized user %s: %w", record.Email, err)
	}
	return nil
}

func (r *authorizedUserRepository) ListAll(ctx context.Context) ([]*domain.AuthorizedUserRecord, error) {
	query := `
		SELECT email, to_char(expiration_date, 'YYYY-MM-DD'), authorized, created_at
		FROM authorized_users
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorized users: %w", err)
	}
	defer rows.Close()

	var records []*domain.AuthorizedUserRecord
	for rows.Next() {
		var record domain.AuthorizedUserRecord
		if err := rows.Scan(&record.Email, &record.ExpirationDate, &record.Authorized, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan authorized user: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authorized users: %w", err)
	}
	return records, nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

// authorizedUserDocument is the stored shape. The email is the document
// id, so a second write for the same email replaces the first.
type authorizedUserDocument struct {
	Email          string    `bson:"_id"`
	ExpirationDate string    `bson:"expirationDate"`
	Authorized     bool      `bson:"authorized"`
	CreatedAt      time.Time `bson:"createdAt"`
}

type authorizedUserRepository struct {
	collection *mongodriver.Collection
}

func NewAuthorizedUserRepository(db *mongodriver.Database) ports.AuthorizedUserRepository {
	return &authorizedUserRepository{
		collection: db.Collection(domain.CollectionAuthorizedUsers),
	}
}

func (r *authorizedUserRepository) Upsert(ctx context.Context, record *domain.AuthorizedUserRecord) error {
	doc := authorizedUserDocument{
		Email:          record.Email,
		ExpirationDate: record.ExpirationDate,
		Authorized:     record.Authorized,
		CreatedAt:      record.CreatedAt,
	}

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.Email}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert authorized user %s: %w", record.Email, err)
	}
	return nil
}

func (r *authorizedUserRepository) ListAll(ctx context.Context) ([]*domain.AuthorizedUserRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list authorized users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []authorizedUserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode authorized users: %w", err)
	}

	records := make([]*domain.AuthorizedUserRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, &domain.AuthorizedUserRecord{
			Email:          doc.Email,
			ExpirationDate: doc.ExpirationDate,
			Authorized:     doc.Authorized,
			CreatedAt:      doc.CreatedAt,
		})
	}
	return records, nil
}

// Connect opens a client for uri and checks that the server answers.
func Connect(ctx context.Context, uri string) (*mongodriver.Client, error) {
	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

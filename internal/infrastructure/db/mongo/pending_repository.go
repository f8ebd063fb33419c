package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movian/movian-api/internal/core/domain"
)

const pendingCollection = "pending_verifications"

// PendingRepository persists not-yet-confirmed registrations keyed by email.
type PendingRepository struct {
	coll *mongo.Collection
}

func NewPendingRepository(db *mongo.Database) *PendingRepository {
	return &PendingRepository{coll: db.Collection(pendingCollection)}
}

type pendingDoc struct {
	Email        string     `bson:"email"`
	Username     string     `bson:"username"`
	PasswordHash string     `bson:"password_hash"`
	DateOfBirth  *time.Time `bson:"date_of_birth,omitempty"`
	TokenID      string     `bson:"token_id"`
	ExpiresAt    time.Time  `bson:"expires_at"`
	CreatedAt    time.Time  `bson:"created_at"`
}

// Upsert replaces any existing pending record for the email in a single
// operation, so a repeat registration supersedes the earlier attempt and its
// token atomically.
func (r *PendingRepository) Upsert(ctx context.Context, pending *domain.PendingVerification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := pendingDoc{
		Email:        pending.Email,
		Username:     pending.Username,
		PasswordHash: pending.PasswordHash,
		DateOfBirth:  pending.DateOfBirth,
		TokenID:      pending.TokenID,
		ExpiresAt:    pending.ExpiresAt,
		CreatedAt:    pending.CreatedAt,
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"email": pending.Email},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert pending verification: %w", err)
	}
	return nil
}

func (r *PendingRepository) FindByEmail(ctx context.Context, email string) (*domain.PendingVerification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc pendingDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVerificationGone
		}
		return nil, fmt.Errorf("find pending verification: %w", err)
	}

	return &domain.PendingVerification{
		Email:        doc.Email,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		DateOfBirth:  doc.DateOfBirth,
		TokenID:      doc.TokenID,
		ExpiresAt:    doc.ExpiresAt,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (r *PendingRepository) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("delete pending verification: %w", err)
	}
	return nil
}

// EnsureIndexes creates the per-email uniqueness constraint and a TTL index
// that garbage-collects expired records. Expiry is still checked at
// verification time; the TTL index only keeps the collection from growing.
func (r *PendingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movian/movian-api/internal/core/domain"
)

const watchlistCollection = "watchlist"

type WatchlistRepository struct {
	coll *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{coll: db.Collection(watchlistCollection)}
}

type watchlistDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	IMDbID    string             `bson:"imdb_id"`
	Title     string             `bson:"title"`
	Poster    string             `bson:"poster,omitempty"`
	Year      string             `bson:"year,omitempty"`
	Type      string             `bson:"type,omitempty"`
	Rating    string             `bson:"rating,omitempty"`
	Runtime   string             `bson:"runtime,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *watchlistDoc) toDomain() *domain.WatchlistEntry {
	return &domain.WatchlistEntry{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		IMDbID:    d.IMDbID,
		Title:     d.Title,
		Poster:    d.Poster,
		Year:      d.Year,
		Type:      d.Type,
		Rating:    d.Rating,
		Runtime:   d.Runtime,
		CreatedAt: d.CreatedAt,
	}
}

// Insert adds a new entry. The unique (user_id, imdb_id) index turns a
// concurrent double-add into a duplicate-key error, which is surfaced as
// domain.ErrDuplicateEntry for the service to treat as success.
func (r *WatchlistRepository) Insert(ctx context.Context, entry *domain.WatchlistEntry) (*domain.WatchlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := watchlistDoc{
		UserID:    entry.UserID,
		IMDbID:    entry.IMDbID,
		Title:     entry.Title,
		Poster:    entry.Poster,
		Year:      entry.Year,
		Type:      entry.Type,
		Rating:    entry.Rating,
		Runtime:   entry.Runtime,
		CreatedAt: entry.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert watchlist entry: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *WatchlistRepository) FindOne(ctx context.Context, userID, imdbID string) (*domain.WatchlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc watchlistDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "imdb_id": imdbID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find watchlist entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WatchlistRepository) FindByUser(ctx context.Context, userID string) ([]*domain.WatchlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.WatchlistEntry, 0)
	for cur.Next(ctx) {
		var doc watchlistDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode watchlist entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, cur.Err()
}

// Delete removes the matching entry. A zero delete count is not an error:
// removal is idempotent.
func (r *WatchlistRepository) Delete(ctx context.Context, userID, imdbID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "imdb_id": imdbID}); err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) Exists(ctx context.Context, userID, imdbID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.coll.FindOne(ctx,
		bson.M{"user_id": userID, "imdb_id": imdbID},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check watchlist entry: %w", err)
	}
	return true, nil
}

// EnsureIndexes creates the compound uniqueness constraint that makes the
// add operation race-safe, plus the sort index for newest-first listing.
func (r *WatchlistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "imdb_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

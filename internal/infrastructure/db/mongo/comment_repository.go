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

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MovieID   string             `bson:"movie_id"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Text      string             `bson:"text"`
	Replies   []domain.Reply     `bson:"replies"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	replies := d.Replies
	if replies == nil {
		replies = []domain.Reply{}
	}
	return &domain.Comment{
		ID:        d.ID.Hex(),
		MovieID:   d.MovieID,
		UserID:    d.UserID,
		Username:  d.Username,
		Text:      d.Text,
		Replies:   replies,
		CreatedAt: d.CreatedAt,
	}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		MovieID:   comment.MovieID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		Text:      comment.Text,
		Replies:   comment.Replies,
		CreatedAt: comment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error) {
	return r.find(ctx, bson.M{"movie_id": movieID})
}

func (r *CommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	return r.find(ctx, bson.M{})
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]*domain.Comment, 0)
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	return comments, cur.Err()
}

// Delete hard-deletes a comment along with its embedded replies.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// PushReply appends a reply atomically; insertion order is the display order.
func (r *CommentRepository) PushReply(ctx context.Context, id string, reply domain.Reply) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"replies": reply}})
	if err != nil {
		return fmt.Errorf("push reply: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// EnsureIndexes creates the read-path indexes for newest-first listings.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "movie_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// CommentRepository defines persistence for movie comments and their
// embedded admin replies. Listings are newest-first by creation time.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	PushReply(ctx context.Context, id string, reply domain.Reply) error
}

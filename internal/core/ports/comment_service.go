package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// AddCommentInput carries a new comment. Username is resolved server-side
// from the authenticated user, never taken from the client payload.
type AddCommentInput struct {
	MovieID  string
	UserID   string
	Username string
	Text     string
}

// CommentService defines the user-facing comment operations. Moderation
// (delete, reply, list-all) lives on AdminService.
type CommentService interface {
	Add(ctx context.Context, input AddCommentInput) (*domain.Comment, error)
	ListByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error)
}

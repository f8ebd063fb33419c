package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// AdminService defines the moderation surface. The admin is a single
// environment-configured identity, not a row in the users collection, so
// Login compares credentials against configuration rather than storage.
type AdminService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// ToggleBan flips the target's banned flag and returns the updated user.
	// Enforcement is read-time: the user guard re-checks the flag on every
	// request, so existing tokens die on their next use.
	ToggleBan(ctx context.Context, userID string) (*domain.User, error)
	ListComments(ctx context.Context) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	ReplyToComment(ctx context.Context, commentID, adminName, text string) (*domain.Comment, error)
}

package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts. Email lookups
// are case-insensitive: implementations store and query lowercase emails.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetBanned(ctx context.Context, id string, banned bool) (*domain.User, error)
}

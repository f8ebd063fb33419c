package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// PendingVerificationRepository defines persistence for not-yet-confirmed
// registrations. Upsert replaces any existing record for the same email, so
// at most one pending registration exists per address.
type PendingVerificationRepository interface {
	Upsert(ctx context.Context, pending *domain.PendingVerification) error
	FindByEmail(ctx context.Context, email string) (*domain.PendingVerification, error)
	Delete(ctx context.Context, email string) error
}

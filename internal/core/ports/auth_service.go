package ports

import (
	"context"
	"time"

	"github.com/movian/movian-api/internal/core/domain"
)

// RegisterInput carries a new registration attempt.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DateOfBirth *time.Time
}

// AuthService defines the user identity lifecycle: registration with email
// verification, login, and password recovery.
type AuthService interface {
	// Register validates the input, stores a pending verification record
	// (superseding any prior attempt for the same email), and sends the
	// verification link. No user account exists until VerifyEmail succeeds.
	Register(ctx context.Context, input RegisterInput) error

	// VerifyEmail consumes the pending record matching the token, creates
	// the verified user, and returns a fresh session token with the user.
	VerifyEmail(ctx context.Context, token string) (string, *domain.User, error)

	// Login authenticates by email and password and returns a session token.
	// Banned accounts are rejected here as well as at the guard, so a ban can
	// never mint a fresh session.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// ForgotPassword sends a reset link when the account exists. It reports
	// success either way to avoid account enumeration.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword validates the reset token and replaces the password hash.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBanned         = errors.New("account has been banned")
	ErrTokenExpired       = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrVerificationGone   = errors.New("verification record not found")
	ErrAdminCredentials   = errors.New("invalid admin credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// User models a registered account. Accounts only come into existence after
// the email verification step; an unverified registration lives in
// PendingVerification instead.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	IsVerified   bool       `json:"is_verified"`
	IsBanned     bool       `json:"is_banned"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Sanitized returns a copy safe to attach to a request context or return to
// a client: the password hash is never carried past the guard boundary.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// PendingVerification holds a registration that has not yet confirmed its
// email address. At most one active record exists per email; a repeat
// registration supersedes the previous record and its token.
type PendingVerification struct {
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	// TokenID pins the jti of the currently valid verification token. A
	// superseded link fails this check even before its cryptographic expiry.
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the record is past its absolute expiry. Expiry is
// checked at verification time rather than enforced by a timer, so pending
// records survive process restarts.
func (p *PendingVerification) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements the user identity lifecycle. Accounts are created
// only when an emailed verification link is consumed; until then the
// registration lives as a pending record that a repeat attempt supersedes.
type AuthService struct {
	users   ports.UserRepository
	pending ports.PendingVerificationRepository
	tokens  *TokenService
	mailer  ports.Mailer
	logger  zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	pending ports.PendingVerificationRepository,
	tokens *TokenService,
	mailer ports.Mailer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, pending: pending, tokens: tokens, mailer: mailer, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" {
		return domain.ErrInvalidCredentials
	}
	if len(input.Password) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return err
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	token, jti, err := s.tokens.IssueVerificationToken(email)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record := &domain.PendingVerification{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		DateOfBirth:  input.DateOfBirth,
		TokenID:      jti,
		ExpiresAt:    now.Add(VerificationTTL),
		CreatedAt:    now,
	}
	// Upsert keyed by email: a second registration attempt replaces the
	// earlier pending record and its token in one step.
	if err := s.pending.Upsert(ctx, record); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationEmail(email, username, token); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("registration pending verification")
	return nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (string, *domain.User, error) {
	claims, err := s.tokens.ParseVerificationToken(token)
	if err != nil {
		return "", nil, err
	}

	record, err := s.pending.FindByEmail(ctx, claims.Email)
	if err != nil {
		return "", nil, err
	}
	// A superseding registration rotated the jti; older links stop working
	// even though they verify cryptographically.
	if record.TokenID != claims.TokenID {
		return "", nil, domain.ErrTokenInvalid
	}
	if record.Expired(time.Now().UTC()) {
		return "", nil, domain.ErrTokenExpired
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		DateOfBirth:  record.DateOfBirth,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if err == domain.ErrUserExists {
			// Someone claimed the username or email while this record was
			// pending. Consume the record; the link is spent either way.
			_ = s.pending.Delete(ctx, record.Email)
		}
		return "", nil, err
	}

	if err := s.pending.Delete(ctx, record.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", record.Email).Msg("failed to delete consumed pending record")
	}

	session, err := s.tokens.IssueUserToken(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("email verified, account created")
	return session, created.Sanitized(), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.IsBanned {
		return "", nil, domain.ErrUserBanned
	}

	token, err := s.tokens.IssueUserToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user.Sanitized(), nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Report success regardless so the endpoint cannot be used to
			// probe which addresses have accounts.
			s.logger.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendResetEmail(user.Email, user.Username, token); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset email sent")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.ParseResetToken(token)
	if err != nil {
		return err
	}
	if len(newPassword) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password reset completed")
	return nil
}

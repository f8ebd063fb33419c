package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// AdminCredentials is the single configured admin identity. There is no table
// of admin accounts: two authorization domains exist, one persisted with many
// identities (users) and one configured with exactly one (this).
type AdminCredentials struct {
	Email    string
	Password string
	Name     string
}

// AdminService implements admin login and the moderation operations.
type AdminService struct {
	creds    AdminCredentials
	users    ports.UserRepository
	comments ports.CommentRepository
	tokens   *TokenService
	logger   zerolog.Logger
}

func NewAdminService(
	creds AdminCredentials,
	users ports.UserRepository,
	comments ports.CommentRepository,
	tokens *TokenService,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{creds: creds, users: users, comments: comments, tokens: tokens, logger: logger}
}

// Login compares both supplied fields against configuration in constant time.
// The caller learns only that the pair did not match, never which half failed.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	if s.creds.Email == "" || s.creds.Password == "" {
		s.logger.Error().Msg("admin credentials not configured")
		return "", domain.ErrAdminCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(strings.ToLower(s.creds.Email)))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password))
	if emailOK&passOK != 1 {
		return "", domain.ErrAdminCredentials
	}

	token, err := s.tokens.IssueAdminToken(s.creds.Email, s.creds.Name)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("admin", s.creds.Email).Msg("admin logged in")
	return token, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}
	return users, nil
}

// ToggleBan flips the target's banned flag. The target's existing session
// token stays cryptographically valid until expiry; the user guard's live
// database check makes the ban bite on the very next request instead.
func (s *AdminService) ToggleBan(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.SetBanned(ctx, userID, !user.IsBanned)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Bool("banned", updated.IsBanned).
		Msg("ban flag toggled")
	return updated.Sanitized(), nil
}

func (s *AdminService) ListComments(ctx context.Context) ([]*domain.Comment, error) {
	return s.comments.FindAll(ctx)
}

func (s *AdminService) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", commentID).Msg("comment deleted by moderation")
	return nil
}

// ReplyToComment appends a reply carrying the acting admin's display name.
// Replies are append-only; there is no edit or delete for individual replies.
func (s *AdminService) ReplyToComment(ctx context.Context, commentID, adminName, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrReplyText
	}

	reply := domain.Reply{
		AdminName: adminName,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.PushReply(ctx, commentID, reply); err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", commentID).Str("admin", adminName).Msg("reply appended")
	return s.comments.FindByID(ctx, commentID)
}

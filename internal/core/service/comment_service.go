package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// CommentService implements the user-facing comment operations. The
// commenter's username is resolved server-side by the guard and denormalized
// onto the comment at write time for join-free reads.
type CommentService struct {
	repo   ports.CommentRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger}
}

func (s *CommentService) Add(ctx context.Context, input ports.AddCommentInput) (*domain.Comment, error) {
	movieID := strings.TrimSpace(input.MovieID)
	if movieID == "" {
		return nil, domain.ErrMovieIDRequired
	}
	if !domain.ValidCommentText(input.Text) {
		return nil, domain.ErrCommentText
	}

	comment := &domain.Comment{
		MovieID:   movieID,
		UserID:    input.UserID,
		Username:  input.Username,
		Text:      strings.TrimSpace(input.Text),
		Replies:   []domain.Reply{},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("movie_id", movieID).Str("user_id", input.UserID).Msg("comment posted")
	return created, nil
}

func (s *CommentService) ListByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error) {
	if strings.TrimSpace(movieID) == "" {
		return nil, domain.ErrMovieIDRequired
	}
	return s.repo.FindByMovie(ctx, movieID)
}

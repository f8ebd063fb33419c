package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

func TestCommentService_Add(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	comment, err := svc.Add(context.Background(), ports.AddCommentInput{
		MovieID:  "tt0111161",
		UserID:   "user_1",
		Username: "alice",
		Text:     "  loved it  ",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if comment.ID == "" {
		t.Fatalf("expected stored comment with id")
	}
	if comment.Text != "loved it" {
		t.Fatalf("text should be trimmed, got %q", comment.Text)
	}
	if comment.Replies == nil || len(comment.Replies) != 0 {
		t.Fatalf("expected empty non-nil replies, got %v", comment.Replies)
	}
}

func TestCommentService_Add_MissingMovieID(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), zerolog.Nop())

	_, err := svc.Add(context.Background(), ports.AddCommentInput{Text: "hi"})
	if err != domain.ErrMovieIDRequired {
		t.Fatalf("expected ErrMovieIDRequired, got %v", err)
	}
}

func TestCommentService_Add_TextBounds(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), zerolog.Nop())

	for _, text := range []string{"", "   ", strings.Repeat("a", domain.CommentMaxLen+1)} {
		_, err := svc.Add(context.Background(), ports.AddCommentInput{MovieID: "tt0111161", Text: text})
		if err != domain.ErrCommentText {
			t.Fatalf("expected ErrCommentText for %d chars, got %v", len(text), err)
		}
	}

	// Exactly at the limit is fine.
	if _, err := svc.Add(context.Background(), ports.AddCommentInput{
		MovieID: "tt0111161", Text: strings.Repeat("a", domain.CommentMaxLen),
	}); err != nil {
		t.Fatalf("max-length comment should pass, got %v", err)
	}
}

func TestCommentService_Add_MultibyteText(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), zerolog.Nop())

	// The bound counts characters, not bytes: 300 two-byte runes are well
	// within the limit even though the byte length exceeds it.
	if _, err := svc.Add(context.Background(), ports.AddCommentInput{
		MovieID: "tt0111161", Text: strings.Repeat("é", 300),
	}); err != nil {
		t.Fatalf("300-char multibyte comment should pass, got %v", err)
	}

	if _, err := svc.Add(context.Background(), ports.AddCommentInput{
		MovieID: "tt0111161", Text: strings.Repeat("é", domain.CommentMaxLen+1),
	}); err != domain.ErrCommentText {
		t.Fatalf("expected ErrCommentText past the rune limit, got %v", err)
	}
}

func TestCommentService_ListByMovie(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	for _, movie := range []string{"tt0111161", "tt0111161", "tt0068646"} {
		if _, err := svc.Add(context.Background(), ports.AddCommentInput{
			MovieID: movie, UserID: "user_1", Username: "alice", Text: "hi",
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	comments, err := svc.ListByMovie(context.Background(), "tt0111161")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
}

func TestCommentService_ListByMovie_MissingID(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), zerolog.Nop())

	if _, err := svc.ListByMovie(context.Background(), " "); err != domain.ErrMovieIDRequired {
		t.Fatalf("expected ErrMovieIDRequired, got %v", err)
	}
}

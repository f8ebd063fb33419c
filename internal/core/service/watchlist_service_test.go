package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

type stubWatchlistRepo struct {
	entries map[string]*domain.WatchlistEntry
	nextID  int
}

func newStubWatchlistRepo() *stubWatchlistRepo {
	return &stubWatchlistRepo{entries: make(map[string]*domain.WatchlistEntry)}
}

func watchlistKey(userID, imdbID string) string {
	return userID + "/" + imdbID
}

func (r *stubWatchlistRepo) Insert(_ context.Context, entry *domain.WatchlistEntry) (*domain.WatchlistEntry, error) {
	key := watchlistKey(entry.UserID, entry.IMDbID)
	if _, ok := r.entries[key]; ok {
		return nil, domain.ErrDuplicateEntry
	}
	r.nextID++
	copy := *entry
	copy.ID = "entry_" + strconv.Itoa(r.nextID)
	r.entries[key] = &copy
	stored := copy
	return &stored, nil
}

func (r *stubWatchlistRepo) FindOne(_ context.Context, userID, imdbID string) (*domain.WatchlistEntry, error) {
	if e, ok := r.entries[watchlistKey(userID, imdbID)]; ok {
		copy := *e
		return &copy, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (r *stubWatchlistRepo) FindByUser(_ context.Context, userID string) ([]*domain.WatchlistEntry, error) {
	var out []*domain.WatchlistEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubWatchlistRepo) Delete(_ context.Context, userID, imdbID string) error {
	delete(r.entries, watchlistKey(userID, imdbID))
	return nil
}

func (r *stubWatchlistRepo) Exists(_ context.Context, userID, imdbID string) (bool, error) {
	_, ok := r.entries[watchlistKey(userID, imdbID)]
	return ok, nil
}

func TestWatchlistService_Add(t *testing.T) {
	repo := newStubWatchlistRepo()
	svc := NewWatchlistService(repo, zerolog.Nop())

	entry, created, err := svc.Add(context.Background(), "user_1", ports.AddWatchlistInput{
		IMDbID: "tt0111161",
		Title:  "The Shawshank Redemption",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !created {
		t.Fatalf("first add should report created")
	}
	if entry.ID == "" {
		t.Fatalf("expected stored entry with id")
	}

	exists, err := svc.Exists(context.Background(), "user_1", "tt0111161")
	if err != nil || !exists {
		t.Fatalf("expected entry to exist, got %v/%v", exists, err)
	}
}

func TestWatchlistService_Add_MissingID(t *testing.T) {
	svc := NewWatchlistService(newStubWatchlistRepo(), zerolog.Nop())

	if _, _, err := svc.Add(context.Background(), "user_1", ports.AddWatchlistInput{IMDbID: "  "}); err != domain.ErrMovieIDRequired {
		t.Fatalf("expected ErrMovieIDRequired, got %v", err)
	}
}

func TestWatchlistService_Add_DuplicateIsSuccess(t *testing.T) {
	repo := newStubWatchlistRepo()
	svc := NewWatchlistService(repo, zerolog.Nop())

	input := ports.AddWatchlistInput{IMDbID: "tt0111161", Title: "The Shawshank Redemption"}
	first, created, err := svc.Add(context.Background(), "user_1", input)
	if err != nil || !created {
		t.Fatalf("first add: created=%v err=%v", created, err)
	}

	again, created, err := svc.Add(context.Background(), "user_1", input)
	if err != nil {
		t.Fatalf("re-add must succeed, got %v", err)
	}
	if created {
		t.Fatalf("re-add should report an existing entry")
	}
	// The dedup path returns the stored record, not a fresh id-less copy.
	if again.ID != first.ID {
		t.Fatalf("re-add returned id %q, want stored id %q", again.ID, first.ID)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(repo.entries))
	}
}

func TestWatchlistService_Add_SameMovieDifferentUsers(t *testing.T) {
	repo := newStubWatchlistRepo()
	svc := NewWatchlistService(repo, zerolog.Nop())

	input := ports.AddWatchlistInput{IMDbID: "tt0111161"}
	if _, _, err := svc.Add(context.Background(), "user_1", input); err != nil {
		t.Fatalf("user_1 add: %v", err)
	}
	if _, _, err := svc.Add(context.Background(), "user_2", input); err != nil {
		t.Fatalf("user_2 add: %v", err)
	}
	if len(repo.entries) != 2 {
		t.Fatalf("uniqueness is per user, expected 2 entries, got %d", len(repo.entries))
	}
}

func TestWatchlistService_Remove_AbsentIsSuccess(t *testing.T) {
	svc := NewWatchlistService(newStubWatchlistRepo(), zerolog.Nop())

	if err := svc.Remove(context.Background(), "user_1", "tt0111161"); err != nil {
		t.Fatalf("removing an absent entry must succeed, got %v", err)
	}
}

func TestWatchlistService_Remove_MissingID(t *testing.T) {
	svc := NewWatchlistService(newStubWatchlistRepo(), zerolog.Nop())

	if err := svc.Remove(context.Background(), "user_1", ""); err != domain.ErrMovieIDRequired {
		t.Fatalf("expected ErrMovieIDRequired, got %v", err)
	}
}

func TestWatchlistService_RemoveThenCheck(t *testing.T) {
	repo := newStubWatchlistRepo()
	svc := NewWatchlistService(repo, zerolog.Nop())

	if _, _, err := svc.Add(context.Background(), "user_1", ports.AddWatchlistInput{IMDbID: "tt0111161"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(context.Background(), "user_1", "tt0111161"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	exists, err := svc.Exists(context.Background(), "user_1", "tt0111161")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("entry should be gone")
	}
}

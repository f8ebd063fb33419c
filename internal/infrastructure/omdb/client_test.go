package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/movian/movian-api/internal/core/domain"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "key123" {
			t.Fatalf("api key not sent: %v", q)
		}
		if q.Get("s") != "shawshank" || q.Get("page") != "2" || q.Get("type") != "movie" {
			t.Fatalf("unexpected query: %v", q)
		}
		w.Write([]byte(`{
			"Search": [{"Title":"The Shawshank Redemption","Year":"1994","imdbID":"tt0111161","Type":"movie","Poster":"http://img"}],
			"totalResults": "14",
			"Response": "True"
		}`))
	}))
	defer srv.Close()

	client := NewClient("key123", srv.URL)
	items, total, err := client.Search(context.Background(), "shawshank", 2, "movie")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 14 {
		t.Fatalf("expected total 14, got %d", total)
	}
	if len(items) != 1 || items[0].IMDbID != "tt0111161" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestClient_Search_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	client := NewClient("key123", srv.URL)
	items, total, err := client.Search(context.Background(), "zzzz", 1, "")
	if err != nil {
		t.Fatalf("no matches is not an error: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Fatalf("expected empty page, got %d items / total %d", len(items), total)
	}
}

func TestClient_ByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("i") != "tt0111161" || q.Get("plot") != "full" {
			t.Fatalf("unexpected query: %v", q)
		}
		w.Write([]byte(`{
			"Title":"The Shawshank Redemption","Year":"1994","Runtime":"142 min",
			"imdbRating":"9.3","imdbID":"tt0111161","Type":"movie","Response":"True"
		}`))
	}))
	defer srv.Close()

	client := NewClient("key123", srv.URL)
	detail, err := client.ByID(context.Background(), "tt0111161")
	if err != nil {
		t.Fatalf("by id failed: %v", err)
	}
	if detail.IMDbID != "tt0111161" || detail.IMDbRating != "9.3" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestClient_ByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	}))
	defer srv.Close()

	client := NewClient("key123", srv.URL)
	if _, err := client.ByID(context.Background(), "bogus"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("key123", srv.URL)
	if _, _, err := client.Search(context.Background(), "x", 1, ""); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

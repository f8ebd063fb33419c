package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
		return nil
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) SetBanned(_ context.Context, id string, banned bool) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		u.IsBanned = banned
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func userToken(t *testing.T, id string) string {
	return signToken(t, jwt.MapClaims{
		"id":  id,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
}

func adminToken(t *testing.T) string {
	return signToken(t, jwt.MapClaims{
		"admin": true,
		"email": "admin@movian.dev",
		"name":  "Root",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
}

func runAuth(t *testing.T, repo *stubUserRepo, decorate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", repo)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidCookie(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "user_1", Username: "alice", PasswordHash: "hash"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: userToken(t, "user_1")})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", repo)(func(c echo.Context) error {
		user, ok := c.Get(ContextUserKey).(*domain.User)
		if !ok || user.Username != "alice" {
			t.Fatalf("expected user in context, got %v", c.Get(ContextUserKey))
		}
		if user.PasswordHash != "" {
			t.Fatalf("context user must be sanitized")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_BearerFallback(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "user_1", Username: "alice"})

	rec, called := runAuth(t, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+userToken(t, "user_1"))
	})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected bearer header to authenticate, got %d", rec.Code)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	rec, called := runAuth(t, newStubUserRepo(), nil)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "user_1"})
	expired := signToken(t, jwt.MapClaims{
		"id":  "user_1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	rec, called := runAuth(t, repo, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: expired})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuth_AdminTokenRejected(t *testing.T) {
	rec, called := runAuth(t, newStubUserRepo(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: adminToken(t)})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("admin token on a user route must be 403, got %d", rec.Code)
	}
}

func TestAuth_BannedUser(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "user_1", IsBanned: true})

	// The token predates the ban and is still cryptographically valid; the
	// live lookup is what rejects it.
	rec, called := runAuth(t, repo, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: userToken(t, "user_1")})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for banned user, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	rec, called := runAuth(t, newStubUserRepo(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: userToken(t, "ghost")})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted account, got %d", rec.Code)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	rec, called := runAuth(t, newStubUserRepo(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: "not-a-token"})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runAdmin(t *testing.T, decorate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Admin("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAdmin_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: adminToken(t)})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Admin("secret")(func(c echo.Context) error {
		if c.Get(ContextAdminEmailKey) != "admin@movian.dev" {
			t.Fatalf("admin email not set: %v", c.Get(ContextAdminEmailKey))
		}
		if c.Get(ContextAdminNameKey) != "Root" {
			t.Fatalf("admin name not set: %v", c.Get(ContextAdminNameKey))
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

func TestAdmin_MissingToken(t *testing.T) {
	rec, called := runAdmin(t, nil)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdmin_UserTokenRejected(t *testing.T) {
	rec, called := runAdmin(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: AdminCookie, Value: userToken(t, "user_1")})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user token on an admin route must be 403, got %d", rec.Code)
	}
}

func TestAdmin_GarbageToken(t *testing.T) {
	rec, called := runAdmin(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "not-a-token"})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdmin_SeparateCookies(t *testing.T) {
	// A user session cookie alone never satisfies the admin guard, even when
	// both cookies could coexist in the same browser.
	rec, called := runAdmin(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: userToken(t, "user_1")})
	})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

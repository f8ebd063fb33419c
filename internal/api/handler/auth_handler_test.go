package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/middleware"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) error
	verifyFn   func(ctx context.Context, token string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	forgotFn   func(ctx context.Context, email string) error
	resetFn    func(ctx context.Context, token, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) VerifyEmail(ctx context.Context, token string) (string, *domain.User, error) {
	return s.verifyFn(ctx, token)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.forgotFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetFn(ctx, token, newPassword)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) error {
			if input.Username != "alice" || input.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub, true)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@example.com","password":"s3cret1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if sessionCookie(rec, middleware.UserCookie) != nil {
		t.Fatalf("registration must not open a session")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, true)

	cases := []string{
		`{"username":"al","email":"a@example.com","password":"s3cret1"}`,
		`{"username":"alice","email":"not-an-email","password":"s3cret1"}`,
		`{"username":"alice","email":"a@example.com","password":"short"}`,
		`{"username":"alice","email":"a@example.com","password":"s3cret1","date_of_birth":"01-02-1990"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(http.MethodPost, "/api/auth/register", body)
		err := handler.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "user_1", Username: "alice"}, nil
		},
	}
	handler := NewAuthHandler(stub, true)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"a@example.com","password":"s3cret1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(rec, middleware.UserCookie)
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %s", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, true)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"a@example.com","password":"wrong"}`)
	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if sessionCookie(rec, middleware.UserCookie) != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, true)

	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := sessionCookie(rec, middleware.UserCookie)
	if cookie == nil {
		t.Fatalf("expected clearing cookie")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, true)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.ContextUserKey, &domain.User{ID: "user_1", Username: "alice"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_VerifyEmail_SetsCookie(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, token string) (string, *domain.User, error) {
			if token != "the-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return "session-token", &domain.User{ID: "user_1", IsVerified: true}, nil
		},
	}
	handler := NewAuthHandler(stub, true)

	c, rec := newTestContext(http.MethodGet, "/api/auth/verify-email/the-token", "")
	c.SetParamNames("token")
	c.SetParamValues("the-token")

	if err := handler.VerifyEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if sessionCookie(rec, middleware.UserCookie) == nil {
		t.Fatalf("verification must open a session")
	}
}

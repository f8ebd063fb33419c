package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/metrics"
	"github.com/movian/movian-api/internal/api/middleware"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// AuthHandler handles the user identity lifecycle endpoints.
type AuthHandler struct {
	authService ports.AuthService
	devCookies  bool
}

func NewAuthHandler(authService ports.AuthService, devCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, devCookies: devCookies}
}

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type sessionResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// Register starts a registration; the account is created on email verification.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must match the format 2006-01-02")
		}
		dob = &parsed
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: dob,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Success: true,
		Message: "verification email sent",
	})
}

// VerifyEmail consumes an emailed verification link and opens a session.
//
// @Summary      Verify email address
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Verification token"
// @Success      200    {object}  sessionResponse
// @Failure      401    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Router       /auth/verify-email/{token} [get]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token, user, err := h.authService.VerifyEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	setSessionCookie(c, middleware.UserCookie, token, h.devCookies)
	return c.JSON(http.StatusOK, sessionResponse{Success: true, User: user})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	setSessionCookie(c, middleware.UserCookie, token, h.devCookies)
	return c.JSON(http.StatusOK, sessionResponse{Success: true, User: user})
}

// Logout clears the session cookie. The token itself is simply discarded;
// there is no server-side revocation list.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, middleware.UserCookie, h.devCookies)
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "logged out"})
}

// Me returns the authenticated user attached by the guard.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Success: true, User: user})
}

// ForgotPassword sends a reset link. The response is identical whether or
// not the address has an account.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "if the account exists, a reset email has been sent",
	})
}

// ResetPassword sets a new password from an emailed reset link.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  messageResponse
// @Router       /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), c.Param("token"), req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "password updated"})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/metrics"
	"github.com/movian/movian-api/internal/api/middleware"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// AdminHandler handles admin login and the moderation endpoints. Everything
// except Login sits behind the admin guard.
type AdminHandler struct {
	service    ports.AdminService
	devCookies bool
}

func NewAdminHandler(service ports.AdminService, devCookies bool) *AdminHandler {
	return &AdminHandler{service: service, devCookies: devCookies}
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminSessionResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type usersResponse struct {
	Success bool           `json:"success"`
	Users   []*domain.User `json:"users"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// Login authenticates the configured admin identity and sets the adminToken
// cookie. The rejection does not reveal which credential failed.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	setSessionCookie(c, middleware.AdminCookie, token, h.devCookies)
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "admin logged in"})
}

// Session returns the admin claims attached by the guard, confirming the
// cookie still opens the moderation panel.
//
// @Summary      Admin session check
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminSessionResponse
// @Failure      401  {object}  messageResponse
// @Router       /admin/session [get]
func (h *AdminHandler) Session(c echo.Context) error {
	email, name, err := adminIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminSessionResponse{Success: true, Email: email, Name: name})
}

// ListUsers returns every registered account, passwords excluded.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  messageResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

// ToggleBan flips the target's banned flag and returns the updated user.
//
// @Summary      Toggle a user ban
// @Tags         admin
// @Produce      json
// @Param        userId  path      string  true  "User identifier"
// @Success      200     {object}  userResponse
// @Failure      404     {object}  messageResponse
// @Router       /admin/ban/{userId} [put]
func (h *AdminHandler) ToggleBan(c echo.Context) error {
	user, err := h.service.ToggleBan(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("ban_toggle").Inc()
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// ListComments returns every comment across all movies, newest first.
//
// @Summary      List all comments
// @Tags         admin
// @Produce      json
// @Success      200  {object}  commentsResponse
// @Failure      401  {object}  messageResponse
// @Router       /admin/comments [get]
func (h *AdminHandler) ListComments(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentsResponse{Success: true, Comments: comments})
}

// DeleteComment hard-deletes a comment and its embedded replies.
//
// @Summary      Delete a comment
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Comment identifier"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/comments/{id} [delete]
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	if err := h.service.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("delete_comment").Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "comment deleted"})
}

type replyRequest struct {
	Text string `json:"text" validate:"required"`
}

// Reply appends a reply carrying the acting admin's display name.
//
// @Summary      Reply to a comment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Comment identifier"
// @Param        body  body      replyRequest  true  "Reply text"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /admin/comments/reply/{id} [post]
func (h *AdminHandler) Reply(c echo.Context) error {
	_, name, err := adminIdentity(c)
	if err != nil {
		return err
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.ReplyToComment(c.Request().Context(), c.Param("id"), name, req.Text)
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("reply").Inc()
	return c.JSON(http.StatusOK, commentResponse{Success: true, Comment: comment})
}

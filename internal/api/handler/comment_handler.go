package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/metrics"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// CommentHandler handles the user-facing comment endpoints. Listing is
// public; posting sits behind the user guard.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	Text    string `json:"text" validate:"required,min=1,max=500"`
}

type commentResponse struct {
	Success bool            `json:"success"`
	Comment *domain.Comment `json:"comment"`
}

type commentsResponse struct {
	Success  bool              `json:"success"`
	Comments []*domain.Comment `json:"comments"`
}

// Add posts a comment. The username stored on the comment is resolved from
// the authenticated user, never from the payload.
//
// @Summary      Post a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /comments/add [post]
func (h *CommentHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Add(c.Request().Context(), ports.AddCommentInput{
		MovieID:  req.MovieID,
		UserID:   user.ID,
		Username: user.Username,
		Text:     req.Text,
	})
	if err != nil {
		return err
	}

	metrics.CommentsPostedTotal.Inc()
	return c.JSON(http.StatusCreated, commentResponse{Success: true, Comment: comment})
}

// ListByMovie returns a movie's comments newest-first. No cookie required.
//
// @Summary      List comments for a movie
// @Tags         comments
// @Produce      json
// @Param        movieId  path      string  true  "External movie identifier"
// @Success      200      {object}  commentsResponse
// @Router       /comments/{movieId} [get]
func (h *CommentHandler) ListByMovie(c echo.Context) error {
	comments, err := h.service.ListByMovie(c.Request().Context(), c.Param("movieId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentsResponse{Success: true, Comments: comments})
}

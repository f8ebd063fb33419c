package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/metrics"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// WatchlistHandler handles the per-user saved-movie endpoints. Every route
// sits behind the user guard.
type WatchlistHandler struct {
	service ports.WatchlistService
}

func NewWatchlistHandler(service ports.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

type addWatchlistRequest struct {
	IMDbID  string `json:"imdbID" validate:"required"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
	Year    string `json:"year"`
	Type    string `json:"type"`
	Rating  string `json:"rating"`
	Runtime string `json:"runtime"`
}

type watchlistEntryResponse struct {
	Success bool                   `json:"success"`
	Entry   *domain.WatchlistEntry `json:"entry"`
}

type watchlistResponse struct {
	Success bool                     `json:"success"`
	Entries []*domain.WatchlistEntry `json:"entries"`
}

type watchlistCheckResponse struct {
	Success bool `json:"success"`
	Exists  bool `json:"exists"`
}

// Add saves a movie to the caller's list. Re-adding an already saved movie
// reports success without creating a duplicate.
//
// @Summary      Add a movie to the watchlist
// @Tags         mylist
// @Accept       json
// @Produce      json
// @Param        body  body      addWatchlistRequest  true  "Movie reference"
// @Success      200   {object}  watchlistEntryResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /mylist/add [post]
func (h *WatchlistHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.IMDbID == "" {
		return domain.ErrMovieIDRequired
	}

	entry, created, err := h.service.Add(c.Request().Context(), user.ID, ports.AddWatchlistInput{
		IMDbID:  req.IMDbID,
		Title:   req.Title,
		Poster:  req.Poster,
		Year:    req.Year,
		Type:    req.Type,
		Rating:  req.Rating,
		Runtime: req.Runtime,
	})
	if err != nil {
		return err
	}

	result := "created"
	if !created {
		result = "existing"
	}
	metrics.WatchlistOpsTotal.WithLabelValues("add", result).Inc()
	return c.JSON(http.StatusOK, watchlistEntryResponse{Success: true, Entry: entry})
}

// List returns the caller's saved movies, newest first.
//
// @Summary      List the watchlist
// @Tags         mylist
// @Produce      json
// @Success      200  {object}  watchlistResponse
// @Failure      401  {object}  messageResponse
// @Router       /mylist/all [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, watchlistResponse{Success: true, Entries: entries})
}

// Remove deletes a saved movie. Removing an absent entry still reports success.
//
// @Summary      Remove a movie from the watchlist
// @Tags         mylist
// @Produce      json
// @Param        imdbID  path      string  true  "IMDb identifier"
// @Success      200     {object}  messageResponse
// @Failure      401     {object}  messageResponse
// @Router       /mylist/remove/{imdbID} [delete]
func (h *WatchlistHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, c.Param("imdbID")); err != nil {
		return err
	}

	metrics.WatchlistOpsTotal.WithLabelValues("remove", "removed").Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "removed"})
}

// Check reports whether a movie is on the caller's list; the frontend uses
// it to render save/unsave state.
//
// @Summary      Check watchlist membership
// @Tags         mylist
// @Produce      json
// @Param        imdbID  path      string  true  "IMDb identifier"
// @Success      200     {object}  watchlistCheckResponse
// @Failure      401     {object}  messageResponse
// @Router       /mylist/check/{imdbID} [get]
func (h *WatchlistHandler) Check(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	exists, err := h.service.Exists(c.Request().Context(), user.ID, c.Param("imdbID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, watchlistCheckResponse{Success: true, Exists: exists})
}

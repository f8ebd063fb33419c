package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/metrics"
	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// MovieHandler proxies the external movie catalogue. All routes are public;
// the backend exists so the OMDb/YouTube API keys never reach the browser.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type searchResponse struct {
	Success bool                  `json:"success"`
	Results []domain.MovieSummary `json:"results"`
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
}

type detailResponse struct {
	Success bool                `json:"success"`
	Movie   *domain.MovieDetail `json:"movie"`
}

type trailerResponse struct {
	Success bool            `json:"success"`
	Trailer *domain.Trailer `json:"trailer"`
}

// Search proxies OMDb's search index.
//
// @Summary      Search movies
// @Tags         movies
// @Produce      json
// @Param        query  query     string  true   "Search text"
// @Param        page   query     int     false  "Result page (1-based)"
// @Param        type   query     string  false  "movie, series or episode"
// @Success      200    {object}  searchResponse
// @Failure      400    {object}  messageResponse
// @Failure      502    {object}  messageResponse
// @Router       /movies/search [get]
func (h *MovieHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	start := time.Now()
	result, err := h.service.Search(c.Request().Context(), query, page, c.QueryParam("type"))
	observeUpstream("search", start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Results: result.Items,
		Total:   result.Total,
		Page:    page,
	})
}

// Detail returns the full record for one title.
//
// @Summary      Get movie detail
// @Tags         movies
// @Produce      json
// @Param        imdbID  path      string  true  "IMDb identifier"
// @Success      200     {object}  detailResponse
// @Failure      502     {object}  messageResponse
// @Router       /movies/{imdbID} [get]
func (h *MovieHandler) Detail(c echo.Context) error {
	start := time.Now()
	movie, err := h.service.Detail(c.Request().Context(), c.Param("imdbID"))
	observeUpstream("detail", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Success: true, Movie: movie})
}

// Trailer returns the best YouTube trailer match for a title.
//
// @Summary      Get movie trailer
// @Tags         movies
// @Produce      json
// @Param        imdbID  path      string  true  "IMDb identifier"
// @Success      200     {object}  trailerResponse
// @Failure      404     {object}  messageResponse
// @Failure      502     {object}  messageResponse
// @Router       /movies/{imdbID}/trailer [get]
func (h *MovieHandler) Trailer(c echo.Context) error {
	start := time.Now()
	trailer, err := h.service.Trailer(c.Request().Context(), c.Param("imdbID"))
	observeUpstream("trailer", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trailerResponse{Success: true, Trailer: trailer})
}

func observeUpstream(endpoint string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint, outcome).Observe(time.Since(start).Seconds())
}

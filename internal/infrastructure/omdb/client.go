// Package omdb implements the outbound OMDb API client. All calls carry a
// bounded timeout so a slow upstream cannot stall a request indefinitely;
// failures surface domain.ErrUpstream rather than raw transport errors.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/movian/movian-api/internal/core/domain"
)

const requestTimeout = 10 * time.Second

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type searchResponse struct {
	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		IMDbID string `json:"imdbID"`
		Type   string `json:"Type"`
		Poster string `json:"Poster"`
	} `json:"Search"`
	TotalResults string `json:"totalResults"`
	Response     string `json:"Response"`
	Error        string `json:"Error"`
}

type detailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search queries OMDb's own search index. mediaType is optional ("movie",
// "series", "episode").
func (c *Client) Search(ctx context.Context, query string, page int, mediaType string) ([]domain.MovieSummary, int, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	if mediaType != "" {
		params.Set("type", mediaType)
	}

	var payload searchResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, 0, err
	}
	if payload.Response != "True" {
		// OMDb reports "Movie not found!" through this path; an empty page
		// is a valid result, not an upstream failure.
		return []domain.MovieSummary{}, 0, nil
	}

	items := make([]domain.MovieSummary, 0, len(payload.Search))
	for _, it := range payload.Search {
		items = append(items, domain.MovieSummary{
			IMDbID: it.IMDbID,
			Title:  it.Title,
			Year:   it.Year,
			Type:   it.Type,
			Poster: it.Poster,
		})
	}

	total, _ := strconv.Atoi(payload.TotalResults)
	return items, total, nil
}

// ByID fetches the full record for a single title.
func (c *Client) ByID(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var payload detailResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, err
	}
	if payload.Response != "True" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, payload.Error)
	}

	return &domain.MovieDetail{
		IMDbID:     payload.IMDbID,
		Title:      payload.Title,
		Year:       payload.Year,
		Rated:      payload.Rated,
		Released:   payload.Released,
		Runtime:    payload.Runtime,
		Genre:      payload.Genre,
		Director:   payload.Director,
		Actors:     payload.Actors,
		Plot:       payload.Plot,
		Poster:     payload.Poster,
		IMDbRating: payload.IMDbRating,
		Type:       payload.Type,
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrUpstream, err)
	}
	return nil
}

// Package youtube implements the outbound YouTube Data API client used for
// trailer lookup. Failures surface domain.ErrUpstream.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
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
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns the best video match for the query, or
// domain.ErrTrailerNotFound when nothing matches.
func (c *Client) Search(ctx context.Context, query string) (*domain.Trailer, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrUpstream, err)
	}
	if len(payload.Items) == 0 {
		return nil, domain.ErrTrailerNotFound
	}

	item := payload.Items[0]
	return &domain.Trailer{
		VideoID:   item.ID.VideoID,
		Title:     item.Snippet.Title,
		Thumbnail: item.Snippet.Thumbnails.High.URL,
	}, nil
}

package domain

import "errors"

var ErrUpstream = errors.New("upstream movie service unavailable")
var ErrQueryRequired = errors.New("search query required")
var ErrTrailerNotFound = errors.New("trailer not found")

// MovieSummary is the lightweight view returned by an OMDb search.
type MovieSummary struct {
	IMDbID string `json:"imdbID"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Type   string `json:"type"`
	Poster string `json:"poster"`
}

// MovieDetail is the full OMDb record for a single title.
type MovieDetail struct {
	IMDbID     string `json:"imdbID"`
	Title      string `json:"title"`
	Year       string `json:"year"`
	Rated      string `json:"rated"`
	Released   string `json:"released"`
	Runtime    string `json:"runtime"`
	Genre      string `json:"genre"`
	Director   string `json:"director"`
	Actors     string `json:"actors"`
	Plot       string `json:"plot"`
	Poster     string `json:"poster"`
	IMDbRating string `json:"imdb_rating"`
	Type       string `json:"type"`
}

// Trailer points at a YouTube video matched for a title.
type Trailer struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

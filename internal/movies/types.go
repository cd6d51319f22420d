// Package movies fetches movie listings from the TMDB API.
package movies

import "github.com/jerrytigerxu/go-projects/internal/domain"

// listResponse mirrors the TMDB list endpoint payload. Only the fields
// the application displays are decoded.
type listResponse struct {
	Page          int          `json:"page"`
	Results       []listResult `json:"results"`
	StatusMessage string       `json:"status_message"`
}

// listResult uses pointers so missing fields can fall back to the
// display defaults instead of zero values.
type listResult struct {
	ID          *int64   `json:"id"`
	Title       *string  `json:"title"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	Overview    *string  `json:"overview"`
}

// Display defaults for fields the API response omits.
const (
	defaultTitle       = "N/A"
	defaultReleaseDate = "N/A"
	defaultOverview    = "No overview available."
)

// toMovie converts an API result to the domain model, applying defaults
// for missing fields.
func (r listResult) toMovie() domain.Movie {
	m := domain.Movie{
		ID:          -1,
		Title:       defaultTitle,
		ReleaseDate: defaultReleaseDate,
		Overview:    defaultOverview,
	}
	if r.ID != nil {
		m.ID = *r.ID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.ReleaseDate != nil {
		m.ReleaseDate = *r.ReleaseDate
	}
	if r.VoteAverage != nil {
		m.VoteAverage = *r.VoteAverage
	}
	if r.Overview != nil {
		m.Overview = *r.Overview
	}
	return m
}

// isSkippable reports whether a result carries neither an id nor a
// title and should be dropped from the listing.
func (r listResult) isSkippable() bool {
	return r.ID == nil && r.Title == nil
}

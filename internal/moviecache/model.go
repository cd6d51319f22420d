package moviecache

import "time"

// CachedMovie is the storage model for one cached movie row.
type CachedMovie struct {
	Category    string
	MovieID     int64
	Title       string
	ReleaseDate string
	VoteAverage float64
	Overview    string
	FetchedAt   time.Time
}

package domain

// Movie represents a movie fetched from the TMDB API.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate string
	VoteAverage float64
	Overview    string
}

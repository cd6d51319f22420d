package moviecache

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanMovie scans a single cached movie from a database row
func ScanMovie(scanner Scanner) (*CachedMovie, error) {
	m := &CachedMovie{}
	var fetchedAt string

	err := scanner.Scan(
		&m.Category,
		&m.MovieID,
		&m.Title,
		&m.ReleaseDate,
		&m.VoteAverage,
		&m.Overview,
		&fetchedAt,
	)
	if err != nil {
		return nil, err
	}

	m.FetchedAt, err = ParseTimeFromDB(fetchedAt)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ScanMovies scans multiple cached movies from database rows
func ScanMovies(rows Rows) ([]*CachedMovie, error) {
	var movies []*CachedMovie
	for rows.Next() {
		m, err := ScanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

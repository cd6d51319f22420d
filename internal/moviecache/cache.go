// Package moviecache stores fetched movie listings in a local SQLite
// database so repeated fetches of the same category can be served
// without hitting the API.
package moviecache

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jerrytigerxu/go-projects/internal/errors"
)

// Cache defines the interface for movie cache operations
type Cache interface {
	// Put replaces all cached rows for a category.
	Put(category string, movies []*CachedMovie, fetchedAt time.Time) error

	// Get returns the cached rows for a category fetched at or after
	// notBefore. The boolean reports whether a fresh-enough entry exists.
	Get(category string, notBefore time.Time) ([]*CachedMovie, bool, error)

	// Utility
	Close() error
}

// SQLiteCache implements the Cache interface
type SQLiteCache struct {
	db *sql.DB
}

// New creates a new SQLite movie cache instance
func New(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open movie cache", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run movie cache migrations", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Put replaces all cached rows for a category inside one transaction.
func (c *SQLiteCache) Put(category string, movies []*CachedMovie, fetchedAt time.Time) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errors.NewStorageError("begin cache transaction", err)
	}

	if _, err := tx.Exec("DELETE FROM movies WHERE category = ?", category); err != nil {
		tx.Rollback()
		return errors.NewStorageError("clear cached category", err)
	}

	query := `
	INSERT INTO movies (category, movie_id, title, release_date, vote_average, overview, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, m := range movies {
		if _, err := tx.Exec(query, category, m.MovieID, m.Title, m.ReleaseDate, m.VoteAverage, m.Overview, FormatTimeForDB(fetchedAt)); err != nil {
			tx.Rollback()
			return errors.NewStorageError("insert cached movie", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit cache transaction", err)
	}
	return nil
}

// Get returns cached rows for a category if they are fresh enough.
func (c *SQLiteCache) Get(category string, notBefore time.Time) ([]*CachedMovie, bool, error) {
	query := `
	SELECT category, movie_id, title, release_date, vote_average, overview, fetched_at
	FROM movies
	WHERE category = ?
	ORDER BY rowid ASC`

	rows, err := c.db.Query(query, category)
	if err != nil {
		return nil, false, errors.NewStorageError("query cached movies", err)
	}
	defer rows.Close()

	movies, err := ScanMovies(rows)
	if err != nil {
		return nil, false, errors.NewStorageError("scan cached movies", err)
	}

	if len(movies) == 0 {
		return nil, false, nil
	}
	for _, m := range movies {
		if m.FetchedAt.Before(notBefore) {
			return nil, false, nil
		}
	}
	return movies, true, nil
}

package moviecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func sampleMovies() []*CachedMovie {
	return []*CachedMovie{
		{Category: "popular", MovieID: 1, Title: "First", ReleaseDate: "2025-01-01", VoteAverage: 7.5, Overview: "One."},
		{Category: "popular", MovieID: 2, Title: "Second", ReleaseDate: "2025-02-01", VoteAverage: 6.0, Overview: "Two."},
	}
}

func TestSQLiteCache_PutAndGet(t *testing.T) {
	t.Run("should return stored rows in insertion order", func(t *testing.T) {
		cache := setupCache(t)
		fetchedAt := time.Now().Truncate(time.Second)
		require.NoError(t, cache.Put("popular", sampleMovies(), fetchedAt))

		got, ok, err := cache.Get("popular", fetchedAt.Add(-time.Minute))
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "First", got[0].Title)
		assert.Equal(t, "Second", got[1].Title)
		assert.Equal(t, 7.5, got[0].VoteAverage)
		assert.True(t, got[0].FetchedAt.Equal(fetchedAt))
	})

	t.Run("should miss for an unknown category", func(t *testing.T) {
		cache := setupCache(t)
		_, ok, err := cache.Get("upcoming", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should miss when the entry is older than notBefore", func(t *testing.T) {
		cache := setupCache(t)
		fetchedAt := time.Now().Add(-2 * time.Hour)
		require.NoError(t, cache.Put("popular", sampleMovies(), fetchedAt))

		_, ok, err := cache.Get("popular", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should replace previous rows for the same category", func(t *testing.T) {
		cache := setupCache(t)
		now := time.Now()
		require.NoError(t, cache.Put("popular", sampleMovies(), now))
		replacement := []*CachedMovie{
			{Category: "popular", MovieID: 9, Title: "Only", ReleaseDate: "2025-03-01", VoteAverage: 9.0, Overview: "New."},
		}
		require.NoError(t, cache.Put("popular", replacement, now))

		got, ok, err := cache.Get("popular", now.Add(-time.Minute))
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Only", got[0].Title)
	})

	t.Run("should keep categories separate", func(t *testing.T) {
		cache := setupCache(t)
		now := time.Now()
		require.NoError(t, cache.Put("popular", sampleMovies(), now))
		require.NoError(t, cache.Put("top", []*CachedMovie{
			{Category: "top", MovieID: 3, Title: "Top Pick", ReleaseDate: "2025-01-15", VoteAverage: 8.8, Overview: "Top."},
		}, now))

		got, ok, err := cache.Get("top", now.Add(-time.Minute))
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Top Pick", got[0].Title)
	})

	t.Run("should miss after storing an empty listing", func(t *testing.T) {
		cache := setupCache(t)
		require.NoError(t, cache.Put("popular", nil, time.Now()))

		_, ok, err := cache.Get("popular", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRunMigrations(t *testing.T) {
	t.Run("should be idempotent", func(t *testing.T) {
		cache := setupCache(t)
		require.NoError(t, RunMigrations(cache.db))
	})
}

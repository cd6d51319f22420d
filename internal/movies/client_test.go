package movies

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrytigerxu/go-projects/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", 5*time.Second), server
}

func TestClient_FetchMovies(t *testing.T) {
	t.Run("should fetch and convert a listing", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/popular", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			w.Write([]byte(`{
				"page": 1,
				"results": [
					{"id": 100, "title": "First", "release_date": "2025-01-01", "vote_average": 7.5, "overview": "A movie."},
					{"id": 200, "title": "Second", "release_date": "2025-02-01", "vote_average": 6.1, "overview": "Another."}
				]
			}`))
		})

		result, err := client.FetchMovies(context.Background(), "popular")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(100), result[0].ID)
		assert.Equal(t, "First", result[0].Title)
		assert.Equal(t, 7.5, result[0].VoteAverage)
	})

	t.Run("should map category names to API paths", func(t *testing.T) {
		var requestedPath string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{"results": []}`))
		})

		expected := map[string]string{
			"popular":  "/movie/popular",
			"top":      "/movie/top_rated",
			"playing":  "/movie/now_playing",
			"upcoming": "/movie/upcoming",
		}
		for category, path := range expected {
			_, err := client.FetchMovies(context.Background(), category)
			require.NoError(t, err)
			assert.Equal(t, path, requestedPath)
		}
	})

	t.Run("should apply defaults for missing fields", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": [{"id": 7}]}`))
		})

		result, err := client.FetchMovies(context.Background(), "popular")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "N/A", result[0].Title)
		assert.Equal(t, "N/A", result[0].ReleaseDate)
		assert.Equal(t, "No overview available.", result[0].Overview)
		assert.Zero(t, result[0].VoteAverage)
	})

	t.Run("should skip results missing both id and title", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": [
				{"overview": "orphan"},
				{"id": 1, "title": "Kept"}
			]}`))
		})

		result, err := client.FetchMovies(context.Background(), "popular")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Kept", result[0].Title)
	})

	t.Run("should reject unknown category without a request", func(t *testing.T) {
		client := NewClient("http://unused.invalid", "key", time.Second)

		_, err := client.FetchMovies(context.Background(), "bogus")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("should surface the API error message on non-200", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status_message": "Invalid API key"}`))
		})

		_, err := client.FetchMovies(context.Background(), "popular")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNetwork))
		assert.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("should reject a payload without a results array", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"page": 1}`))
		})

		_, err := client.FetchMovies(context.Background(), "popular")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNetwork))
	})

	t.Run("should reject a payload with wrongly typed fields", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": [{"id": "not-a-number"}]}`))
		})

		_, err := client.FetchMovies(context.Background(), "popular")
		assert.Error(t, err)
	})

	t.Run("should return empty slice for an empty listing", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": []}`))
		})

		result, err := client.FetchMovies(context.Background(), "popular")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, IsValidCategory(category))
	}
	assert.False(t, IsValidCategory("bogus"))
	assert.False(t, IsValidCategory(""))
}

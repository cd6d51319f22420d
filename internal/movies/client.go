package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
)

// Category names accepted on the command line.
const (
	CategoryPopular  = "popular"
	CategoryTop      = "top"
	CategoryPlaying  = "playing"
	CategoryUpcoming = "upcoming"
)

// categoryPaths maps CLI category names to TMDB API path segments.
var categoryPaths = map[string]string{
	CategoryPopular:  "popular",
	CategoryTop:      "top_rated",
	CategoryPlaying:  "now_playing",
	CategoryUpcoming: "upcoming",
}

// Categories returns the accepted category names in display order.
func Categories() []string {
	return []string{CategoryPopular, CategoryTop, CategoryPlaying, CategoryUpcoming}
}

// IsValidCategory reports whether name is an accepted category.
func IsValidCategory(name string) bool {
	_, ok := categoryPaths[name]
	return ok
}

// Client fetches movie listings from the TMDB API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchMovies fetches the listing for a category and converts it to the
// domain model. Results missing both id and title are skipped.
func (c *Client) FetchMovies(ctx context.Context, category string) ([]domain.Movie, error) {
	path, ok := categoryPaths[category]
	if !ok {
		return nil, errors.NewInvalidInputError("category", category,
			fmt.Sprintf("must be one of: %s", strings.Join(Categories(), ", ")))
	}

	url := fmt.Sprintf("%s/movie/%s?api_key=%s", c.baseURL, path, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetworkError("build TMDB request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTimeoutError("fetch movies", err)
		}
		return nil, errors.NewNetworkError("fetch movies", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("read TMDB response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNetworkError(
			fmt.Sprintf("TMDB request failed with status %d: %s", resp.StatusCode, apiErrorMessage(body)), nil)
	}

	if err := validateListPayload(body); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeNetwork, "invalid TMDB response")
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.NewNetworkError("decode TMDB response", err)
	}

	result := make([]domain.Movie, 0, len(list.Results))
	for _, item := range list.Results {
		if item.isSkippable() {
			continue
		}
		result = append(result, item.toMovie())
	}
	return result, nil
}

// apiErrorMessage extracts the status_message from an error payload,
// falling back to a body snippet.
func apiErrorMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		return payload.StatusMessage
	}
	const maxSnippet = 200
	if len(body) > maxSnippet {
		return string(body[:maxSnippet]) + "..."
	}
	return string(body)
}

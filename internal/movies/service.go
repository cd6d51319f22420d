package movies

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/moviecache"
)

// Fetcher fetches a movie listing for a category.
type Fetcher interface {
	FetchMovies(ctx context.Context, category string) ([]domain.Movie, error)
}

// Service serves movie listings, preferring the local cache when it is
// fresh enough.
type Service struct {
	fetcher Fetcher
	cache   moviecache.Cache
	ttl     time.Duration
	log     *logrus.Logger
	now     func() time.Time
}

// NewService creates a new movie service. A nil cache disables caching.
func NewService(fetcher Fetcher, cache moviecache.Cache, ttl time.Duration, log *logrus.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// Movies returns the listing for a category. Cached results within the
// TTL are served without hitting the API. Cache failures degrade to a
// direct fetch.
func (s *Service) Movies(ctx context.Context, category string) ([]domain.Movie, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(category, s.now().Add(-s.ttl))
		if err != nil {
			s.log.WithError(err).Warn("movie cache read failed; fetching from API")
		} else if ok {
			s.log.WithField("category", category).Debug("serving movies from cache")
			return cachedToDomain(cached), nil
		}
	}

	fetched, err := s.fetcher.FetchMovies(ctx, category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(category, domainToCached(category, fetched, s.now()), s.now()); err != nil {
			s.log.WithError(err).Warn("movie cache write failed")
		}
	}
	return fetched, nil
}

func cachedToDomain(cached []*moviecache.CachedMovie) []domain.Movie {
	movies := make([]domain.Movie, 0, len(cached))
	for _, c := range cached {
		movies = append(movies, domain.Movie{
			ID:          c.MovieID,
			Title:       c.Title,
			ReleaseDate: c.ReleaseDate,
			VoteAverage: c.VoteAverage,
			Overview:    c.Overview,
		})
	}
	return movies
}

func domainToCached(category string, movies []domain.Movie, fetchedAt time.Time) []*moviecache.CachedMovie {
	cached := make([]*moviecache.CachedMovie, 0, len(movies))
	for _, m := range movies {
		cached = append(cached, &moviecache.CachedMovie{
			Category:    category,
			MovieID:     m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
			Overview:    m.Overview,
			FetchedAt:   fetchedAt,
		})
	}
	return cached
}

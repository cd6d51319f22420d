package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jerrytigerxu/go-projects/internal/config"
	apperrors "github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/logging"
	"github.com/jerrytigerxu/go-projects/internal/moviecache"
	"github.com/jerrytigerxu/go-projects/internal/movies"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperrors.GetUserMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		category string
		noCache  bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "moviefetch --type <category>",
		Short: "Fetch movie listings from TMDB",
		Long: fmt.Sprintf(`moviefetch fetches a movie listing from The Movie Database and
prints it as a table. Results are cached locally so repeated fetches
of the same category do not hit the API.

Allowed categories: %s

The TMDB API key is read from the TMDB_API_KEY environment variable,
or from a .env file in the working directory.`, strings.Join(movies.Categories(), ", ")),
		Example:       "  moviefetch --type popular",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, category, noCache, verbose)
		},
	}

	cmd.Flags().StringVarP(&category, "type", "t", "",
		fmt.Sprintf("category of movies to fetch (%s)", strings.Join(movies.Categories(), ", ")))
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always fetch from the API, skipping the local cache")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.MarkFlagRequired("type")
	return cmd
}

func run(cmd *cobra.Command, category string, noCache, verbose bool) error {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return err
	}
	log := logging.New(verbose || cfg.Application.Verbose)

	if !movies.IsValidCategory(category) {
		return apperrors.NewInvalidInputError("type", category,
			fmt.Sprintf("must be one of: %s", strings.Join(movies.Categories(), ", ")))
	}

	apiKey, err := movies.LoadAPIKey()
	if err != nil {
		return err
	}

	client := movies.NewClient(cfg.Movies.BaseURL, apiKey, cfg.Application.Timeout)

	var cache moviecache.Cache
	if cfg.Movies.CacheEnabled && !noCache {
		cachePath := cfg.GetMovieCachePath()
		if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
			log.WithError(err).Warn("cannot create cache directory; caching disabled")
		} else if c, err := moviecache.New(cachePath); err != nil {
			log.WithError(err).Warn("cannot open movie cache; caching disabled")
		} else {
			cache = c
			defer c.Close()
		}
	}

	service := movies.NewService(client, cache, cfg.GetCacheTTL(), log)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Application.Timeout)
	defer cancel()

	listing, err := service.Movies(ctx, category)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), movies.FormatTable(listing))
	return nil
}

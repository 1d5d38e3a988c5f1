package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscope/filter"
	"github.com/s0up4200/reelscope/tmdb"
)

// moviesCmd groups the movie lookups
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse and look up movies",
}

func init() {
	moviesCmd.AddCommand(
		movieListCmd("now-playing", "List movies currently in theatres", func(c *tmdb.Client) movieListFunc { return c.Movies.NowPlaying }),
		movieListCmd("upcoming", "List upcoming movies", func(c *tmdb.Client) movieListFunc { return c.Movies.Upcoming }),
		movieListCmd("popular", "List popular movies", func(c *tmdb.Client) movieListFunc { return c.Movies.Popular }),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show movie details with videos and credits",
			Args:  cobra.ExactArgs(1),
			RunE:  runMovieGet,
		},
		&cobra.Command{
			Use:   "similar ID",
			Short: "List movies similar to a movie",
			Args:  cobra.ExactArgs(1),
			RunE:  runMovieSimilar,
		},
	)
}

type movieListFunc = func(ctx context.Context) ([]tmdb.Movie, bool, error)

// movieListCmd builds a command for an argument-less movie list
func movieListCmd(use, short string, pick func(*tmdb.Client) movieListFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			movies, found, err := pick(tmdbClient)(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(r, movies, found, filter.FromMovie, movieLine)
		},
	}
}

func runMovieGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "movie ID")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	movie, found, err := tmdbClient.Movies.FindByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(r, movie, found, writeMovie)
}

func runMovieSimilar(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "movie ID")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	movies, found, err := tmdbClient.Movies.FindSimilarByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderList(r, movies, found, filter.FromMovie, movieLine)
}

// parseID parses a non-negative numeric argument. Season 0 holds specials.
func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, arg)
	}
	return id, nil
}

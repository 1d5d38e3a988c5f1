package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscope/filter"
	"github.com/s0up4200/reelscope/tmdb"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Show all movie and TV charts at once",
	Long: `Fetch now playing, upcoming and popular movies together with top rated,
popular and airing today TV shows. The lists are requested concurrently.`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	h, err := tmdbClient.Discover(cmd.Context())
	if err != nil {
		return err
	}

	if r.format == "json" {
		if r.filter != nil {
			h = filterHighlights(r.filter, h)
		}
		return r.json(h)
	}

	movieSections := []struct {
		title  string
		movies []tmdb.Movie
	}{
		{"Now Playing", h.NowPlaying},
		{"Upcoming", h.Upcoming},
		{"Popular Movies", h.PopularMovies},
	}
	for _, s := range movieSections {
		fmt.Fprintf(r.out, "\n== %s ==", s.title)
		if err := renderList(r, s.movies, s.movies != nil, filter.FromMovie, movieLine); err != nil {
			return err
		}
	}

	showSections := []struct {
		title string
		shows []tmdb.Show
	}{
		{"Top Rated Shows", h.TopRatedShows},
		{"Popular Shows", h.PopularShows},
		{"Airing Today", h.AiringToday},
	}
	for _, s := range showSections {
		fmt.Fprintf(r.out, "\n== %s ==", s.title)
		if err := renderList(r, s.shows, s.shows != nil, filter.FromShow, showLine); err != nil {
			return err
		}
	}

	return nil
}

// filterHighlights returns a copy of h with every list narrowed by f
func filterHighlights(f filter.Filter, h *tmdb.Highlights) *tmdb.Highlights {
	return &tmdb.Highlights{
		NowPlaying:    filter.Apply(f, h.NowPlaying, filter.FromMovie),
		Upcoming:      filter.Apply(f, h.Upcoming, filter.FromMovie),
		PopularMovies: filter.Apply(f, h.PopularMovies, filter.FromMovie),
		TopRatedShows: filter.Apply(f, h.TopRatedShows, filter.FromShow),
		PopularShows:  filter.Apply(f, h.PopularShows, filter.FromShow),
		AiringToday:   filter.Apply(f, h.AiringToday, filter.FromShow),
	}
}

package tmdb

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxDiscoverConcurrency bounds the list requests issued by Discover
const maxDiscoverConcurrency = 3

// Highlights holds the curated movie and show lists
type Highlights struct {
	NowPlaying    []Movie `json:"now_playing"`
	Upcoming      []Movie `json:"upcoming"`
	PopularMovies []Movie `json:"popular_movies"`
	TopRatedShows []Show  `json:"top_rated_shows"`
	PopularShows  []Show  `json:"popular_shows"`
	AiringToday   []Show  `json:"airing_today"`
}

// Discover fetches all curated lists concurrently. A list that comes back
// absent is left nil. The first classified error is returned after every
// request has finished.
func (c *Client) Discover(ctx context.Context) (*Highlights, error) {
	h := &Highlights{}

	var g errgroup.Group
	g.SetLimit(maxDiscoverConcurrency)

	var mu sync.Mutex
	movieList := func(name string, dst *[]Movie, fetch func(context.Context) ([]Movie, bool, error)) {
		g.Go(func() error {
			movies, _, err := fetch(ctx)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", name, err)
			}
			mu.Lock()
			*dst = movies
			mu.Unlock()
			return nil
		})
	}
	showList := func(name string, dst *[]Show, fetch func(context.Context) ([]Show, bool, error)) {
		g.Go(func() error {
			shows, _, err := fetch(ctx)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", name, err)
			}
			mu.Lock()
			*dst = shows
			mu.Unlock()
			return nil
		})
	}

	movieList("now playing movies", &h.NowPlaying, c.Movies.NowPlaying)
	movieList("upcoming movies", &h.Upcoming, c.Movies.Upcoming)
	movieList("popular movies", &h.PopularMovies, c.Movies.Popular)
	showList("top rated shows", &h.TopRatedShows, c.Shows.TopRated)
	showList("popular shows", &h.PopularShows, c.Shows.Popular)
	showList("shows airing today", &h.AiringToday, c.Shows.AiringToday)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("now_playing", len(h.NowPlaying)).
		Int("upcoming", len(h.Upcoming)).
		Int("popular_movies", len(h.PopularMovies)).
		Int("top_rated_shows", len(h.TopRatedShows)).
		Int("popular_shows", len(h.PopularShows)).
		Int("airing_today", len(h.AiringToday)).
		Msg("Retrieved TMDB highlights")

	return h, nil
}

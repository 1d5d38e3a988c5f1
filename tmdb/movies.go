package tmdb

import (
	"context"
	"fmt"
)

// detailParams is appended to movie and show detail requests
var detailParams = Params{"append_to_response": "videos,credits"}

// MoviesService groups the movie endpoints
type MoviesService struct {
	client *Client
}

// MoviePath returns the detail path of a movie
func MoviePath(id int) string {
	return fmt.Sprintf("movie/%d", id)
}

// SimilarMoviesPath returns the similar-movies path of a movie
func SimilarMoviesPath(id int) string {
	return fmt.Sprintf("movie/%d/similar", id)
}

// NowPlaying returns the movies currently in theatres
func (s *MoviesService) NowPlaying(ctx context.Context) ([]Movie, bool, error) {
	return get[[]Movie](ctx, s.client, "movie/now_playing", nil)
}

// Upcoming returns the movies about to be released
func (s *MoviesService) Upcoming(ctx context.Context) ([]Movie, bool, error) {
	return get[[]Movie](ctx, s.client, "movie/upcoming", nil)
}

// Popular returns the most popular movies
func (s *MoviesService) Popular(ctx context.Context) ([]Movie, bool, error) {
	return get[[]Movie](ctx, s.client, "movie/popular", nil)
}

// FindByID returns a movie with its videos and credits
func (s *MoviesService) FindByID(ctx context.Context, id int) (Movie, bool, error) {
	return get[Movie](ctx, s.client, MoviePath(id), detailParams)
}

// FindSimilarByID returns movies similar to the given one
func (s *MoviesService) FindSimilarByID(ctx context.Context, id int) ([]Movie, bool, error) {
	return get[[]Movie](ctx, s.client, SimilarMoviesPath(id), nil)
}

package tmdb

import (
	"context"
)

// SearchService groups the search endpoints
type SearchService struct {
	client *Client
}

// queryParams builds the parameter set of a search request
func queryParams(query string) Params {
	return Params{"query": query}
}

// Movie searches movies by title
func (s *SearchService) Movie(ctx context.Context, query string) ([]Movie, bool, error) {
	return get[[]Movie](ctx, s.client, "search/movie", queryParams(query))
}

// Show searches TV shows by name
func (s *SearchService) Show(ctx context.Context, query string) ([]Show, bool, error) {
	return get[[]Show](ctx, s.client, "search/tv", queryParams(query))
}

// Person searches people by name
func (s *SearchService) Person(ctx context.Context, query string) ([]Person, bool, error) {
	return get[[]Person](ctx, s.client, "search/person", queryParams(query))
}

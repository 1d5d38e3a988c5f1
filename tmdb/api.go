package tmdb

import (
	"context"
)

// MoviesAPI defines the movie lookups
type MoviesAPI interface {
	NowPlaying(ctx context.Context) ([]Movie, bool, error)
	Upcoming(ctx context.Context) ([]Movie, bool, error)
	Popular(ctx context.Context) ([]Movie, bool, error)
	FindByID(ctx context.Context, id int) (Movie, bool, error)
	FindSimilarByID(ctx context.Context, id int) ([]Movie, bool, error)
}

// ShowsAPI defines the TV lookups
type ShowsAPI interface {
	TopRated(ctx context.Context) ([]Show, bool, error)
	Popular(ctx context.Context) ([]Show, bool, error)
	AiringToday(ctx context.Context) ([]Show, bool, error)
	FindByID(ctx context.Context, id int) (Show, bool, error)
	FindSimilarByID(ctx context.Context, id int) ([]Show, bool, error)
	GetSeasonDetail(ctx context.Context, showID, seasonNumber int) (Season, bool, error)
	GetEpisodeDetail(ctx context.Context, showID, seasonNumber, episodeNumber int) (Episode, bool, error)
}

// PeopleAPI defines the person lookups
type PeopleAPI interface {
	FindPersonByID(ctx context.Context, id int) (Person, bool, error)
}

// SearchAPI defines the search lookups
type SearchAPI interface {
	Movie(ctx context.Context, query string) ([]Movie, bool, error)
	Show(ctx context.Context, query string) ([]Show, bool, error)
	Person(ctx context.Context, query string) ([]Person, bool, error)
}

var (
	_ MoviesAPI = (*MoviesService)(nil)
	_ ShowsAPI  = (*ShowsService)(nil)
	_ PeopleAPI = (*PeopleService)(nil)
	_ SearchAPI = (*SearchService)(nil)
)

package tmdb

import (
	"context"
	"fmt"
)

// ShowsService groups the TV endpoints
type ShowsService struct {
	client *Client
}

// ShowPath returns the detail path of a show
func ShowPath(id int) string {
	return fmt.Sprintf("tv/%d", id)
}

// SimilarShowsPath returns the similar-shows path of a show
func SimilarShowsPath(id int) string {
	return fmt.Sprintf("tv/%d/similar", id)
}

// SeasonDetailPath returns the path of one season of a show
func SeasonDetailPath(showID, seasonNumber int) string {
	return fmt.Sprintf("tv/%d/season/%d", showID, seasonNumber)
}

// EpisodeDetailPath returns the path of one episode of a show
func EpisodeDetailPath(showID, seasonNumber, episodeNumber int) string {
	return fmt.Sprintf("tv/%d/season/%d/episode/%d", showID, seasonNumber, episodeNumber)
}

// TopRated returns the highest rated shows
func (s *ShowsService) TopRated(ctx context.Context) ([]Show, bool, error) {
	return get[[]Show](ctx, s.client, "tv/top_rated", nil)
}

// Popular returns the most popular shows
func (s *ShowsService) Popular(ctx context.Context) ([]Show, bool, error) {
	return get[[]Show](ctx, s.client, "tv/popular", nil)
}

// AiringToday returns the shows with an episode airing today
func (s *ShowsService) AiringToday(ctx context.Context) ([]Show, bool, error) {
	return get[[]Show](ctx, s.client, "tv/airing_today", nil)
}

// FindByID returns a show with its videos and credits
func (s *ShowsService) FindByID(ctx context.Context, id int) (Show, bool, error) {
	return get[Show](ctx, s.client, ShowPath(id), detailParams)
}

// FindSimilarByID returns shows similar to the given one
func (s *ShowsService) FindSimilarByID(ctx context.Context, id int) ([]Show, bool, error) {
	return get[[]Show](ctx, s.client, SimilarShowsPath(id), nil)
}

// GetSeasonDetail returns a season with its episodes
func (s *ShowsService) GetSeasonDetail(ctx context.Context, showID, seasonNumber int) (Season, bool, error) {
	return get[Season](ctx, s.client, SeasonDetailPath(showID, seasonNumber), nil)
}

// GetEpisodeDetail returns a single episode
func (s *ShowsService) GetEpisodeDetail(ctx context.Context, showID, seasonNumber, episodeNumber int) (Episode, bool, error) {
	return get[Episode](ctx, s.client, EpisodeDetailPath(showID, seasonNumber, episodeNumber), nil)
}

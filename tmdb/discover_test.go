package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	var calls atomic.Int32
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/movie/now_playing":
			w.Write([]byte(`{"results":[{"id":1,"title":"Now"}]}`))
		case "/movie/upcoming":
			w.Write([]byte(`{"results":[{"id":2,"title":"Soon"},{"id":3,"title":"Later"}]}`))
		case "/movie/popular":
			w.Write([]byte(`{"results":[]}`))
		case "/tv/top_rated":
			w.Write([]byte(`{"results":[{"id":10,"name":"Best"}]}`))
		case "/tv/popular":
			w.WriteHeader(http.StatusNotFound)
		case "/tv/airing_today":
			w.Write([]byte(`{"results":[{"id":11,"name":"Today"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	h, err := client.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(6), calls.Load())
	assert.Len(t, h.NowPlaying, 1)
	assert.Len(t, h.Upcoming, 2)
	assert.Empty(t, h.PopularMovies)
	assert.Equal(t, "Best", h.TopRatedShows[0].Name)
	assert.Nil(t, h.PopularShows)
	assert.Equal(t, 11, h.AiringToday[0].ID)
	assert.Len(t, rec.Records(), 1)
}

func TestDiscoverServerError(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tv/top_rated" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"results":[]}`))
	})

	h, err := client.Discover(context.Background())
	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, IsServerError(err))
	assert.Contains(t, err.Error(), "top rated shows")
	assert.Len(t, rec.Records(), 1)
}

func TestHighlightsJSON(t *testing.T) {
	data, err := json.Marshal(Highlights{NowPlaying: []Movie{{ID: 1}}})
	require.NoError(t, err)

	for _, key := range []string{"now_playing", "upcoming", "popular_movies", "top_rated_shows", "popular_shows", "airing_today"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
	assert.NotContains(t, string(data), "NowPlaying")
}

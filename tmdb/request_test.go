package tmdb

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope(t *testing.T) {
	t.Run("results field is authoritative", func(t *testing.T) {
		body := []byte(`{"page":1,"total_pages":4,"total_results":61,"results":[{"id":603,"title":"The Matrix"},{"id":604,"title":"The Matrix Reloaded"}]}`)

		movies, err := unwrapEnvelope[[]Movie](body)
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, 603, movies[0].ID)
		assert.Equal(t, "The Matrix Reloaded", movies[1].Title)
	})

	t.Run("bare object passes through", func(t *testing.T) {
		body := []byte(`{"id":603,"title":"The Matrix","release_date":"1999-03-30","videos":{"results":[{"key":"abc","site":"YouTube"}]}}`)

		movie, err := unwrapEnvelope[Movie](body)
		require.NoError(t, err)
		assert.Equal(t, 603, movie.ID)
		assert.Equal(t, 1999, movie.Year())
		require.NotNil(t, movie.Videos)
		assert.Equal(t, "abc", movie.Videos.Results[0].Key)
	})

	t.Run("null results falls back to the body", func(t *testing.T) {
		movie, err := unwrapEnvelope[Movie]([]byte(`{"id":7,"results":null}`))
		require.NoError(t, err)
		assert.Equal(t, 7, movie.ID)
	})

	t.Run("bare array passes through", func(t *testing.T) {
		genres, err := unwrapEnvelope[[]Genre]([]byte(`[{"id":28,"name":"Action"}]`))
		require.NoError(t, err)
		assert.Equal(t, []Genre{{ID: 28, Name: "Action"}}, genres)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := unwrapEnvelope[Movie]([]byte(`{"id":`))
		require.Error(t, err)
	})
}

func TestGetUnwrapsResults(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"dates":{"maximum":"2026-10-20"},"results":[{"id":1,"title":"One"}]}`))
	})

	movies, found, err := client.Movies.NowPlaying(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []Movie{{ID: 1, Title: "One"}}, movies)
	assert.Empty(t, rec.Records(), "successful calls are not logged")
}

func TestGetNoConnection(t *testing.T) {
	rec := &recordingLogger{}
	transport := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	client, err := NewClient("http://tmdb.invalid/3", testAPIKey, zerolog.Nop(),
		WithHTTPClient(&http.Client{Transport: transport}),
		WithHTTPLogger(rec),
	)
	require.NoError(t, err)

	_, found, err := client.Movies.Popular(context.Background())
	require.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, "no internet connection", err.Error())
	assert.True(t, IsNoConnection(err))

	var tmdbErr *Error
	require.ErrorAs(t, err, &tmdbErr)
	assert.Equal(t, KindNoConnection, tmdbErr.Kind)
	assert.Equal(t, http.MethodGet, tmdbErr.Method)
	assert.Equal(t, "http://tmdb.invalid/3/movie/popular", tmdbErr.URL)
	assert.Contains(t, tmdbErr.Unwrap().Error(), "connection refused")

	assert.Empty(t, rec.Records())
}

func TestGetClassifiesFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantKind   ErrorKind
		wantErr    error
		wantMsg    string
		wantAbsent bool
	}{
		{
			name:     "invalid API key",
			status:   http.StatusUnauthorized,
			wantKind: KindInvalidAPIKey,
			wantErr:  ErrInvalidAPIKey,
			wantMsg:  "invalid API key",
		},
		{
			name:     "service unavailable",
			status:   http.StatusServiceUnavailable,
			wantKind: KindServerError,
			wantErr:  ErrServerError,
			wantMsg:  "Service Unavailable",
		},
		{
			name:     "internal server error",
			status:   http.StatusInternalServerError,
			wantKind: KindServerError,
			wantErr:  ErrServerError,
			wantMsg:  "Internal Server Error",
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			wantAbsent: true,
		},
		{
			name:       "unprocessable",
			status:     http.StatusUnprocessableEntity,
			wantAbsent: true,
		},
		{
			name:       "forbidden",
			status:     http.StatusForbidden,
			wantAbsent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
			})

			movie, found, err := client.Movies.FindByID(context.Background(), 603)
			assert.False(t, found)
			assert.Equal(t, Movie{}, movie)

			if tt.wantAbsent {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantMsg)

				var tmdbErr *Error
				require.ErrorAs(t, err, &tmdbErr)
				assert.Equal(t, tt.wantKind, tmdbErr.Kind)
				assert.Equal(t, tt.status, tmdbErr.StatusCode)
			}

			records := rec.Records()
			require.Len(t, records, 1)
			record := records[0]
			assert.Equal(t, "HTTP Service", record.Service)
			assert.Equal(t, http.MethodGet, record.Method)
			assert.Equal(t, client.BaseURL()+"/movie/603?append_to_response=videos%2Ccredits", record.URL)
			assert.Equal(t, tt.status, record.Status)
			assert.Equal(t, http.StatusText(tt.status), record.StatusText)
			assert.False(t, record.StartTime.Before(before))
			assert.GreaterOrEqual(t, record.Duration(), time.Duration(0))
		})
	}
}

func TestServerErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, _, err := client.Shows.Popular(context.Background())
	require.Error(t, err)
	assert.Equal(t, "TMDB server error: Service Unavailable", err.Error())
	assert.True(t, IsServerError(err))
	assert.False(t, IsInvalidAPIKey(err))
}

func TestGetInvalidPayload(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, found, err := client.People.FindPersonByID(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "failed to parse response for person/1")
	assert.Empty(t, rec.Records())
}

func TestParamsValues(t *testing.T) {
	values := Params{
		"query": "the matrix",
		"page":  2,
		"year":  int64(1999),
		"adult": false,
	}.Values()

	assert.Equal(t, "the matrix", values.Get("query"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "1999", values.Get("year"))
	assert.Equal(t, "false", values.Get("adult"))
}

func TestEndpoint(t *testing.T) {
	client, err := NewClient("https://api.themoviedb.org/3/", testAPIKey, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3/tv/42/season/2/episode/5", client.endpoint(EpisodeDetailPath(42, 2, 5), nil))
	assert.Equal(t, "https://api.themoviedb.org/3/search/movie?query=matrix", client.endpoint("search/movie", queryParams("matrix")))
	assert.Equal(t, "https://api.themoviedb.org/3/movie/popular", client.endpoint("/movie/popular", Params{}))
}

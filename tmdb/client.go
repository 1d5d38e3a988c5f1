package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

const defaultTimeout = 30 * time.Second

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	httpLog    HTTPLogger

	Movies *MoviesService
	Shows  *ShowsService
	People *PeopleService
	Search *SearchService
}

// NewClient creates a new TMDB client. apiKey may be a v3 API key or a v4 read access token.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := &clientOptions{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := &http.Client{Timeout: o.timeout}
	if o.httpClient != nil {
		copied := *o.httpClient
		httpClient = &copied
	}
	httpClient.Transport = &authTransport{
		apiKey:   apiKey,
		language: o.language,
		base:     httpClient.Transport,
	}

	httpLog := o.httpLogger
	if httpLog == nil {
		httpLog = NewZerologHTTPLogger(logger)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		httpLog:    httpLog,
	}
	c.Movies = &MoviesService{client: c}
	c.Shows = &ShowsService{client: c}
	c.People = &PeopleService{client: c}
	c.Search = &SearchService{client: c}

	return c, nil
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection verifies TMDB is reachable and accepts the API key
func (c *Client) TestConnection(ctx context.Context) error {
	_, found, err := get[Configuration](ctx, c, "configuration", nil)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("configuration endpoint returned no data")
	}
	return nil
}

// authTransport attaches credentials and default query parameters to every request
type authTransport struct {
	apiKey   string
	language string
	base     http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	q := r.URL.Query()
	if isBearerToken(t.apiKey) {
		r.Header.Set("Authorization", "Bearer "+t.apiKey)
	} else {
		q.Set("api_key", t.apiKey)
	}
	if t.language != "" && q.Get("language") == "" {
		q.Set("language", t.language)
	}
	r.URL.RawQuery = q.Encode()
	r.Header.Set("Accept", "application/json")

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}

// isBearerToken reports whether key looks like a v4 read access token (a JWT)
func isBearerToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

package tmdb

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	httpClient *http.Client
	language   string
	httpLogger HTTPLogger
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient uses a custom HTTP client. Its transport is wrapped to add
// authentication, the client itself is not modified. WithTimeout is ignored
// when a custom client is set.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLanguage sets the default language query parameter, e.g. "en-US".
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		o.language = language
	}
}

// WithHTTPLogger replaces the zerolog-backed HTTPLogger.
func WithHTTPLogger(l HTTPLogger) Option {
	return func(o *clientOptions) {
		o.httpLogger = l
	}
}

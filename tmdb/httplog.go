package tmdb

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// serviceLabel identifies this client in HTTP log records
const serviceLabel = "HTTP Service"

// LogRecord describes a request that reached TMDB and came back with a non-2xx status
type LogRecord struct {
	Service    string
	Method     string
	URL        string
	StartTime  time.Time
	Status     int
	StatusText string
}

// Duration returns the time elapsed between the request start and now
func (r LogRecord) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// HTTPLogger receives one LogRecord per failed request that got a response
type HTTPLogger interface {
	LogHTTP(record LogRecord)
}

// HTTPLoggerFunc adapts a function to the HTTPLogger interface
type HTTPLoggerFunc func(LogRecord)

// LogHTTP calls f(record)
func (f HTTPLoggerFunc) LogHTTP(record LogRecord) {
	f(record)
}

// zerologHTTPLogger writes LogRecords as structured zerolog events
type zerologHTTPLogger struct {
	logger zerolog.Logger
}

// NewZerologHTTPLogger returns an HTTPLogger backed by logger
func NewZerologHTTPLogger(logger zerolog.Logger) HTTPLogger {
	return &zerologHTTPLogger{logger: logger}
}

func (l *zerologHTTPLogger) LogHTTP(r LogRecord) {
	event := l.logger.Warn()
	if r.Status >= http.StatusInternalServerError {
		event = l.logger.Error()
	}

	event.
		Str("service", r.Service).
		Str("method", r.Method).
		Str("url", r.URL).
		Time("start_time", r.StartTime).
		Dur("duration", r.Duration()).
		Int("status", r.Status).
		Str("status_text", r.StatusText).
		Msg("HTTP request failed")
}

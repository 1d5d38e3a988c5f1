package tmdb

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// recordingLogger collects LogRecords for assertions
type recordingLogger struct {
	mu      sync.Mutex
	records []LogRecord
}

func (r *recordingLogger) LogHTTP(record LogRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *recordingLogger) Records() []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogRecord(nil), r.records...)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient starts a server running handler and returns a client pointed at it
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *recordingLogger) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rec := &recordingLogger{}
	opts = append([]Option{WithHTTPLogger(rec)}, opts...)

	client, err := NewClient(server.URL, testAPIKey, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client, rec
}

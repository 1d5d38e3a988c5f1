package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Params holds flat query parameters. Values are strings or integers.
type Params map[string]any

// Values encodes the parameters as url.Values
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for key, v := range p {
		switch val := v.(type) {
		case string:
			values.Set(key, val)
		case int:
			values.Set(key, strconv.Itoa(val))
		case int64:
			values.Set(key, strconv.FormatInt(val, 10))
		default:
			values.Set(key, fmt.Sprint(val))
		}
	}
	return values
}

// envelope is the paginated wrapper TMDB puts around list payloads
type envelope struct {
	Results json.RawMessage `json:"results"`
}

// get performs one GET against path and decodes the payload into T.
// found is false when TMDB answered with a client error other than 401.
func get[T any](ctx context.Context, c *Client, path string, params Params) (T, bool, error) {
	var zero T

	body, found, err := c.execute(ctx, path, params)
	if err != nil || !found {
		return zero, found, err
	}

	payload, err := unwrapEnvelope[T](body)
	if err != nil {
		return zero, false, fmt.Errorf("failed to parse response for %s: %w", path, err)
	}
	return payload, true, nil
}

// unwrapEnvelope decodes the results field when present and non-null,
// otherwise the whole body.
func unwrapEnvelope[T any](body []byte) (T, error) {
	var payload T

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Results) > 0 && !bytes.Equal(env.Results, []byte("null")) {
		body = env.Results
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// execute sends the request and classifies failures. It returns the raw body
// of a 2xx response.
func (c *Client) execute(ctx context.Context, path string, params Params) ([]byte, bool, error) {
	endpoint := c.endpoint(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg(ErrNoConnection.Error())
		return nil, false, &Error{
			Kind:   KindNoConnection,
			Method: req.Method,
			URL:    endpoint,
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		text := statusText(resp)
		c.httpLog.LogHTTP(LogRecord{
			Service:    serviceLabel,
			Method:     req.Method,
			URL:        endpoint,
			StartTime:  startTime,
			Status:     resp.StatusCode,
			StatusText: text,
		})

		kind := Classify(resp.StatusCode)
		if kind == KindUnclassified {
			return nil, false, nil
		}
		return nil, false, &Error{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			StatusText: text,
			Method:     req.Method,
			URL:        endpoint,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Trace().
		Str("path", path).
		Dur("duration", time.Since(startTime)).
		Msg("TMDB request completed")

	return body, true, nil
}

// endpoint builds the absolute URL for a resource path
func (c *Client) endpoint(path string, params Params) string {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		endpoint += "?" + params.Values().Encode()
	}
	return endpoint
}

// statusText returns the reason phrase of the response status line
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// The fixed table of verbs the pipeline will dispatch. Anything else is a
// configuration error, never sent.
var allowedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
	http.MethodHead:    {},
}

// execute performs exactly one round trip and returns the status code and
// raw body. Transport failures come back as *NetworkError; no retries.
func (c *Client) execute(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if _, ok := allowedMethods[method]; !ok {
		return 0, nil, &UnsupportedMethodError{Method: method}
	}

	var reader io.Reader
	// GET and DELETE never carry a body, even when one was supplied.
	if body != nil && method != http.MethodGet && method != http.MethodDelete {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("paystack: marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("paystack: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	return resp.StatusCode, raw, nil
}

// do runs the full pipeline for one call: execute the round trip, then
// normalize and decode the body into a Response[T].
func do[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	statusCode, raw, err := c.execute(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](c, path, statusCode, raw)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func setString(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt(q url.Values, key string, val int64) {
	if val != 0 {
		q.Set(key, strconv.FormatInt(val, 10))
	}
}

func setBool(q url.Values, key string, val bool) {
	if val {
		q.Set(key, "true")
	}
}

func setTime(q url.Values, key string, val time.Time) {
	if !val.IsZero() {
		q.Set(key, val.Format(time.RFC3339))
	}
}

// Package upstream performs the outbound reachability check behind /ping.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstreamUnavailable matches every failure returned by Client.Echo.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Error carries the underlying failure.  Its message is the underlying
// message so it can be shown to callers verbatim.
type Error struct {
	Err error
}

func (e *Error) Error() string        { return e.Err.Error() }
func (e *Error) Unwrap() error        { return e.Err }
func (e *Error) Is(target error) bool { return target == ErrUpstreamUnavailable }

// DefaultTimeout bounds the whole outbound call.
const DefaultTimeout = 5 * time.Second

// maxBody caps how much of the upstream response is read.
const maxBody = 1 << 20

// Client calls a single upstream URL.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a Client for url.  A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// Echo issues a GET and returns the "url" field of the JSON reply, or
// "httpbin" when the reply has none or is not JSON.  Non-2xx statuses,
// transport errors and timeouts are reported as *Error.
func (c *Client) Echo(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", &Error{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return "", &Error{Err: fmt.Errorf("Request failed with status code %d", resp.StatusCode)}
	}

	var body struct {
		URL string `json:"url"`
	}
	// a 2xx reply that is not a JSON object still proves reachability
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&body); err != nil || body.URL == "" {
		return "httpbin", nil
	}
	return body.URL, nil
}

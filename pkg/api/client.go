// Package api is the HTTP client for the VitalGuard backend. Every call runs
// on a named logical channel that guarantees single-flight semantics:
// starting a request on a channel cancels the one already in flight, and the
// cancelled request's outcome is fully suppressed. Only the most recent call
// per channel can ever deliver a result to its caller.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Channel names used by the polling layer. Each name is a logical slot that
// holds at most one in-flight request.
const (
	ChannelHealth    = "health"
	ChannelBuffer    = "buffer"
	ChannelTelemetry = "telemetry"
	ChannelStatus    = "status"
	ChannelReport    = "report"
)

type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

// Client talks to one VitalGuard backend. It is safe for concurrent use.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  *slog.Logger

	mu       sync.Mutex
	gen      uint64
	inflight map[string]*flight
}

// NewClient returns a client for the backend at baseURL (e.g.
// "http://localhost:8080"). No request timeout is set: a hung request is
// superseded by the next poll on its channel.
func NewClient(baseURL string, log *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q must be http or https", baseURL)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		base:     u,
		hc:       &http.Client{},
		log:      log,
		inflight: make(map[string]*flight),
	}, nil
}

// do performs one request on the named channel. The predecessor on the same
// channel, if any, is cancelled and its slot replaced in a single
// mutex-held step, so there is no window where two requests own the channel.
func (c *Client) do(ctx context.Context, channel, method, path string, query url.Values, out any) error {
	reqCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if prev, ok := c.inflight[channel]; ok {
		prev.cancel()
	}
	c.gen++
	gen := c.gen
	c.inflight[channel] = &flight{gen: gen, cancel: cancel}
	c.mu.Unlock()

	start := time.Now()
	err := c.roundTrip(reqCtx, method, path, query, out)

	// Settle: only the request that still owns the channel slot may report
	// its outcome. A superseded request finds a newer generation in the slot
	// and is silenced regardless of how its transport call ended.
	c.mu.Lock()
	owner := c.inflight[channel]
	superseded := owner == nil || owner.gen != gen
	if !superseded {
		delete(c.inflight, channel)
	}
	c.mu.Unlock()
	cancel()

	if superseded || errors.Is(err, context.Canceled) {
		return ErrSuperseded
	}
	if err != nil {
		c.log.Debug("request failed",
			"channel", channel, "path", path, "error", err,
			"elapsed", time.Since(start))
		return err
	}
	return nil
}

// roundTrip issues the HTTP call and decodes the JSON body into out.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		return &DomainError{Message: fmt.Sprintf("undecodable response body: %v", err)}
	}
	return nil
}

// CancelAll cancels every in-flight request. Used at shutdown only; routine
// supersession goes through per-channel replacement in do.
func (c *Client) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, f := range c.inflight {
		f.cancel()
		delete(c.inflight, name)
	}
}

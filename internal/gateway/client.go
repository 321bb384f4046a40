package gateway

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

	"github.com/nfrund/reservas/internal/logging"
	"github.com/tidwall/gjson"
)

// maxBody caps how much of an upstream response is read.
const maxBody = 8 << 20

// Call describes one upstream request.
type Call struct {
	Service Service
	Method  string
	// Path is appended to the service base URL, e.g. "/bookings/user/7".
	Path  string
	Query url.Values
	// Body is encoded as JSON when non-nil.
	Body any
	// Token is sent as a bearer credential. Empty falls back to the token
	// carried by the context, see WithToken.
	Token string
}

type tokenKey struct{}

// WithToken returns a copy of ctx whose upstream calls carry token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token stored by WithToken, or "".
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Get builds a GET call.
func Get(s Service, path string, query url.Values) Call {
	return Call{Service: s, Method: http.MethodGet, Path: path, Query: query}
}

// Post builds a POST call with a JSON body.
func Post(s Service, path string, body any) Call {
	return Call{Service: s, Method: http.MethodPost, Path: path, Body: body}
}

// Put builds a PUT call with a JSON body.
func Put(s Service, path string, body any) Call {
	return Call{Service: s, Method: http.MethodPut, Path: path, Body: body}
}

// Delete builds a DELETE call.
func Delete(s Service, path string) Call {
	return Call{Service: s, Method: http.MethodDelete, Path: path}
}

// Client performs upstream calls. It holds no per-request state.
type Client struct {
	addrs   Addresses
	http    *http.Client
	metrics *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets an overall per-call timeout. Zero keeps the library
// default, which is no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client over the given service table.
func New(addrs Addresses, opts ...Option) *Client {
	c := &Client{addrs: addrs, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Addresses returns the service table the client was built with.
func (c *Client) Addresses() Addresses {
	return c.addrs
}

// Do performs call and decodes a JSON response into out. A nil out
// discards the body. Non-2xx answers are returned as *UpstreamError.
func (c *Client) Do(ctx context.Context, call Call, out any) error {
	body, err := c.send(ctx, call)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("gateway: decode %s %s %s: %w", call.Service, call.Method, call.Path, err)
	}
	return nil
}

// Relay performs call and returns the upstream JSON body untouched.
func (c *Client) Relay(ctx context.Context, call Call) (json.RawMessage, error) {
	body, err := c.send(ctx, call)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("gateway: %s %s %s: %w", call.Service, call.Method, call.Path, ErrInvalidJSON)
	}
	return json.RawMessage(body), nil
}

func (c *Client) send(ctx context.Context, call Call) ([]byte, error) {
	req, err := c.newRequest(ctx, call)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx).With("service", call.Service, "method", call.Method, "path", call.Path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(call.Service, call.Method, "error", time.Since(start))
		logger.Warn("Upstream call failed", "error", err)
		return nil, fmt.Errorf("gateway: %s %s %s: %w: %w", call.Service, call.Method, call.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	elapsed := time.Since(start)
	c.metrics.observe(call.Service, call.Method, strconv.Itoa(resp.StatusCode), elapsed)
	if err != nil {
		logger.Warn("Reading upstream response failed", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("gateway: read %s %s %s: %w: %w", call.Service, call.Method, call.Path, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := &UpstreamError{
			Service: call.Service,
			Method:  call.Method,
			Path:    call.Path,
			Status:  resp.StatusCode,
			Detail:  extractDetail(body),
		}
		logger.Warn("Upstream returned an error", "status", resp.StatusCode, "detail", ue.Detail, "elapsed", elapsed)
		return nil, ue
	}

	logger.Debug("Upstream call completed", "status", resp.StatusCode, "elapsed", elapsed)
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	base, ok := c.addrs.URL(call.Service)
	if !ok {
		return nil, fmt.Errorf("gateway: unknown service %q", call.Service)
	}

	target := base + call.Path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	var payload io.Reader
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode %s %s %s: %w", call.Service, call.Method, call.Path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("gateway: build %s %s %s: %w", call.Service, call.Method, call.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := call.Token
	if token == "" {
		token = TokenFrom(ctx)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

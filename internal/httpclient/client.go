// Package httpclient is the single request pipeline between the client and
// the pharmacy backend. Every call attaches the bearer credential when a
// session is active, and every response is inspected for auth-failure
// signals so the session is torn down in one place, not per view.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/apierr"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/metrics"
)

// DefaultTimeout bounds every backend request; anything slower is a
// connectivity failure, not an auth failure.
const DefaultTimeout = 10 * time.Second

type Client struct {
	base       string
	hc         *http.Client
	token      func() string
	onAuthFail func(ctx context.Context, message string)
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithTokenSource supplies the bearer credential; an empty string sends the
// request unauthenticated.
func WithTokenSource(f func() string) Option {
	return func(c *Client) { c.token = f }
}

// WithAuthFailureHandler is invoked once per auth-failure signal with the
// backend message, if any. The failed request is never retried.
func WithAuthFailureHandler(f func(ctx context.Context, message string)) Option {
	return func(c *Client) { c.onAuthFail = f }
}

// WithTimeout overrides the request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithRateLimit throttles outgoing requests with a token bucket.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithHTTPClient replaces the underlying transport (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		hc:    &http.Client{Timeout: DefaultTimeout},
		token: func() string { return "" },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

type ctxKey int

const skipAuthInterceptKey ctxKey = iota

// SkipAuthIntercept marks a request whose auth failures are handled by the
// caller. The login exchange uses it: a 401 there means bad credentials, not
// an invalidated session, so the teardown hook must stay quiet.
func SkipAuthIntercept(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipAuthInterceptKey, true)
}

// errBody is the optional {error, message} shape of backend failures.
type errBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apierr.FromTransport(err)
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("connectivity").Inc()
		logger.Warnf("%s %s transport failure: %v", method, path, err)
		return apierr.FromTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("connectivity").Inc()
		return apierr.FromTransport(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		metrics.RequestsTotal.WithLabelValues("success").Inc()
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	}

	var eb errBody
	_ = json.Unmarshal(data, &eb)
	e := apierr.FromResponse(resp.StatusCode, eb.Error, eb.Message)
	metrics.RequestsTotal.WithLabelValues(e.Kind.String()).Inc()
	logger.Debugf("%s %s -> %d (%s)", method, path, resp.StatusCode, e.Kind)

	if e.Kind == apierr.KindAuth {
		metrics.AuthFailures.Inc()
		if c.onAuthFail != nil && ctx.Value(skipAuthInterceptKey) == nil {
			c.onAuthFail(ctx, eb.Message)
		}
	}
	return e
}

// Package gateway is the single chokepoint for all outbound calls to the POS
// API. It owns bearer-token attachment, pagination unwrapping, a short-lived
// read-through cache for list endpoints, and one-shot refresh-and-retry on
// authorization failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cellmart/pos-client/internal/session"
	"github.com/cellmart/pos-client/pkg/apperror"
)

// DefaultListTTL is how long cached list responses stay fresh.
const DefaultListTTL = 15 * time.Second

// Client is an explicitly constructed API client. It owns its own cache and
// credential store; there is no package-level state.
type Client struct {
	baseURL string
	hc      *http.Client
	creds   *session.Store
	cache   *listCache
	listTTL time.Duration
	log     zerolog.Logger

	// onSessionExpired fires when tokens are cleared after an
	// irrecoverable authorization failure. The app decides what
	// "redirect to login" means on its surface.
	onSessionExpired func()

	reqPipeline  []RequestMiddleware
	respPipeline []ResponseMiddleware
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithListTTL overrides the default cache TTL for list reads.
func WithListTTL(ttl time.Duration) Option {
	return func(c *Client) { c.listTTL = ttl }
}

// WithSessionExpiredHook registers the callback fired when the session
// becomes irrecoverable.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// NewClient creates a client for the API rooted at baseURL (typically ending
// in /api). creds may start empty; Login populates it.
func NewClient(baseURL string, creds *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
		cache:   newListCache(),
		listTTL: DefaultListTTL,
		log:     zerolog.Nop(),
	}
	c.reqPipeline = defaultRequestPipeline()
	c.respPipeline = defaultResponsePipeline()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is what callers see: the bare payload with pagination metadata
// moved out of band. Callers never see the raw envelope.
type Response struct {
	StatusCode int
	Body       json.RawMessage
	Page       *Page
}

// Page is the pagination descriptor lifted off a paginated envelope.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Do issues a request to baseURL+path and runs the middleware pipelines.
// Non-GET methods purge the whole list cache before dispatch.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (*Response, error) {
	return c.do(ctx, method, path, body, query, false)
}

// Get is a cached read using the client's default TTL.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.GetWithTTL(ctx, path, query, c.listTTL)
}

// GetWithTTL is a read-through cached GET. The cache is best-effort and never
// the source of truth; identical concurrent misses each hit the network
// (no single-flight).
func (c *Client) GetWithTTL(ctx context.Context, path string, query url.Values, ttl time.Duration) (*Response, error) {
	key := cacheKey(path, query)
	if resp, ok := c.cache.get(key, ttl, time.Now()); ok {
		c.log.Trace().Str("path", path).Msg("list cache hit")
		return resp, nil
	}
	resp, err := c.do(ctx, http.MethodGet, path, nil, query, false)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, resp, time.Now())
	return resp, nil
}

// InvalidateCache drops every cached list. Safe to call at any time.
func (c *Client) InvalidateCache() {
	c.cache.purge()
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values, retried bool) (*Response, error) {
	req, err := c.newRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	for _, mw := range c.reqPipeline {
		if err := mw(c, req); err != nil {
			return nil, err
		}
	}

	httpResp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperror.NewTransportError(method+" "+path, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apperror.NewTransportError(method+" "+path, err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized {
		return c.recoverAuth(ctx, method, path, body, query, retried, raw)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, apperror.NewAPIError(httpResp.StatusCode, raw)
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Body: raw}
	for _, mw := range c.respPipeline {
		if err := mw(c, resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// recoverAuth is the refresh-and-retry stage. A request is replayed at most
// once: the retried marker travels with the request, so refresh failures and
// a second 401 surface as errors instead of looping.
func (c *Client) recoverAuth(ctx context.Context, method, path string, body any, query url.Values, retried bool, raw []byte) (*Response, error) {
	if retried {
		return nil, apperror.NewAPIError(http.StatusUnauthorized, raw)
	}
	refresh := c.creds.Refresh()
	if refresh == "" {
		c.expireSession()
		return nil, apperror.NewAPIError(http.StatusUnauthorized, raw)
	}
	if err := c.refreshAccessToken(ctx, refresh); err != nil {
		c.expireSession()
		return nil, fmt.Errorf("%w: %v", apperror.ErrSessionExpired, err)
	}
	c.log.Debug().Str("path", path).Msg("access token refreshed, replaying request")
	return c.do(ctx, method, path, body, query, true)
}

// refreshAccessToken exchanges the refresh token for a new access token. It
// bypasses the middleware pipeline so a failing refresh can never recurse.
func (c *Client) refreshAccessToken(ctx context.Context, refresh string) error {
	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.hc.Do(req)
	if err != nil {
		return apperror.NewTransportError("POST /auth/refresh/", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return apperror.NewTransportError("POST /auth/refresh/", err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return apperror.NewAPIError(httpResp.StatusCode, raw)
	}

	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("parsing refresh response: %w", err)
	}
	if out.Access == "" {
		return fmt.Errorf("refresh response missing access token")
	}
	if out.Refresh != "" {
		return c.creds.Set(out.Access, out.Refresh)
	}
	return c.creds.SetAccess(out.Access)
}

func (c *Client) expireSession() {
	if err := c.creds.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("clearing credentials")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

package client

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
)

const defaultTimeout = 30 * time.Second

// defaultCacheTTL bounds staleness between an external write and the
// next invalidation-driven refetch.
const defaultCacheTTL = 30 * time.Second

// Client is a typed HTTP client for the storefront API. Successful
// reads are cached; every successful mutation invalidates the cached
// entries for its resource.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      QueryCache
	cacheTTL   time.Duration

	// SalesChannels groups the sales channel calls
	SalesChannels *SalesChannelsService
	// CustomShippingOptions groups the cart shipping override calls
	CustomShippingOptions *CustomShippingOptionsService
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithToken sets the bearer token sent on every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout overrides the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithQueryCache sets the cache used for list/retrieve responses
func WithQueryCache(cache QueryCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithCacheTTL overrides how long cached reads are kept
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// New creates a new API client for the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		cacheTTL:   defaultCacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cache == nil {
		c.cache = NewInMemoryQueryCache()
	}

	c.SalesChannels = &SalesChannelsService{client: c}
	c.CustomShippingOptions = &CustomShippingOptionsService{client: c}

	return c
}

// Close releases the client's cache resources
func (c *Client) Close() error {
	return c.cache.Close()
}

// APIError is a non-2xx response from the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorInfo      `json:"error"`
	Meta    *Meta           `json:"meta"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries list pagination metadata
type Meta struct {
	Count int64 `json:"count"`
	Skip  int   `json:"skip"`
	Take  int   `json:"take"`
}

// get performs a GET, serving from the query cache when possible. The
// cache key is the request path plus encoded query, so it naturally
// carries the resource prefix.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*Meta, error) {
	key := path
	if encoded := query.Encode(); encoded != "" {
		key += "?" + encoded
	}

	if cached, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		env, err := decodeEnvelope(bytes.NewReader(cached), out)
		if err == nil {
			return env.Meta, nil
		}
		// Fall through to a fresh fetch on a corrupt entry
	}

	body, env, err := c.do(ctx, http.MethodGet, key, nil, out)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(ctx, key, body, c.cacheTTL)
	return env.Meta, nil
}

// mutate performs a write and invalidates the resource prefixes on success
func (c *Client) mutate(ctx context.Context, method, path string, reqBody, out any, invalidate ...string) error {
	var payload io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	if _, _, err := c.do(ctx, method, path, payload, out); err != nil {
		return err
	}

	for _, prefix := range invalidate {
		_ = c.cache.InvalidatePrefix(ctx, prefix)
	}
	return nil
}

// do executes one HTTP request and decodes the response envelope
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) ([]byte, *envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, &envelope{Success: true}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "ERR_UNKNOWN", Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, nil, apiErr
	}

	env, err := decodeEnvelope(bytes.NewReader(raw), out)
	if err != nil {
		return nil, nil, err
	}
	return raw, env, nil
}

// decodeEnvelope parses a response envelope and unmarshals data into out
func decodeEnvelope(r io.Reader, out any) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return &env, nil
}

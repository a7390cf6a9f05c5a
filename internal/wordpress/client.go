package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/takak2166/markdown2wordpress/internal/config"
	"github.com/takak2166/markdown2wordpress/internal/logger"
)

// Timeouts bounds each kind of request
type Timeouts struct {
	Categories time.Duration
	Tags       time.Duration
	Post       time.Duration
}

// DefaultTimeouts are used unless overridden with WithTimeouts
var DefaultTimeouts = Timeouts{
	Categories: 10 * time.Second,
	Tags:       15 * time.Second,
	Post:       30 * time.Second,
}

// Doer sends HTTP requests; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the WordPress REST API with application password auth
type Client struct {
	baseURL    string
	authHeader string
	httpClient Doer
	timeouts   Timeouts
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithTimeouts replaces the default request timeouts
func WithTimeouts(t Timeouts) Option {
	return func(c *Client) {
		c.timeouts = t
	}
}

// New creates a new WordPress client
func New(cfg *config.Config, opts ...Option) *Client {
	credentials := cfg.Username + ":" + cfg.AppPassword

	c := &Client{
		baseURL:    cfg.BaseURL(),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials)),
		httpClient: &http.Client{},
		timeouts:   DefaultTimeouts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the site URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	body   []byte
}

// makeRequest sends a request to endpoint under /wp-json and reads the whole
// response body before the timeout context is released
func (c *Client) makeRequest(ctx context.Context, timeout time.Duration, method, endpoint string, payload interface{}) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + "/wp-json" + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("Sending WordPress request", map[string]interface{}{
		"method": method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	logger.Debug("Received WordPress response", map[string]interface{}{
		"method": method,
		"url":    url,
		"status": resp.StatusCode,
		"bytes":  len(data),
	})

	return &response{status: resp.StatusCode, body: data}, nil
}

// decode unmarshals a successful response body into v
func (r *response) decode(v interface{}) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (r *response) ok(statuses ...int) bool {
	for _, s := range statuses {
		if r.status == s {
			return true
		}
	}
	return false
}

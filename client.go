package ycs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// Client is the main client for interacting with the YCS simulation API.
// After creation, the client is immutable and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// Custom headers to include in all requests
	headers map[string]string
}

// NewClient creates a new Client with the given options.
//
// The base URL may be empty; operations that require it return a
// *ConfigurationError instead of touching the network, so a missing
// YCS_API_URL surfaces as a user-visible error rather than a crash.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		headers: make(map[string]string),
		// No default timeout: a simulation run is a single long-lived
		// request and the server decides how long it takes.
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithBaseURL sets the base URL of the simulation service
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAPIKey sets the API key sent with every request
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a custom header that will be included in all requests
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// GetBaseURL returns the configured base URL
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// GetAPIKey returns the configured API key
func (c *Client) GetAPIKey() string {
	return c.apiKey
}

// NewRequest creates a new HTTP request with auth headers and custom headers
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if c.baseURL == "" {
		return nil, &ConfigurationError{Setting: "YCS_API_URL", Message: "API endpoint is not configured"}
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	// Set default headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Set custom headers
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// Do executes an HTTP request. Exactly one attempt is made: a failed
// simulation run is re-triggered by the user, never retried silently.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

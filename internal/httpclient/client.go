package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Config configures a Client.
type Config struct {
	Timeout        time.Duration
	MaxRetries     int
	Backoff        BackoffConfig
	RetryableCodes []int
	Headers        map[string]string
	UserAgent      string
}

// Client wraps http.Client with retry logic. Requests are retried on
// transport errors and on the configured status codes, with exponential
// backoff between attempts. Each outgoing request carries an
// X-Request-ID header for correlation with provider-side logs.
type Client struct {
	client *http.Client
	config Config
}

// New creates a Client, filling unset configuration with defaults.
func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.Backoff == (BackoffConfig{}) {
		config.Backoff = DefaultBackoffConfig()
	}
	if len(config.RetryableCodes) == 0 {
		config.RetryableCodes = []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		}
	}
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}
	if config.UserAgent == "" {
		config.UserAgent = "aiproviders/1.0"
	}
	config.Headers["User-Agent"] = config.UserAgent

	return &Client{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
		config: config,
	}
}

// PostJSON marshals body, sends it to url with the given extra headers and
// returns the raw response body. Non-2xx responses are returned to the
// caller as a *StatusError carrying the body for classification.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}) ([]byte, string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	requestID := uuid.NewString()

	var resp *http.Response
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(c.config.Backoff, attempt)):
			case <-ctx.Done():
				return nil, requestID, ctx.Err()
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if reqErr != nil {
			return nil, requestID, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		for k, v := range c.config.Headers {
			req.Header.Set(k, v)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err = c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, requestID, ctx.Err()
			}
			continue
		}
		if c.retryable(resp.StatusCode) && attempt < c.config.MaxRetries {
			_ = resp.Body.Close()
			continue
		}
		break
	}
	if err != nil {
		return nil, requestID, fmt.Errorf("request failed after %d attempts: %w", c.config.MaxRetries+1, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestID, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, requestID, &StatusError{StatusCode: resp.StatusCode, Body: data}
	}
	return data, requestID, nil
}

func (c *Client) retryable(statusCode int) bool {
	for _, code := range c.config.RetryableCodes {
		if code == statusCode {
			return true
		}
	}
	return false
}

// StatusError is returned for non-2xx responses so callers can classify
// the failure from the status code and the provider's error payload.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, truncate(string(e.Body), 200))
}

// ErrorMessage extracts the human-readable message from a provider error
// payload of the common {"error": {"message": ...}} shape, falling back to
// the raw body.
func (e *StatusError) ErrorMessage() string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return truncate(string(e.Body), 200)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Package openai provides thin clients for OpenAI-compatible endpoints:
// chat completions for text and images/generations for images. Any
// service speaking the OpenAI dialect works, including hosted proxies.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/artspark/aiproviders/internal/httpclient"
	"github.com/artspark/aiproviders/pkg/types"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config configures an OpenAI-compatible client.
type Config struct {
	Model   string
	APIKey  string
	APIBase string
	Timeout time.Duration
	Logger  *log.Logger
}

// client is the shared core behind the text and image providers.
type client struct {
	config  Config
	http    *httpclient.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

func newClient(config Config) (*client, error) {
	if config.APIKey == "" {
		return nil, types.NewConfigError(types.FormatOpenAI, "OPENAI_API_KEY", "API key is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &client{
		config: config,
		http:   httpclient.New(httpclient.Config{Timeout: config.Timeout}),
		// Conservative client-side ceiling; server-side limits vary per proxy.
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
		logger:  logger,
	}, nil
}

func (c *client) endpoint(path string) string {
	base := strings.TrimSuffix(c.config.APIBase, "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base + path
}

// post performs one authenticated call and decodes the response into out.
func (c *client) post(ctx context.Context, operation, path string, reqBody, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	headers := map[string]string{"Authorization": "Bearer " + c.config.APIKey}
	body, requestID, err := c.http.PostJSON(ctx, c.endpoint(path), headers, reqBody)
	if err != nil {
		return classifyError(operation, requestID, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return types.NewProviderError(types.FormatOpenAI, types.ErrCodeUnknown, "failed to decode response: "+err.Error()).
			WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
	}
	return nil
}

func classifyError(operation, requestID string, err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		code := types.ClassifyHTTPError(statusErr.StatusCode)
		return types.NewProviderError(types.FormatOpenAI, code, statusErr.ErrorMessage()).
			WithOperation(operation).WithStatusCode(statusErr.StatusCode).
			WithRequestID(requestID).WithOriginalErr(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.NewProviderError(types.FormatOpenAI, types.ErrCodeTimeout, "request timed out").
			WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return types.NewNetworkError(types.FormatOpenAI, err.Error()).
		WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
}

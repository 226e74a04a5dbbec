// Package gemini provides thin clients for Google's Gemini models, either
// against the Generative Language API directly (API key) or hosted on
// Vertex AI (application default credentials).
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"

	"github.com/artspark/aiproviders/internal/httpclient"
	"github.com/artspark/aiproviders/pkg/types"
)

const (
	standardBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	vertexScope     = "https://www.googleapis.com/auth/cloud-platform"
)

// Config configures a Gemini client in either mode.
type Config struct {
	Model string

	// Direct mode.
	APIKey  string
	APIBase string

	// Vertex mode. When VertexAI is set ProjectID is required and
	// credentials come from the application default chain
	// (GOOGLE_APPLICATION_CREDENTIALS).
	VertexAI  bool
	ProjectID string
	Location  string

	Timeout time.Duration
	Logger  *log.Logger
}

// client is the shared core behind the text and image providers.
type client struct {
	config      Config
	http        *httpclient.Client
	tokenSource oauth2.TokenSource
	limiter     *rate.Limiter
	logger      *log.Logger
}

func newClient(config Config) (*client, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &client{
		config: config,
		http:   httpclient.New(httpclient.Config{Timeout: config.Timeout}),
		// Client-side limit matching the free-tier quota of 15 RPM.
		limiter: rate.NewLimiter(rate.Every(time.Minute/15), 15),
		logger:  logger,
	}

	if config.VertexAI {
		if config.ProjectID == "" {
			return nil, types.NewConfigError(types.FormatVertex, "VERTEX_PROJECT_ID", "project ID is required in vertex mode")
		}
		creds, err := google.FindDefaultCredentials(context.Background(), vertexScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials for vertex: %w", err)
		}
		c.tokenSource = creds.TokenSource
	} else if config.APIKey == "" {
		return nil, types.NewConfigError(types.FormatGemini, "GOOGLE_API_KEY", "API key is required in direct mode")
	}

	return c, nil
}

func (c *client) format() types.ProviderFormat {
	if c.config.VertexAI {
		return types.FormatVertex
	}
	return types.FormatGemini
}

// endpoint builds the generateContent URL for the configured mode.
func (c *client) endpoint(model string) string {
	if c.config.VertexAI {
		location := c.config.Location
		if location == "" {
			location = "us-central1"
		}
		return fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
			location, c.config.ProjectID, location, model)
	}

	base := strings.TrimSuffix(c.config.APIBase, "/")
	if base == "" {
		base = standardBaseURL
	}
	return fmt.Sprintf("%s/models/%s:generateContent", base, model)
}

func (c *client) authHeaders() (map[string]string, error) {
	if c.config.VertexAI {
		token, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to get vertex access token: %w", err)
		}
		return map[string]string{"Authorization": "Bearer " + token.AccessToken}, nil
	}
	return map[string]string{"x-goog-api-key": c.config.APIKey}, nil
}

// generate performs one generateContent call and decodes the response.
func (c *client) generate(ctx context.Context, operation string, req GenerateContentRequest) (*GenerateContentResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	headers, err := c.authHeaders()
	if err != nil {
		return nil, types.NewProviderError(c.format(), types.ErrCodeAuthentication, err.Error()).
			WithOperation(operation).WithOriginalErr(err)
	}

	body, requestID, err := c.http.PostJSON(ctx, c.endpoint(c.config.Model), headers, req)
	if err != nil {
		return nil, classifyError(c.format(), operation, requestID, err)
	}

	var resp GenerateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, types.NewProviderError(c.format(), types.ErrCodeUnknown, "failed to decode response: "+err.Error()).
			WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
	}
	if len(resp.Candidates) == 0 {
		return nil, types.NewProviderError(c.format(), types.ErrCodeContentFilter, "response contained no candidates").
			WithOperation(operation).WithRequestID(requestID)
	}
	return &resp, nil
}

// classifyError maps transport results onto ProviderError codes.
func classifyError(format types.ProviderFormat, operation, requestID string, err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		code := types.ClassifyHTTPError(statusErr.StatusCode)
		return types.NewProviderError(format, code, statusErr.ErrorMessage()).
			WithOperation(operation).WithStatusCode(statusErr.StatusCode).
			WithRequestID(requestID).WithOriginalErr(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.NewProviderError(format, types.ErrCodeTimeout, "request timed out").
			WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return types.NewNetworkError(format, err.Error()).
		WithOperation(operation).WithRequestID(requestID).WithOriginalErr(err)
}

func buildContents(req types.TextRequest) ([]Content, *Content) {
	contents := []Content{{
		Role:  "user",
		Parts: []Part{{Text: req.Prompt}},
	}}

	var system *Content
	if req.SystemPrompt != "" {
		system = &Content{Parts: []Part{{Text: req.SystemPrompt}}}
	}
	return contents, system
}

func decodeImages(resp *GenerateContentResponse) ([]types.GeneratedImage, error) {
	var images []types.GeneratedImage
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode inline image data: %w", err)
			}
			images = append(images, types.GeneratedImage{
				MimeType: part.InlineData.MimeType,
				Data:     data,
			})
		}
	}
	return images, nil
}

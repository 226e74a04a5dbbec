package types

import "context"

// TextRequest carries the inputs for a single text generation call.
type TextRequest struct {
	// SystemPrompt is prepended as a system instruction when the backend
	// supports one.
	SystemPrompt string
	Prompt       string
	Temperature  float64
	MaxTokens    int
}

// TextResponse is the normalized result of a text generation call.
type TextResponse struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage reports token accounting as returned by the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ImageRequest carries the inputs for a single image generation call.
type ImageRequest struct {
	Prompt string
	// Count is the number of images to generate; zero means one.
	Count int
	// Size is a backend-specific resolution hint (e.g. "1024x1024").
	// Backends that cannot honor it are expected to reject it themselves.
	Size string
}

// GeneratedImage is a single decoded image returned by a backend.
type GeneratedImage struct {
	MimeType string
	Data     []byte
}

// ImageResponse is the normalized result of an image generation call.
type ImageResponse struct {
	Images []GeneratedImage
}

// TextProvider is the capability contract satisfied by every text
// generation client the factory can construct.
type TextProvider interface {
	Name() string
	Format() ProviderFormat
	Model() string
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)
}

// ImageProvider is the capability contract satisfied by every image
// generation client the factory can construct.
type ImageProvider interface {
	Name() string
	Format() ProviderFormat
	Model() string
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)
}

package gemini

import (
	"context"

	"github.com/artspark/aiproviders/pkg/types"
)

// ImageProvider generates images with a Gemini image model. Images come
// back as base64 inlineData parts of the generateContent response.
type ImageProvider struct {
	*client
}

// NewImageProvider creates a Gemini image provider.
func NewImageProvider(config Config) (*ImageProvider, error) {
	c, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &ImageProvider{client: c}, nil
}

func (p *ImageProvider) Name() string {
	if p.config.VertexAI {
		return "gemini-vertex"
	}
	return "gemini"
}

func (p *ImageProvider) Format() types.ProviderFormat { return p.format() }

func (p *ImageProvider) Model() string { return p.config.Model }

// GenerateImage implements types.ImageProvider.
func (p *ImageProvider) GenerateImage(ctx context.Context, req types.ImageRequest) (*types.ImageResponse, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	generationConfig := &GenerationConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		CandidateCount:     count,
	}
	if req.Size != "" {
		generationConfig.ImageConfig = &ImageConfig{ImageSize: req.Size}
	}

	wireReq := GenerateContentRequest{
		Contents: []Content{{
			Role:  "user",
			Parts: []Part{{Text: req.Prompt}},
		}},
		GenerationConfig: generationConfig,
	}

	resp, err := p.generate(ctx, "generate_image", wireReq)
	if err != nil {
		return nil, err
	}

	images, err := decodeImages(resp)
	if err != nil {
		return nil, types.NewProviderError(p.format(), types.ErrCodeUnknown, err.Error()).
			WithOperation("generate_image").WithOriginalErr(err)
	}
	if len(images) == 0 {
		return nil, types.NewProviderError(p.format(), types.ErrCodeContentFilter, "response contained no image data").
			WithOperation("generate_image")
	}
	return &types.ImageResponse{Images: images}, nil
}

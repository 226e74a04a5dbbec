package openai

import (
	"context"
	"encoding/base64"

	"github.com/artspark/aiproviders/pkg/types"
)

// ImageProvider generates images through an OpenAI-compatible
// images/generations endpoint. This backend tops out at 1K resolution;
// requests for higher tiers are rejected by the service itself.
type ImageProvider struct {
	*client
}

// NewImageProvider creates an OpenAI-compatible image provider.
func NewImageProvider(config Config) (*ImageProvider, error) {
	c, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &ImageProvider{client: c}, nil
}

func (p *ImageProvider) Name() string { return "openai" }

func (p *ImageProvider) Format() types.ProviderFormat { return types.FormatOpenAI }

func (p *ImageProvider) Model() string { return p.config.Model }

// GenerateImage implements types.ImageProvider.
func (p *ImageProvider) GenerateImage(ctx context.Context, req types.ImageRequest) (*types.ImageResponse, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	wireReq := ImageGenerationRequest{
		Model:          p.config.Model,
		Prompt:         req.Prompt,
		N:              count,
		Size:           req.Size,
		ResponseFormat: "b64_json",
	}

	var resp ImageGenerationResponse
	if err := p.post(ctx, "generate_image", "/images/generations", wireReq, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, types.NewProviderError(types.FormatOpenAI, types.ErrCodeContentFilter, "response contained no image data").
			WithOperation("generate_image")
	}

	images := make([]types.GeneratedImage, 0, len(resp.Data))
	for _, item := range resp.Data {
		if item.B64JSON == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(item.B64JSON)
		if err != nil {
			return nil, types.NewProviderError(types.FormatOpenAI, types.ErrCodeUnknown, "failed to decode image data: "+err.Error()).
				WithOperation("generate_image").WithOriginalErr(err)
		}
		images = append(images, types.GeneratedImage{MimeType: "image/png", Data: data})
	}
	if len(images) == 0 {
		return nil, types.NewProviderError(types.FormatOpenAI, types.ErrCodeUnknown, "response contained no base64 image payloads").
			WithOperation("generate_image")
	}
	return &types.ImageResponse{Images: images}, nil
}

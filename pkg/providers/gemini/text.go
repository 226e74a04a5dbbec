package gemini

import (
	"context"

	"github.com/artspark/aiproviders/pkg/types"
)

// TextProvider generates text with a Gemini model.
type TextProvider struct {
	*client
}

// NewTextProvider creates a Gemini text provider. In vertex mode the
// application default credential chain is resolved up front so that a
// misconfigured environment fails at construction, not on first request.
func NewTextProvider(config Config) (*TextProvider, error) {
	c, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &TextProvider{client: c}, nil
}

func (p *TextProvider) Name() string {
	if p.config.VertexAI {
		return "gemini-vertex"
	}
	return "gemini"
}

func (p *TextProvider) Format() types.ProviderFormat { return p.format() }

func (p *TextProvider) Model() string { return p.config.Model }

// GenerateText implements types.TextProvider.
func (p *TextProvider) GenerateText(ctx context.Context, req types.TextRequest) (*types.TextResponse, error) {
	contents, system := buildContents(req)

	wireReq := GenerateContentRequest{
		Contents:          contents,
		SystemInstruction: system,
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		wireReq.GenerationConfig = &GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := p.generate(ctx, "generate_text", wireReq)
	if err != nil {
		return nil, err
	}

	candidate := resp.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	result := &types.TextResponse{
		Text:         text,
		FinishReason: candidate.FinishReason,
	}
	if resp.UsageMetadata != nil {
		result.Usage = types.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return result, nil
}

package openai

import (
	"context"

	"github.com/artspark/aiproviders/pkg/types"
)

// TextProvider generates text through an OpenAI-compatible chat
// completions endpoint.
type TextProvider struct {
	*client
}

// NewTextProvider creates an OpenAI-compatible text provider.
func NewTextProvider(config Config) (*TextProvider, error) {
	c, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &TextProvider{client: c}, nil
}

func (p *TextProvider) Name() string { return "openai" }

func (p *TextProvider) Format() types.ProviderFormat { return types.FormatOpenAI }

func (p *TextProvider) Model() string { return p.config.Model }

// GenerateText implements types.TextProvider.
func (p *TextProvider) GenerateText(ctx context.Context, req types.TextRequest) (*types.TextResponse, error) {
	var messages []ChatMessage
	if req.SystemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: req.Prompt})

	wireReq := ChatRequest{
		Model:       p.config.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var resp ChatResponse
	if err := p.post(ctx, "generate_text", "/chat/completions", wireReq, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, types.NewProviderError(types.FormatOpenAI, types.ErrCodeContentFilter, "response contained no choices").
			WithOperation("generate_text").WithRequestID(resp.ID)
	}

	choice := resp.Choices[0]
	result := &types.TextResponse{
		Text:         choice.Message.Content,
		FinishReason: choice.FinishReason,
	}
	if resp.Usage != nil {
		result.Usage = types.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return result, nil
}

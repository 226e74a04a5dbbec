package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artspark/aiproviders/pkg/types"
)

func testLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestNewTextProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewTextProvider(Config{Model: "gpt-4o"})
	require.Error(t, err)

	var configErr *types.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "OPENAI_API_KEY", configErr.Variable)
}

func TestGenerateText(t *testing.T) {
	var gotReq ChatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := ChatResponse{
			ID:    "chatcmpl-1",
			Model: gotReq.Model,
			Choices: []ChatChoice{{
				Message:      ChatMessage{Role: "assistant", Content: "hello there"},
				FinishReason: "stop",
			}},
			Usage: &ChatUsage{PromptTokens: 7, CompletionTokens: 3, TotalTokens: 10},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	provider, err := NewTextProvider(Config{
		Model:   "gpt-4o",
		APIKey:  "sk-test",
		APIBase: server.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	resp, err := provider.GenerateText(context.Background(), types.TextRequest{
		SystemPrompt: "be brief",
		Prompt:       "say hello",
		Temperature:  0.2,
		MaxTokens:    64,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello there", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 10, resp.Usage.TotalTokens)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "say hello", gotReq.Messages[1].Content)
}

func TestGenerateText_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer server.Close()

	provider, err := NewTextProvider(Config{
		Model:   "gpt-4o",
		APIKey:  "sk-bad",
		APIBase: server.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	_, err = provider.GenerateText(context.Background(), types.TextRequest{Prompt: "hi"})
	require.Error(t, err)

	var providerErr *types.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, types.ErrCodeAuthentication, providerErr.Code)
	assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
	assert.Contains(t, providerErr.Message, "invalid api key")
	assert.False(t, providerErr.IsRetryable())
}

func TestGenerateText_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
	}))
	defer server.Close()

	provider, err := NewTextProvider(Config{
		Model:   "gpt-4o",
		APIKey:  "sk-test",
		APIBase: server.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	_, err = provider.GenerateText(context.Background(), types.TextRequest{Prompt: "hi"})
	require.Error(t, err)

	var providerErr *types.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, types.ErrCodeContentFilter, providerErr.Code)
}

func TestGenerateImage(t *testing.T) {
	pixels := []byte{0x89, 0x50, 0x4e, 0x47}
	var gotReq ImageGenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/images/generations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := ImageGenerationResponse{
			Data: []ImageData{{B64JSON: base64.StdEncoding.EncodeToString(pixels)}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	provider, err := NewImageProvider(Config{
		Model:   "gpt-image-1",
		APIKey:  "sk-test",
		APIBase: server.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	resp, err := provider.GenerateImage(context.Background(), types.ImageRequest{
		Prompt: "a lighthouse at dusk",
		Size:   "1024x1024",
	})
	require.NoError(t, err)

	require.Len(t, resp.Images, 1)
	assert.Equal(t, pixels, resp.Images[0].Data)
	assert.Equal(t, "image/png", resp.Images[0].MimeType)

	assert.Equal(t, "b64_json", gotReq.ResponseFormat)
	assert.Equal(t, "1024x1024", gotReq.Size)
	assert.Equal(t, 1, gotReq.N)
}

func TestEndpoint_DefaultBase(t *testing.T) {
	c, err := newClient(Config{APIKey: "sk-test", Logger: testLogger()})
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1/chat/completions", c.endpoint("/chat/completions"))
}

func TestEndpoint_TrailingSlashTrimmed(t *testing.T) {
	c, err := newClient(Config{APIKey: "sk-test", APIBase: "https://aihubmix.com/v1/", Logger: testLogger()})
	require.NoError(t, err)

	assert.Equal(t, "https://aihubmix.com/v1/images/generations", c.endpoint("/images/generations"))
}

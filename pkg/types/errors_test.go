package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError_Message(t *testing.T) {
	err := NewConfigError(FormatOpenAI, "OPENAI_API_KEY", "set it in the settings store or the environment")

	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "settings store")
	assert.True(t, IsConfigError(err))
}

func TestConfigError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("startup failed: %w", NewConfigError(FormatVertex, "VERTEX_PROJECT_ID", ""))

	var configErr *ConfigError
	require.ErrorAs(t, wrapped, &configErr)
	assert.Equal(t, "VERTEX_PROJECT_ID", configErr.Variable)
	assert.Equal(t, FormatVertex, configErr.Format)
}

func TestProviderError_Error(t *testing.T) {
	err := NewProviderError(FormatGemini, ErrCodeRateLimit, "quota exceeded").
		WithStatusCode(http.StatusTooManyRequests).
		WithOperation("generate_text").
		WithRequestID("req-1")

	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, "generate_text", err.Operation)
	assert.Equal(t, "req-1", err.RequestID)
}

func TestProviderError_Unwrap(t *testing.T) {
	original := errors.New("connection refused")
	err := NewNetworkError(FormatOpenAI, "request failed").WithOriginalErr(original)

	assert.ErrorIs(t, err, original)
}

func TestProviderError_IsRetryable(t *testing.T) {
	retryable := []ErrorCode{ErrCodeRateLimit, ErrCodeServerError, ErrCodeTimeout, ErrCodeNetwork}
	for _, code := range retryable {
		err := NewProviderError(FormatGemini, code, "x")
		assert.True(t, err.IsRetryable(), "code %s should be retryable", code)
	}

	terminal := []ErrorCode{ErrCodeAuthentication, ErrCodeInvalidRequest, ErrCodeNotFound, ErrCodeContentFilter, ErrCodeUnknown}
	for _, code := range terminal {
		err := NewProviderError(FormatGemini, code, "x")
		assert.False(t, err.IsRetryable(), "code %s should not be retryable", code)
	}
}

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status   int
		expected ErrorCode
	}{
		{http.StatusUnauthorized, ErrCodeAuthentication},
		{http.StatusForbidden, ErrCodeAuthentication},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusInternalServerError, ErrCodeServerError},
		{http.StatusBadGateway, ErrCodeServerError},
		{http.StatusTeapot, ErrCodeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyHTTPError(tt.status), "status %d", tt.status)
	}
}

// Package types defines the shared contracts for the provider kit:
// provider formats, resolved configuration records, capability interfaces
// implemented by each provider client, and the error types surfaced to
// callers.
package types

// ProviderFormat identifies which backend API dialect a provider speaks.
type ProviderFormat string

const (
	// FormatGemini talks to the Google Generative Language API directly
	// with an API key.
	FormatGemini ProviderFormat = "gemini"
	// FormatOpenAI talks to any OpenAI-compatible chat/images endpoint.
	FormatOpenAI ProviderFormat = "openai"
	// FormatVertex talks to the Gemini models hosted on Google Cloud
	// Vertex AI, authenticated with application default credentials.
	FormatVertex ProviderFormat = "vertex"
)

// ProviderKind selects which generation capability a format lookup is for.
// The empty kind resolves the general, non-capability-specific format.
type ProviderKind string

const (
	KindText    ProviderKind = "text"
	KindImage   ProviderKind = "image"
	KindGeneral ProviderKind = ""
)

// ProviderSettings is the resolved, format-specific bundle of credentials
// and endpoints needed to construct a client. It is rebuilt from scratch on
// every resolution and never cached.
type ProviderSettings struct {
	Format ProviderFormat

	// Populated for the gemini and openai formats. APIBase is optional for
	// gemini and defaults to the hosted proxy for openai.
	APIKey  string
	APIBase string

	// Populated for the vertex format.
	ProjectID string
	Location  string
}

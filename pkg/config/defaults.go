package config

import "github.com/artspark/aiproviders/pkg/types"

// Settings/environment keys consulted during resolution. The same names
// are used for environment variables and for keys in the settings store.
const (
	KeyProviderFormat      = "AI_PROVIDER_FORMAT"
	KeyTextProviderFormat  = "AI_TEXT_PROVIDER_FORMAT"
	KeyImageProviderFormat = "AI_IMAGE_PROVIDER_FORMAT"

	KeyGoogleAPIKey  = "GOOGLE_API_KEY"
	KeyGoogleAPIBase = "GOOGLE_API_BASE"

	KeyOpenAIAPIKey  = "OPENAI_API_KEY"
	KeyOpenAIAPIBase = "OPENAI_API_BASE"

	KeyVertexProjectID = "VERTEX_PROJECT_ID"
	KeyVertexLocation  = "VERTEX_LOCATION"
)

// Defaults applied when no configuration source provides a value. Kept in
// one place so the priority algorithm and the literals stay independently
// testable.
const (
	DefaultFormat         = types.FormatGemini
	DefaultTextModel      = "gemini-3-flash-preview"
	DefaultImageModel     = "gemini-3-pro-image-preview"
	DefaultOpenAIAPIBase  = "https://aihubmix.com/v1"
	DefaultVertexLocation = "us-central1"
)

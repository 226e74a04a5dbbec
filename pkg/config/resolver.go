// Package config resolves runtime provider configuration from a layered
// priority scheme: kind-specific environment override, settings store
// (kind-specific then general), general environment variable, and finally
// hard defaults. Every resolution runs from scratch; nothing is cached and
// nothing is mutated, so a single Resolver is safe for concurrent use.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/artspark/aiproviders/pkg/settings"
	"github.com/artspark/aiproviders/pkg/types"
)

// Resolver resolves provider formats and credentials. The zero value is
// not usable; construct one with NewResolver.
type Resolver struct {
	store     settings.Store
	storeSet  bool
	lookupEnv func(string) (string, bool)
	logger    *log.Logger
	debug     bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore injects an explicit settings store. When this option is not
// used the resolver consults the application-wide store installed via
// settings.SetDefault, which may legitimately be absent.
func WithStore(s settings.Store) Option {
	return func(r *Resolver) {
		r.store = s
		r.storeSet = true
	}
}

// WithEnvLookup overrides environment access, primarily for tests.
func WithEnvLookup(fn func(string) (string, bool)) Option {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithDebug enables per-step resolution logging.
func WithDebug(enabled bool) Option {
	return func(r *Resolver) { r.debug = enabled }
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		lookupEnv: os.LookupEnv,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// activeStore returns the store to consult, which may be nil. A nil store
// is treated as "every key absent", never as an error.
func (r *Resolver) activeStore() settings.Store {
	if r.storeSet {
		return r.store
	}
	return settings.Default()
}

func (r *Resolver) storeLookup(key string) (string, bool) {
	store := r.activeStore()
	if store == nil {
		return "", false
	}
	return store.Lookup(key)
}

func (r *Resolver) debugf(format string, args ...interface{}) {
	if r.debug {
		r.logger.Printf("[config] "+format, args...)
	}
}

// formatKey returns the kind-specific settings/environment key, or ""
// when the kind has no specific key.
func formatKey(kind types.ProviderKind) string {
	switch kind {
	case types.KindText:
		return KeyTextProviderFormat
	case types.KindImage:
		return KeyImageProviderFormat
	}
	return ""
}

// ProviderFormat resolves the provider format for the given kind.
//
// Priority, first non-empty match wins:
//  1. Kind-specific environment variable. Checked first so operators can
//     override a single capability without touching persisted settings.
//  2. Kind-specific key in the settings store.
//  3. General AI_PROVIDER_FORMAT key in the settings store.
//  4. General AI_PROVIDER_FORMAT environment variable.
//  5. The gemini default.
//
// The result is lower-cased but deliberately not validated: unrecognized
// values take the gemini code path during credential resolution.
func (r *Resolver) ProviderFormat(kind types.ProviderKind) types.ProviderFormat {
	specificKey := formatKey(kind)

	if specificKey != "" {
		if v, ok := r.lookupEnv(specificKey); ok && v != "" {
			r.debugf("using %s from environment: %s", specificKey, v)
			return types.ProviderFormat(strings.ToLower(v))
		}
		if v, ok := r.storeLookup(specificKey); ok && v != "" {
			r.debugf("using %s from settings store: %s", specificKey, v)
			return types.ProviderFormat(strings.ToLower(v))
		}
	}

	if v, ok := r.storeLookup(KeyProviderFormat); ok && v != "" {
		r.debugf("using %s from settings store: %s", KeyProviderFormat, v)
		return types.ProviderFormat(strings.ToLower(v))
	}

	if v, ok := r.lookupEnv(KeyProviderFormat); ok && v != "" {
		r.debugf("using %s from environment: %s", KeyProviderFormat, v)
		return types.ProviderFormat(strings.ToLower(v))
	}

	r.debugf("using default provider format: %s", DefaultFormat)
	return DefaultFormat
}

// Value resolves a single named configuration value.
//
// Priority: settings store, environment variable, supplied default, "".
// Presence of the key in the store short-circuits the remaining tiers even
// when its value is empty, so operators can explicitly blank out a value
// to suppress the environment fallback.
func (r *Resolver) Value(key, defaultValue string) string {
	if v, ok := r.storeLookup(key); ok {
		r.debugf("using %s from settings store (value %s)", key, maskValue(key, v))
		return v
	}

	if v, ok := r.lookupEnv(key); ok {
		r.debugf("using %s from environment (value %s)", key, maskValue(key, v))
		return v
	}

	if defaultValue != "" {
		r.debugf("using %s default: %s", key, defaultValue)
		return defaultValue
	}

	r.debugf("no value found for %s", key)
	return ""
}

// ProviderConfig resolves the full provider configuration for the given
// kind. It fails with a *types.ConfigError when a required credential is
// missing; any other format value, recognized or not, resolves on the
// gemini path.
func (r *Resolver) ProviderConfig(kind types.ProviderKind) (*types.ProviderSettings, error) {
	format := r.ProviderFormat(kind)

	switch format {
	case types.FormatVertex:
		projectID := r.Value(KeyVertexProjectID, "")
		location := r.Value(KeyVertexLocation, DefaultVertexLocation)

		if projectID == "" {
			return nil, types.NewConfigError(types.FormatVertex, KeyVertexProjectID,
				"ensure GOOGLE_APPLICATION_CREDENTIALS also points to your service account JSON file")
		}

		r.logger.Printf("[config] provider config - format: vertex, project: %s, location: %s", projectID, location)
		return &types.ProviderSettings{
			Format:    types.FormatVertex,
			ProjectID: projectID,
			Location:  location,
		}, nil

	case types.FormatOpenAI:
		apiKey := r.Value(KeyOpenAIAPIKey, "")
		apiBase := r.Value(KeyOpenAIAPIBase, DefaultOpenAIAPIBase)

		if apiKey == "" {
			return nil, types.NewConfigError(types.FormatOpenAI, KeyOpenAIAPIKey,
				"set it in the settings store or the environment")
		}

		r.logger.Printf("[config] provider config - format: openai, api_base: %s", apiBase)
		return &types.ProviderSettings{
			Format:  types.FormatOpenAI,
			APIKey:  apiKey,
			APIBase: apiBase,
		}, nil

	default:
		// Gemini path, also taken by unrecognized format strings.
		apiKey := r.Value(KeyGoogleAPIKey, "")
		apiBase := r.Value(KeyGoogleAPIBase, "")

		r.logger.Printf("[config] provider config - format: gemini, api_base: %s, api_key: %s",
			apiBase, maskValue(KeyGoogleAPIKey, apiKey))

		if apiKey == "" {
			return nil, types.NewConfigError(types.FormatGemini, KeyGoogleAPIKey,
				"set it in the settings store or the environment")
		}

		return &types.ProviderSettings{
			Format:  types.FormatGemini,
			APIKey:  apiKey,
			APIBase: apiBase,
		}, nil
	}
}

// maskValue hides credential material in log output. Keys carrying secrets
// are masked entirely; other values pass through.
func maskValue(key, value string) string {
	if value == "" {
		return "<unset>"
	}
	if strings.Contains(key, "KEY") || strings.Contains(key, "SECRET") || strings.Contains(key, "TOKEN") {
		return "***"
	}
	return value
}

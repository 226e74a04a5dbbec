// Package factory constructs text and image provider clients from resolved
// runtime configuration. It is the only entry point other parts of the
// system are expected to use: resolve the format, then dispatch to the
// registered constructor for it.
package factory

import (
	"log"
	"sync"

	"github.com/artspark/aiproviders/pkg/config"
	"github.com/artspark/aiproviders/pkg/providers/gemini"
	"github.com/artspark/aiproviders/pkg/providers/openai"
	"github.com/artspark/aiproviders/pkg/types"
)

// TextConstructor builds a text provider from resolved settings.
type TextConstructor func(settings *types.ProviderSettings, model string, logger *log.Logger) (types.TextProvider, error)

// ImageConstructor builds an image provider from resolved settings.
type ImageConstructor func(settings *types.ProviderSettings, model string, logger *log.Logger) (types.ImageProvider, error)

// Factory resolves configuration and constructs provider clients. Every
// call re-resolves from scratch; the factory holds no per-call state and
// is safe for concurrent use.
type Factory struct {
	resolver *config.Resolver
	logger   *log.Logger

	mutex             sync.RWMutex
	textConstructors  map[types.ProviderFormat]TextConstructor
	imageConstructors map[types.ProviderFormat]ImageConstructor
}

// Option configures a Factory.
type Option func(*Factory)

// WithResolver injects the configuration resolver.
func WithResolver(r *config.Resolver) Option {
	return func(f *Factory) { f.resolver = r }
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// New creates a factory with the built-in constructors registered for the
// gemini, openai and vertex formats.
func New(opts ...Option) *Factory {
	f := &Factory{
		logger:            log.Default(),
		textConstructors:  make(map[types.ProviderFormat]TextConstructor),
		imageConstructors: make(map[types.ProviderFormat]ImageConstructor),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.resolver == nil {
		f.resolver = config.NewResolver(config.WithLogger(f.logger))
	}

	f.RegisterTextConstructor(types.FormatGemini, newGeminiText)
	f.RegisterTextConstructor(types.FormatVertex, newGeminiText)
	f.RegisterTextConstructor(types.FormatOpenAI, newOpenAIText)
	f.RegisterImageConstructor(types.FormatGemini, newGeminiImage)
	f.RegisterImageConstructor(types.FormatVertex, newGeminiImage)
	f.RegisterImageConstructor(types.FormatOpenAI, newOpenAIImage)
	return f
}

// RegisterTextConstructor registers or replaces the text constructor for a
// format.
func (f *Factory) RegisterTextConstructor(format types.ProviderFormat, ctor TextConstructor) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.textConstructors[format] = ctor
}

// RegisterImageConstructor registers or replaces the image constructor for
// a format.
func (f *Factory) RegisterImageConstructor(format types.ProviderFormat, ctor ImageConstructor) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.imageConstructors[format] = ctor
}

// ProviderFormat resolves the configured format for the given kind.
func (f *Factory) ProviderFormat(kind types.ProviderKind) types.ProviderFormat {
	return f.resolver.ProviderFormat(kind)
}

// TextProvider resolves the text configuration and constructs the matching
// text provider. An empty model selects the default text model.
func (f *Factory) TextProvider(model string) (types.TextProvider, error) {
	if model == "" {
		model = config.DefaultTextModel
	}

	settings, err := f.resolver.ProviderConfig(types.KindText)
	if err != nil {
		return nil, err
	}

	f.mutex.RLock()
	ctor := f.textConstructors[settings.Format]
	f.mutex.RUnlock()
	if ctor == nil {
		ctor = newGeminiText
	}

	f.logger.Printf("[factory] using %s format for text generation, model: %s", settings.Format, model)
	return ctor(settings, model, f.logger)
}

// ImageProvider resolves the image configuration and constructs the
// matching image provider. An empty model selects the default image model.
func (f *Factory) ImageProvider(model string) (types.ImageProvider, error) {
	if model == "" {
		model = config.DefaultImageModel
	}

	settings, err := f.resolver.ProviderConfig(types.KindImage)
	if err != nil {
		return nil, err
	}

	f.mutex.RLock()
	ctor := f.imageConstructors[settings.Format]
	f.mutex.RUnlock()
	if ctor == nil {
		ctor = newGeminiImage
	}

	f.logger.Printf("[factory] using %s format for image generation, model: %s", settings.Format, model)
	if settings.Format == types.FormatOpenAI {
		// Known capability gap of the openai image backend; the service
		// rejects higher tiers itself.
		f.logger.Printf("[factory] warning: openai format only supports 1K resolution, 4K is not available")
	}
	return ctor(settings, model, f.logger)
}

func newGeminiText(settings *types.ProviderSettings, model string, logger *log.Logger) (types.TextProvider, error) {
	return gemini.NewTextProvider(geminiConfig(settings, model, logger))
}

func newGeminiImage(settings *types.ProviderSettings, model string, logger *log.Logger) (types.ImageProvider, error) {
	return gemini.NewImageProvider(geminiConfig(settings, model, logger))
}

func newOpenAIText(settings *types.ProviderSettings, model string, logger *log.Logger) (types.TextProvider, error) {
	return openai.NewTextProvider(openaiConfig(settings, model, logger))
}

func newOpenAIImage(settings *types.ProviderSettings, model string, logger *log.Logger) (types.ImageProvider, error) {
	return openai.NewImageProvider(openaiConfig(settings, model, logger))
}

func geminiConfig(settings *types.ProviderSettings, model string, logger *log.Logger) gemini.Config {
	return gemini.Config{
		Model:     model,
		APIKey:    settings.APIKey,
		APIBase:   settings.APIBase,
		VertexAI:  settings.Format == types.FormatVertex,
		ProjectID: settings.ProjectID,
		Location:  settings.Location,
		Logger:    logger,
	}
}

func openaiConfig(settings *types.ProviderSettings, model string, logger *log.Logger) openai.Config {
	return openai.Config{
		Model:   model,
		APIKey:  settings.APIKey,
		APIBase: settings.APIBase,
		Logger:  logger,
	}
}

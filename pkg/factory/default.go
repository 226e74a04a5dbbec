package factory

import "github.com/artspark/aiproviders/pkg/types"

// The package-level functions operate on a shared default factory wired to
// the default resolver, which in turn consults the application-wide
// settings store when one has been installed.
var defaultFactory = New()

// GetProviderFormat resolves the configured provider format for a kind
// using the default factory.
func GetProviderFormat(kind types.ProviderKind) types.ProviderFormat {
	return defaultFactory.ProviderFormat(kind)
}

// GetTextProvider resolves configuration and constructs a text provider.
// An empty model selects the default text model.
func GetTextProvider(model string) (types.TextProvider, error) {
	return defaultFactory.TextProvider(model)
}

// GetImageProvider resolves configuration and constructs an image
// provider. An empty model selects the default image model.
func GetImageProvider(model string) (types.ImageProvider, error) {
	return defaultFactory.ImageProvider(model)
}

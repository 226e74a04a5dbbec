package types

import "fmt"

// ConfigError reports a missing required credential or endpoint discovered
// during configuration resolution. It names the variable the operator has
// to set and the format that required it.
type ConfigError struct {
	Variable string         // Settings/environment key that was missing
	Format   ProviderFormat // Format whose requirements were not met
	Message  string         // Additional operator-facing guidance
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s is required when the provider format is %q", e.Variable, e.Format)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// NewConfigError creates a new ConfigError
func NewConfigError(format ProviderFormat, variable, message string) *ConfigError {
	return &ConfigError{
		Variable: variable,
		Format:   format,
		Message:  message,
	}
}

// IsConfigError reports whether err is a ConfigError
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

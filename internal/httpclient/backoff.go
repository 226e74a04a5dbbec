// Package httpclient provides the shared HTTP plumbing used by the
// provider clients: a retrying client with exponential backoff, JSON
// request helpers, and per-request correlation IDs.
package httpclient

import "time"

// BackoffConfig configures exponential backoff between retries.
type BackoffConfig struct {
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration // Cap applied to every computed delay
	Multiplier float64       // Exponential multiplier (typically 2.0)
}

// DefaultBackoffConfig returns the defaults used by the provider clients.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}

// Backoff returns the delay before retry number attempt (1-indexed).
func Backoff(config BackoffConfig, attempt int) time.Duration {
	if attempt <= 0 {
		return config.BaseDelay
	}
	// Cap the shift so the intermediate multiplier cannot overflow.
	if attempt > 30 {
		attempt = 30
	}

	multiplier := float64(int(1)<<uint(attempt-1)) * config.Multiplier
	delay := time.Duration(float64(config.BaseDelay) * multiplier)
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	return delay
}

package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_ExponentialGrowth(t *testing.T) {
	config := BackoffConfig{
		BaseDelay:  time.Second,
		MaxDelay:   60 * time.Second,
		Multiplier: 2.0,
	}

	assert.Equal(t, 2*time.Second, Backoff(config, 1))
	assert.Equal(t, 4*time.Second, Backoff(config, 2))
	assert.Equal(t, 8*time.Second, Backoff(config, 3))
}

func TestBackoff_CappedAtMaxDelay(t *testing.T) {
	config := BackoffConfig{
		BaseDelay:  time.Second,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
	}

	assert.Equal(t, 5*time.Second, Backoff(config, 10))
	// Huge attempt numbers must not overflow.
	assert.Equal(t, 5*time.Second, Backoff(config, 1000))
}

func TestBackoff_NonPositiveAttempt(t *testing.T) {
	config := DefaultBackoffConfig()

	assert.Equal(t, config.BaseDelay, Backoff(config, 0))
	assert.Equal(t, config.BaseDelay, Backoff(config, -1))
}

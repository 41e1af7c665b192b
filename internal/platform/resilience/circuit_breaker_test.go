package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(2, 5*time.Second, 1)
	now := time.Date(2025, 7, 2, 20, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitStateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow(), "half-open probe should pass")
	assert.Equal(t, CircuitStateHalfOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen, "only one probe allowed")

	b.RecordSuccess()
	assert.Equal(t, CircuitStateClosed, b.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, time.Second, 1)
	now := time.Date(2025, 7, 2, 20, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestNewCircuitBreakerFromConfig(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false}))

	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: true})
	require.NotNil(t, b)
	defaults := DefaultCircuitBreakerConfig()
	assert.Equal(t, defaults.FailureThreshold, b.failureThreshold)
	assert.Equal(t, defaults.OpenTimeout, b.openTimeout)
	assert.Equal(t, defaults.HalfOpenMaxReq, b.halfOpenMaxReq)
}

func TestCircuitBreaker_NilIsAlwaysClosed(t *testing.T) {
	t.Parallel()

	var b *CircuitBreaker
	assert.NoError(t, b.Allow())
	b.RecordFailure()
	b.RecordSuccess()
	assert.Equal(t, CircuitStateClosed, b.State())
}

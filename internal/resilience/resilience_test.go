package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

func newTestBreaker(clock *time.Time) *CircuitBreaker {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 2,
		RecoveryTimeout:  time.Second,
		SuccessThreshold: 2,
	})
	cb.now = func() time.Time { return *clock }
	return cb
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clock := time.Unix(0, 0)
	cb := newTestBreaker(&clock)
	fail := func() error { return errBackend }

	assert.ErrorIs(t, cb.Call(fail), errBackend)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Call(fail), errBackend)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	clock := time.Unix(0, 0)
	cb := newTestBreaker(&clock)
	for i := 0; i < 2; i++ {
		_ = cb.Call(func() error { return errBackend })
	}
	ok := func() error { return nil }

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	assert.Equal(t, StateHalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, "closed", cb.GetStats()["state"])
}

func TestCircuitBreaker_FailedTrialReopens(t *testing.T) {
	clock := time.Unix(0, 0)
	cb := newTestBreaker(&clock)
	for i := 0; i < 2; i++ {
		_ = cb.Call(func() error { return errBackend })
	}

	clock = clock.Add(2 * time.Second)
	assert.ErrorIs(t, cb.Call(func() error { return errBackend }), errBackend)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Call(func() error { return nil }), ErrCircuitOpen)

	cb.Reset()
	assert.Equal(t, StateClosed, cb.State())
	assert.Zero(t, cb.Failures())
}

func TestRetryWithConfig(t *testing.T) {
	fast := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, BackoffFactor: 2}

	tests := []struct {
		name      string
		config    RetryConfig
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{"first try", fast, 0, 1, false},
		{"succeeds on third", fast, 2, 3, false},
		{"gives up", fast, 5, 3, true},
		{"zero attempts runs once", RetryConfig{}, 5, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithConfig(context.Background(), tt.config, func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return errBackend
				}
				return nil
			})
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBackend)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetryWithConfig_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := RetryWithConfig(context.Background(), RetryConfig{MaxAttempts: 5, InitialDelay: time.Millisecond},
		func(context.Context) error {
			calls++
			return context.DeadlineExceeded
		})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

func TestRetryWithConfig_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, func(context.Context) error { calls++; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestCalculateDelay(t *testing.T) {
	config := RetryConfig{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, BackoffFactor: 2}

	assert.Equal(t, 100*time.Millisecond, calculateDelay(config, 0))
	assert.Equal(t, 200*time.Millisecond, calculateDelay(config, 1))
	assert.Equal(t, 300*time.Millisecond, calculateDelay(config, 2))

	config.JitterEnabled = true
	d := calculateDelay(config, 0)
	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	assert.Less(t, d, 110*time.Millisecond)
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	cfg := DefaultConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialDelay = 5 * time.Millisecond
	cfg.MaxDelay = 20 * time.Millisecond
	return cfg
}

// failing returns an operation that fails failures times before succeeding.
func failing(failures int, err error) (func() error, *int) {
	calls := 0
	return func() error {
		calls++
		if calls <= failures {
			return err
		}
		return nil
	}, &calls
}

func TestDo(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		failures  int
		err       error
		retryable []string
		wantErr   bool
		wantCalls int
	}{
		{"first try", 3, 0, nil, nil, false, 1},
		{"recovers", 3, 2, errors.New("temporary"), nil, false, 3},
		{"gives up", 3, 10, errors.New("persistent"), nil, true, 3},
		{"single attempt", 1, 10, errors.New("boom"), nil, true, 1},
		{"matching pattern", 3, 2, errors.New("dial tcp: connection refused"), []string{"connection refused"}, false, 3},
		{"permanent error", 5, 10, errors.New("password authentication failed"), []string{"connection refused"}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fastConfig(tt.attempts)
			cfg.RetryableErrors = tt.retryable
			fn, calls := failing(tt.failures, tt.err)

			err := Do(context.Background(), cfg, fn)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, *calls)
		})
	}
}

func TestDo_InvalidConfig(t *testing.T) {
	fn, calls := failing(0, nil)
	err := Do(context.Background(), Config{}, fn)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, *calls)
}

func TestDo_OnRetry(t *testing.T) {
	cfg := fastConfig(4)
	type call struct {
		attempt int
		err     error
	}
	var seen []call
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		assert.Positive(t, delay)
		seen = append(seen, call{attempt, err})
	}
	boom := errors.New("boom")
	fn, _ := failing(2, boom)

	require.NoError(t, Do(context.Background(), cfg, fn))
	assert.Equal(t, []call{{1, boom}, {2, boom}}, seen)
}

func TestDo_OnRetryNotCalledAfterLastAttempt(t *testing.T) {
	cfg := fastConfig(2)
	retries := 0
	cfg.OnRetry = func(int, error, time.Duration) { retries++ }
	fn, _ := failing(5, errors.New("boom"))

	assert.Error(t, Do(context.Background(), cfg, fn))
	assert.Equal(t, 1, retries)
}

func TestDo_Context(t *testing.T) {
	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := DefaultConfig()
		cfg.MaxAttempts = 10
		cfg.InitialDelay = time.Second
		cfg.OnRetry = func(int, error, time.Duration) { cancel() }
		fn, calls := failing(10, errors.New("temporary"))

		err := Do(ctx, cfg, fn)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, *calls)
	})

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		cfg := DefaultConfig()
		cfg.MaxAttempts = 10
		cfg.InitialDelay = 100 * time.Millisecond
		fn, calls := failing(10, errors.New("temporary"))

		err := Do(ctx, cfg, fn)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, *calls, 10)
	})

	t.Run("already done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		fn, calls := failing(0, nil)

		assert.ErrorIs(t, Do(ctx, fastConfig(3), fn), context.Canceled)
		assert.Zero(t, *calls)
	})
}

func TestDoWithResult(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), fastConfig(3), func() (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("temporary")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)

	result, err = DoWithResult(context.Background(), fastConfig(2), func() (int, error) {
		return 7, errors.New("persistent")
	})
	assert.Error(t, err)
	assert.Zero(t, result)
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 10 * time.Second, Multiplier: 2}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{-1, time.Second},
		{0, time.Second},
		{1, 2 * time.Second},
		{3, 8 * time.Second},
		{4, 10 * time.Second},
		{20, 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, calculateDelay(tt.attempt, cfg), "attempt %d", tt.attempt)
	}

	cfg.Multiplier = 0
	assert.Zero(t, calculateDelay(1, cfg))
}

func TestAddJitter(t *testing.T) {
	for range 100 {
		d := addJitter(time.Second)
		assert.GreaterOrEqual(t, d, 900*time.Millisecond)
		assert.LessOrEqual(t, d, 1100*time.Millisecond)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		patterns []string
		expected bool
	}{
		{"nil", nil, []string{"connection refused"}, false},
		{"no patterns", errors.New("anything"), nil, true},
		{"substring", errors.New("dial tcp 127.0.0.1:5432: connection refused"), []string{"connection refused"}, true},
		{"case insensitive", errors.New("CONNECTION REFUSED"), []string{"connection refused"}, true},
		{"no match", errors.New("invalid credentials"), []string{"connection refused"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryableError(tt.err, Config{RetryableErrors: tt.patterns}))
		})
	}
}

func TestPostgresConfig(t *testing.T) {
	cfg := PostgresConfig()
	assert.Equal(t, DefaultConfig().MaxAttempts, cfg.MaxAttempts)
	assert.Contains(t, cfg.RetryableErrors, "connection refused")
	assert.Contains(t, cfg.RetryableErrors, "the database system is starting up")
}

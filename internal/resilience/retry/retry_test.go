package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   5 * time.Millisecond,
		MaxDelay:       20 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_Success(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("dial: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return driver.ErrBadConn
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.Contains(t, err.Error(), "max retry attempts (3) exceeded")
}

func TestWithBackoff_NonRetryable(t *testing.T) {
	permanent := errors.New("password authentication failed")
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return permanent
	})

	assert.Same(t, permanent, err)
	assert.Equal(t, 1, attempts)
}

func TestWithBackoff_CustomRetryable(t *testing.T) {
	starting := errors.New("the database system is starting up")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return errors.Is(err, starting) }

	attempts := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		attempts++
		if attempts == 1 {
			return starting
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	cfg := fastConfig()
	cfg.InitialDelay = time.Second
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := WithBackoff(ctx, cfg, func() error {
		attempts++
		cancel()
		return syscall.ECONNRESET
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("ping: %w", context.DeadlineExceeded), want: false},
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "connection reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), want: true},
		{name: "dial error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route")}, want: true},
		{name: "plain error", err: errors.New("syntax error at or near"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, addJitter(base, 0))

	for i := 0; i < 20; i++ {
		got := addJitter(base, 0.5)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}

	got := addJitter(base, 5)
	assert.LessOrEqual(t, got, 2*base)
}

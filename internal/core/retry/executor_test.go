package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

func newObservedExecutor(maxRetries int) (*Executor, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	exec := NewExecutor(Policy{MaxRetries: maxRetries, BaseDelay: time.Millisecond}, zap.New(core))
	return exec, logs
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	exec, logs := newObservedExecutor(3)
	calls := 0

	got, err := Do(context.Background(), exec, "fetch companies", func(context.Context) (string, error) {
		calls++
		if calls <= 2 {
			return "", errors.New("connection reset")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterMessage("retrying store operation").Len())
	assert.Equal(t, 2, logs.FilterMessage("fetch companies").Len())
	assert.Zero(t, logs.FilterMessage("store operation failed after retries").Len())
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	exec, logs := newObservedExecutor(3)
	storeErr := errors.New("store offline")
	calls := 0

	_, err := Do(context.Background(), exec, "save company", func(context.Context) (bool, error) {
		calls++
		return false, storeErr
	})

	require.ErrorIs(t, err, storeErr)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 3, logs.FilterMessage("retrying store operation").Len())
	assert.Equal(t, 1, logs.FilterMessage("store operation failed after retries").Len())
}

func TestDo_RetryWarningCarriesAttemptAndWait(t *testing.T) {
	t.Parallel()

	exec, logs := newObservedExecutor(2)

	_, _ = Do(context.Background(), exec, "delete company", func(context.Context) (int, error) {
		return 0, errors.New("timeout")
	})

	warnings := logs.FilterMessage("retrying store operation").All()
	require.Len(t, warnings, 2)

	first := warnings[0].ContextMap()
	assert.Equal(t, int64(1), first["retry"])
	assert.Equal(t, time.Millisecond, first["wait"])

	second := warnings[1].ContextMap()
	assert.Equal(t, int64(2), second["retry"])
	assert.Equal(t, 2*time.Millisecond, second["wait"])
}

func TestDo_PermanentErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	exec, logs := newObservedExecutor(3)
	cause := errors.New("bad input")
	calls := 0

	_, err := Do(context.Background(), exec, "update company", func(context.Context) (int, error) {
		calls++
		return 0, Permanent(cause)
	})

	require.ErrorIs(t, err, cause)
	assert.Equal(t, 1, calls)
	assert.Zero(t, logs.FilterMessage("retrying store operation").Len())
}

func TestDo_DuplicateKeyIsNotRetried(t *testing.T) {
	t.Parallel()

	exec, _ := newObservedExecutor(3)
	calls := 0

	_, err := Do(context.Background(), exec, "insert employee", func(context.Context) (bool, error) {
		calls++
		return false, fmt.Errorf("insert: %w", store.ErrDuplicate)
	})

	require.ErrorIs(t, err, store.ErrDuplicate)
	assert.Equal(t, 1, calls)
}

func TestDo_CanceledContextStopsImmediately(t *testing.T) {
	t.Parallel()

	exec, _ := newObservedExecutor(3)
	calls := 0

	_, err := Do(context.Background(), exec, "list employees", func(context.Context) (int, error) {
		calls++
		return 0, context.Canceled
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestPolicy_Defaults(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	assert.Equal(t, 4, p.Attempts())
	assert.Equal(t, 2*time.Second, p.BaseDelay)

	normalized := NewExecutor(Policy{MaxRetries: -1}, nil).Policy()
	assert.Equal(t, 0, normalized.MaxRetries)
	assert.Equal(t, 2*time.Second, normalized.BaseDelay)
}

func TestDo_LongScheduleIsNotCutShort(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zapcore.DebugLevel)
	// 最初の再試行待ちに入った時点で打ち切り、実時間で待たないようにします。
	logger := zap.New(core, zap.Hooks(func(e zapcore.Entry) error {
		if e.Message == "retrying store operation" {
			cancel()
		}
		return nil
	}))
	exec := NewExecutor(Policy{MaxRetries: 3, BaseDelay: 20 * time.Minute}, logger)
	calls := 0

	_, err := Do(ctx, exec, "save company", func(context.Context) (bool, error) {
		calls++
		return false, errors.New("db down")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)

	warnings := logs.FilterMessage("retrying store operation").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, 20*time.Minute, warnings[0].ContextMap()["wait"])
	assert.Zero(t, logs.FilterMessage("store operation failed after retries").Len())
}

func TestNewSchedule_DoublesUpToLastRetry(t *testing.T) {
	t.Parallel()

	b := newSchedule(Policy{MaxRetries: 3, BaseDelay: 5 * time.Minute})
	b.Reset()

	assert.Equal(t, 5*time.Minute, b.NextBackOff())
	assert.Equal(t, 10*time.Minute, b.NextBackOff())
	assert.Equal(t, 20*time.Minute, b.NextBackOff())
}

func TestNewSchedule_LargeRetryCountDoesNotOverflow(t *testing.T) {
	t.Parallel()

	b := newSchedule(Policy{MaxRetries: 62, BaseDelay: 2 * time.Second})
	b.Reset()

	prev := time.Duration(0)
	for i := range 62 {
		wait := b.NextBackOff()
		require.Positive(t, wait, "retry %d", i+1)
		require.GreaterOrEqual(t, wait, prev, "retry %d", i+1)
		require.LessOrEqual(t, wait, maxInterval, "retry %d", i+1)
		prev = wait
	}

	assert.Equal(t, maxInterval, intervalCap(Policy{MaxRetries: 1000, BaseDelay: time.Hour}))
	assert.Equal(t, 16*time.Second, intervalCap(Policy{MaxRetries: 3, BaseDelay: 2 * time.Second}))
}

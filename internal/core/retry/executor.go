package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 2 * time.Second

	// MaxRetriesLimit は設定で受け付ける再試行回数の上限です。
	MaxRetriesLimit = 10

	// maxInterval は 1 回の待機時間の上限です。float64 経由の計算でも int64 に収まる値にしています。
	maxInterval = time.Duration(1) << 62
)

// Policy は再試行の回数と待機時間を表します。
// 初回失敗後に MaxRetries 回まで再試行し、待機時間は BaseDelay から倍々に伸びます。
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultPolicy は 3 回再試行 (2s, 4s, 8s) のポリシーを返します。
func DefaultPolicy() Policy {
	return Policy{MaxRetries: defaultMaxRetries, BaseDelay: defaultBaseDelay}
}

func (p Policy) normalized() Policy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.BaseDelay > maxInterval {
		p.BaseDelay = maxInterval
	}
	return p
}

// Attempts は初回を含む試行回数の上限です。
func (p Policy) Attempts() int {
	return p.normalized().MaxRetries + 1
}

// Executor はストア操作を指数バックオフ付きで再試行します。
type Executor struct {
	policy Policy
	logger *zap.Logger
}

// NewExecutor は Executor を生成します。logger が nil の場合は出力を破棄します。
func NewExecutor(policy Policy, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{policy: policy.normalized(), logger: logger}
}

// Policy は適用中のポリシーを返します。
func (e *Executor) Policy() Policy {
	return e.policy
}

// Operation は再試行対象の操作です。
type Operation[T any] func(ctx context.Context) (T, error)

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent は再試行しても解消しないエラーであることを示します。
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// newSchedule は BaseDelay から倍々に伸びる待機時間を返す BackOff を生成します。
// 上限は BaseDelay<<MaxRetries ですが、time.Duration を溢れる場合は maxInterval で頭打ちにします。
func newSchedule(p Policy) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = intervalCap(p)
	return b
}

func intervalCap(p Policy) time.Duration {
	limit := p.BaseDelay
	for range p.MaxRetries {
		if limit > maxInterval/2 {
			return maxInterval
		}
		limit *= 2
	}
	return limit
}

// Do は op を実行し、失敗した場合はポリシーに従って再試行します。
// 再試行を使い切った場合は最後のエラーを返却します。
func Do[T any](ctx context.Context, e *Executor, description string, op Operation[T]) (T, error) {
	if e == nil {
		e = NewExecutor(DefaultPolicy(), nil)
	}

	b := newSchedule(e.policy)

	attempt := 0
	stopped := false
	value, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if isPermanent(err) {
			stopped = true
			return v, backoff.Permanent(err)
		}
		e.logger.Error(description,
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return v, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(e.policy.Attempts())),
		// 試行回数だけで打ち切ります。backoff 既定の 15 分の上限は使いません。
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			e.logger.Warn("retrying store operation",
				zap.String("operation", description),
				zap.Int("retry", attempt),
				zap.Duration("wait", wait),
				zap.String("cause", err.Error()),
			)
		}),
	)
	if err == nil {
		return value, nil
	}

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	if marked, ok := err.(*permanentError); ok {
		err = marked.Unwrap()
	}

	if !stopped && ctx.Err() == nil {
		e.logger.Error("store operation failed after retries",
			zap.String("operation", description),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
	}
	return value, err
}

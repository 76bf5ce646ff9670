// Package retry re-runs short database workflows that lost a race with a
// concurrent writer.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	DefaultAttempts = 3
	baseDelay       = 10 * time.Millisecond
	maxDelay        = 200 * time.Millisecond
)

// Do calls fn until it succeeds, returns an error rejected by retryable, or
// runs out of attempts. attempts counts retries after the first call.
func Do[T any](ctx context.Context, attempts uint64, retryable func(error) bool, fn func(ctx context.Context) (T, error)) (T, error) {
	backoff := goretry.NewExponential(baseDelay)
	backoff = goretry.WithCappedDuration(maxDelay, backoff)
	backoff = goretry.WithJitterPercent(20, backoff)
	backoff = goretry.WithMaxRetries(attempts, backoff)

	try := 0
	return goretry.DoValue(ctx, backoff, func(ctx context.Context) (T, error) {
		try++
		v, err := fn(ctx)
		if err != nil && retryable(err) {
			zap.L().Debug("retrying after conflict", zap.Int("attempt", try), zap.Error(err))
			return v, goretry.RetryableError(err)
		}
		return v, err
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/lingobot.git/internal/metrics"
	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/sethvargo/go-retry"
)

const (
	readRetries  = 2
	writeRetries = 1
)

var retryDelay = 20 * time.Millisecond

// withRetry repeats fn while it fails with models.ErrStorage. Any other
// error, including models.ErrNotFound, is returned immediately.
func withRetry[T any](ctx context.Context, op string, retries uint64, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		out     T
		attempt int
	)

	err := retry.Do(ctx, retry.WithMaxRetries(retries, retry.NewConstant(retryDelay)), func(ctx context.Context) error {
		if attempt > 0 {
			metrics.StorageRetriesTotal.WithLabelValues(op).Inc()
		}
		attempt++

		v, err := fn(ctx)
		if err != nil {
			if errors.Is(err, models.ErrStorage) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		return nil
	})

	return out, err
}

func read[T any](ctx context.Context, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return withRetry(ctx, op, readRetries, fn)
}

func write[T any](ctx context.Context, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return withRetry(ctx, op, writeRetries, fn)
}

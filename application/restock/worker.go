package restock

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

const sweepLockKey = "restock:activation_sweep"

// Locker obtains a cluster-wide lock.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// Worker periodically runs RetryPendingActivations on at most one instance at a time.
type Worker struct {
	app      RestockApp
	locker   Locker
	interval time.Duration
	lockTTL  time.Duration
}

func NewWorker(app RestockApp, locker Locker, interval, lockTTL time.Duration) *Worker {
	return &Worker{app: app, locker: locker, interval: interval, lockTTL: lockTTL}
}

// Start runs the sweep until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.Sweep(ctx)
			}
		}
	}()
}

// Sweep runs one pass if the lock is free and reports whether it ran.
func (w *Worker) Sweep(ctx context.Context) bool {
	lock, err := w.locker.Obtain(ctx, sweepLockKey, w.lockTTL, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return false
	}
	if err != nil {
		logger.Error("[RestockWorker] obtain lock", zap.String("error", err.Error()))
		return false
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logger.Warn("[RestockWorker] release lock", zap.String("error", err.Error()))
		}
	}()

	activated, err := w.app.RetryPendingActivations(ctx)
	if err != nil {
		logger.Error("[RestockWorker] retry pending activations", zap.String("error", err.Error()))
		return true
	}
	if activated > 0 {
		logger.Info("[RestockWorker] campaigns activated on stock arrival", zap.Int("count", activated))
	}
	return true
}

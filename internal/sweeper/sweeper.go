// Package sweeper periodically removes quests that expired without being completed.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultInterval = time.Minute

type Cleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type Sweeper struct {
	cleaner  Cleaner
	interval time.Duration
}

func New(cleaner Cleaner, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		cleaner:  cleaner,
		interval: interval,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
// A failed sweep is logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) error {
	zap.L().Info("quest sweeper started", zap.Duration("interval", s.interval))
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping quest sweeper")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := s.cleaner.CleanupExpired(ctx)
	if err != nil {
		zap.L().Warn("quest sweep failed", zap.Error(err))
		return
	}
	zap.L().Debug("quest sweep finished", zap.Int64("removed", n))
}

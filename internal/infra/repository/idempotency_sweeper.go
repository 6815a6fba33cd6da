package repository

import (
	"context"
	"log/slog"
	"time"

	"reservation-engine/internal/pkg/clock"
)

type expiredKeyDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// IdempotencySweeper purges expired idempotency keys. Expired rows are also
// reclaimed on reuse, so a missed sweep only delays cleanup.
type IdempotencySweeper struct {
	keys     expiredKeyDeleter
	clock    clock.Clock
	interval time.Duration
}

func NewIdempotencySweeper(keys expiredKeyDeleter, clk clock.Clock, interval time.Duration) *IdempotencySweeper {
	return &IdempotencySweeper{
		keys:     keys,
		clock:    clk,
		interval: interval,
	}
}

func (s *IdempotencySweeper) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "idempotency sweeper started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("idempotency sweeper stopped")
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				slog.ErrorContext(ctx, "idempotency sweep failed", "error", err.Error())
			}
		}
	}
}

func (s *IdempotencySweeper) Sweep(ctx context.Context) (int64, error) {
	deleted, err := s.keys.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "expired idempotency keys purged", "count", deleted)
	}
	return deleted, nil
}

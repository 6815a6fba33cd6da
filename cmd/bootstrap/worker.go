package bootstrap

import (
	"context"
	"log/slog"

	"reservation-engine/internal/infra/messaging"
	"reservation-engine/internal/infra/repository"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewIdempotencySweeper,
	),
	fx.Invoke(StartOutboxRelay, StartIdempotencySweeper),
)

type outboxRelayParams struct {
	fx.In

	LC      fx.Lifecycle
	Pool    *pgxpool.Pool
	Queries *sqlc.Queries
	Cfg     config.KafkaConfig
	Metrics *metrics.Metrics
}

// NewOutboxRelay returns nil when outbox delivery is disabled; events then stay in the table.
func NewOutboxRelay(p outboxRelayParams) *messaging.OutboxRelay {
	if !p.Cfg.Enabled {
		return nil
	}

	writer := messaging.NewWriter(p.Cfg)
	p.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})

	return messaging.NewOutboxRelay(
		messaging.PoolTxRunner(p.Pool),
		repository.NewOutboxRelayStore(p.Queries),
		messaging.NewKafkaPublisher(writer),
		p.Cfg,
		p.Metrics,
	)
}

func StartOutboxRelay(lc fx.Lifecycle, relay *messaging.OutboxRelay) {
	if relay == nil {
		slog.Info("outbox relay disabled")
		return
	}

	var (
		cancel context.CancelFunc
		g      *errgroup.Group
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			g, ctx = errgroup.WithContext(ctx)
			g.Go(func() error {
				return relay.Run(ctx)
			})
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return g.Wait()
		},
	})
}

type idempotencySweeperParams struct {
	fx.In

	Pool    *pgxpool.Pool
	Queries *sqlc.Queries
	Clock   clock.Clock
	Cfg     config.ReservationConfig
}

// NewIdempotencySweeper returns nil when the sweep interval is not positive.
func NewIdempotencySweeper(p idempotencySweeperParams) *repository.IdempotencySweeper {
	if p.Cfg.IdempotencySweepInterval <= 0 {
		return nil
	}
	return repository.NewIdempotencySweeper(
		repository.NewIdempotencyRepository(p.Queries, p.Pool),
		p.Clock,
		p.Cfg.IdempotencySweepInterval,
	)
}

func StartIdempotencySweeper(lc fx.Lifecycle, sweeper *repository.IdempotencySweeper) {
	if sweeper == nil {
		slog.Info("idempotency sweeper disabled")
		return
	}

	var (
		cancel context.CancelFunc
		g      *errgroup.Group
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			g, ctx = errgroup.WithContext(ctx)
			g.Go(func() error {
				return sweeper.Run(ctx)
			})
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return g.Wait()
		},
	})
}

package messaging

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/messaging/$GOFILE -package=messagingmock

import (
	"context"
	"log/slog"
	"time"

	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/pkg/tracing"
	"reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type EventPublisher interface {
	Publish(ctx context.Context, event shared.PendingEvent) error
}

type RelayStore interface {
	Claim(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]shared.PendingEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id int64) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error
}

type TxRunner func(ctx context.Context, fn func(tx sqlc.DBTX) error) error

func PoolTxRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(tx sqlc.DBTX) error) error {
		_, err := shared.RunInTx(ctx, pool, func(tx sqlc.DBTX) (struct{}, error) {
			return struct{}{}, fn(tx)
		})
		return err
	}
}

// OutboxRelay delivers committed outbox rows to Kafka. Delivery is at least once:
// a crash between publish and commit republishes the batch.
type OutboxRelay struct {
	runInTx     TxRunner
	store       RelayStore
	publisher   EventPublisher
	interval    time.Duration
	batchSize   int
	maxAttempts int
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

func NewOutboxRelay(runInTx TxRunner, store RelayStore, publisher EventPublisher, cfg config.KafkaConfig, m *metrics.Metrics) *OutboxRelay {
	return &OutboxRelay{
		runInTx:     runInTx,
		store:       store,
		publisher:   publisher,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		metrics:     m,
		tracer:      tracing.Tracer("outbox-relay"),
	}
}

// Run polls until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return nil
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
				slog.ErrorContext(ctx, "outbox batch failed", "error", err.Error())
			}
		}
	}
}

// ProcessBatch returns how many events were published.
func (r *OutboxRelay) ProcessBatch(ctx context.Context) (int, error) {
	ctx, span := r.tracer.Start(ctx, "OutboxRelay.ProcessBatch")
	defer span.End()

	published, failed := 0, 0
	err := r.runInTx(ctx, func(tx sqlc.DBTX) error {
		events, err := r.store.Claim(ctx, tx, r.batchSize, r.maxAttempts)
		if err != nil {
			return err
		}

		for _, event := range events {
			if perr := r.publisher.Publish(ctx, event); perr != nil {
				failed++
				slog.WarnContext(ctx, "outbox event not delivered",
					"event_id", event.ID,
					"event_type", event.EventType,
					"attempts", event.Attempts+1,
					"error", perr.Error(),
				)
				if err := r.store.MarkFailed(ctx, tx, event.ID, perr.Error()); err != nil {
					return err
				}
				continue
			}
			if err := r.store.MarkPublished(ctx, tx, event.ID); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(
		attribute.Int("outbox.published", published),
		attribute.Int("outbox.failed", failed),
	)
	r.metrics.OutboxDelivery("published", published)
	r.metrics.OutboxDelivery("failed", failed)
	return published, nil
}

package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reservation-engine/internal/infra/repository"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/pkg/tracing"
	"reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	lockTimeout time.Duration
	topicPrefix string
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, m *metrics.Metrics) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		lockTimeout: cfg.Reservation.LockTimeout,
		topicPrefix: cfg.Kafka.TopicPrefix,
		metrics:     m,
		tracer:      tracing.Tracer("uow"),
	}
}

// Within runs fn in a ReadCommitted transaction. Row locks taken inside fn wait at
// most lockTimeout; lock failures surface as errs.ErrBusy and are not retried here.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, span := u.tracer.Start(ctx, "uow.Within")
	defer span.End()

	start := time.Now()
	hooks, err := u.runInTx(ctx, fn)
	u.metrics.ObserveTx(time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) ([]func(context.Context), error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, markBusy(errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		// no-op after a successful commit
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if u.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			return nil, markBusy(errs.Wrap(err, "failed to set lock timeout"))
		}
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	if err := fn(ctx, tx); err != nil {
		return nil, markBusy(err)
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return nil, markBusy(errs.Mark(err, errTransactionCommit))
	}

	return tx.afterCommit, nil
}

// markBusy tags lock waits that ran out, deadlocks and serialization failures as ErrBusy.
func markBusy(err error) error {
	if err == nil || errs.Is(err, errs.ErrBusy) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(err, errs.ErrBusy)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeLockNotAvailable, pgErrCodeDeadlockDetected, pgErrCodeSerializationFailure:
			return errs.Mark(err, errs.ErrBusy)
		}
	}
	return err
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	afterCommit []func(context.Context)

	// Lazy-initialized repositories
	inventoryRepo     shared.InventoryGuard
	participationRepo shared.CapacityGuard
	cartRepo          shared.CartRepository
	orderRepo         shared.OrderRepository
	bookingRepo       shared.BookingRepository
	outboxRepo        shared.OutboxRepository
	idempotencyRepo   shared.IdempotencyRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) AfterCommit(fn func(ctx context.Context)) {
	t.afterCommit = append(t.afterCommit, fn)
}

func (t *pgTx) Inventory() shared.InventoryGuard {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) Capacity() shared.CapacityGuard {
	if t.participationRepo == nil {
		t.participationRepo = repository.NewParticipationRepository(t.uow.q, t.dbtx)
	}
	return t.participationRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q, t.dbtx)
	}
	return t.cartRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx, t.uow.topicPrefix)
	}
	return t.outboxRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

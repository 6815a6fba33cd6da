package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/order"
	sqlc "reservation-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction bounded by the lock timeout, no retry
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Inventory() InventoryGuard
	Capacity() CapacityGuard
	Carts() CartRepository
	Orders() OrderRepository
	Bookings() BookingRepository
	Outbox() OutboxRepository
	Idempotency() IdempotencyRepository
	// AfterCommit registers fn to run once the transaction has committed.
	AfterCommit(fn func(ctx context.Context))
	DB() sqlc.DBTX
}

// InventoryGuard is the only writer of sellable item stock.
type InventoryGuard interface {
	// Get reads the item without a lock; used for soft checks only.
	Get(ctx context.Context, itemID uuid.UUID) (*inventory.Item, error)
	TryReserve(ctx context.Context, itemID uuid.UUID, qty int) (inventory.Snapshot, error)
	Release(ctx context.Context, itemID uuid.UUID, qty int) error
}

// CapacityGuard owns participation rows and the headcount they define.
type CapacityGuard interface {
	TryRegister(ctx context.Context, activityID, userID uuid.UUID, now time.Time) (*activity.Participation, error)
	GetForUpdate(ctx context.Context, participationID uuid.UUID) (*activity.Participation, error)
	Unregister(ctx context.Context, p *activity.Participation, now time.Time) error
	Complete(ctx context.Context, p *activity.Participation, now time.Time) error
}

type CartRepository interface {
	// AddQuantity merges qty into the user's line and returns the stored result.
	AddQuantity(ctx context.Context, line *cart.Line) (*cart.Line, error)
	SetQuantity(ctx context.Context, line *cart.Line) (*cart.Line, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	ListForUpdate(ctx context.Context, userID uuid.UUID) ([]*cart.Line, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

// IdempotencyRepository stores client retry keys. TryInsert waits on a concurrent
// transaction holding the same key and reports false once that one has committed.
type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key IdempotencyKey, expiresAt time.Time) (bool, error)
	ReclaimExpired(ctx context.Context, key IdempotencyKey, now, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, userID, key uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, userID, key, resultID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, event OutboxEvent) error
}

// AvailabilityInvalidator drops cached availability after a committed change.
// Failures are logged by the implementation and never surface to the caller.
type AvailabilityInvalidator interface {
	InvalidateItems(ctx context.Context, itemIDs ...uuid.UUID)
	InvalidateActivity(ctx context.Context, activityID uuid.UUID)
}

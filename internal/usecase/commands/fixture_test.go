//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/shared"
	sharedmock "reservation-engine/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

var testCfg = config.ReservationConfig{
	LockTimeout:       3 * time.Second,
	MaxLineQuantity:   10,
	RetryAfter:        time.Second,
	IdempotencyKeyTTL: 24 * time.Hour,
}

// txMocks drives the use cases through a mocked unit of work. Within runs the
// callback against the mocked Tx and fires the registered after-commit hooks
// only when the callback succeeds, like the Postgres implementation.
type txMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	inventory   *sharedmock.MockInventoryGuard
	capacity    *sharedmock.MockCapacityGuard
	carts       *sharedmock.MockCartRepository
	orders      *sharedmock.MockOrderRepository
	bookings    *sharedmock.MockBookingRepository
	outbox      *sharedmock.MockOutboxRepository
	invalidator *sharedmock.MockAvailabilityInvalidator
	idempotency *sharedmock.MockIdempotencyRepository
	clock       clock.Clock

	hooks  []func(ctx context.Context)
	events []string
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		inventory:   sharedmock.NewMockInventoryGuard(ctrl),
		capacity:    sharedmock.NewMockCapacityGuard(ctrl),
		carts:       sharedmock.NewMockCartRepository(ctrl),
		orders:      sharedmock.NewMockOrderRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		outbox:      sharedmock.NewMockOutboxRepository(ctrl),
		invalidator: sharedmock.NewMockAvailabilityInvalidator(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			m.hooks = nil
			if err := fn(ctx, m.tx); err != nil {
				return err
			}
			for _, hook := range m.hooks {
				hook(ctx)
			}
			return nil
		}).AnyTimes()

	m.tx.EXPECT().Inventory().Return(m.inventory).AnyTimes()
	m.tx.EXPECT().Capacity().Return(m.capacity).AnyTimes()
	m.tx.EXPECT().Carts().Return(m.carts).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().AfterCommit(gomock.Any()).Do(func(fn func(context.Context)) {
		m.hooks = append(m.hooks, fn)
	}).AnyTimes()

	return m
}

// recordEvents accepts every outbox append and keeps the event types in order.
func (m *txMocks) recordEvents() {
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e shared.OutboxEvent) error {
			m.events = append(m.events, e.EventType)
			return nil
		}).AnyTimes()
}

func ticket(stock int, priceCents int64) *inventory.Item {
	return inventory.ReconstructItem(
		uuid.New(), uuid.New(), inventory.ParentSpot, inventory.KindTicket,
		"Adult ticket", money.FromCents(priceCents), stock, inventory.StatusActive,
	)
}

func room(stock int, priceCents int64) *inventory.Item {
	return inventory.ReconstructItem(
		uuid.New(), uuid.New(), inventory.ParentHotel, inventory.KindRoom,
		"Twin room", money.FromCents(priceCents), stock, inventory.StatusActive,
	)
}

func inactiveTicket(stock int) *inventory.Item {
	return inventory.ReconstructItem(
		uuid.New(), uuid.New(), inventory.ParentSpot, inventory.KindTicket,
		"Closed season ticket", money.FromCents(1000), stock, inventory.StatusInactive,
	)
}

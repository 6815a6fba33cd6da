//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func placedOrder(userID uuid.UUID) *order.Order {
	line := order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Adult ticket", UnitPrice: money.FromCents(1200)}, 3)
	return order.ReconstructOrder(uuid.New(), userID, order.StatusPending, []order.LineSnapshot{line},
		money.FromCents(3600), fixedNow.Add(-time.Minute), fixedNow.Add(-time.Minute), nil, nil, nil)
}

// seenKey makes TryInsert report an existing row and Get return it with the
// request's own endpoint and hash, as stored by the first request.
func (m *txMocks) seenKey(status string, resultID *uuid.UUID) {
	var stored shared.IdempotencyKey
	m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key shared.IdempotencyKey, _ time.Time) (bool, error) {
			stored = key
			return false, nil
		})
	m.idempotency.EXPECT().ReclaimExpired(gomock.Any(), gomock.Any(), fixedNow, gomock.Any()).Return(false, nil)
	m.idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				IdempotencyKey: stored,
				Status:         status,
				ResultID:       resultID,
				ExpiresAt:      fixedNow.Add(time.Hour),
			}, nil
		})
}

func TestCheckoutUseCase_BuyNow_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()

	t.Run("success: first request claims the key and records the order", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		item := ticket(3, 1200)

		var claimed shared.IdempotencyKey
		var completedWith uuid.UUID
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), fixedNow.Add(testCfg.IdempotencyKeyTTL)).DoAndReturn(
			func(_ context.Context, k shared.IdempotencyKey, _ time.Time) (bool, error) {
				claimed = k
				return true, nil
			})
		m.inventory.EXPECT().TryReserve(gomock.Any(), item.ID(), 3).Return(item.Snapshot(), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), userID, key, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, resultID uuid.UUID) error {
				completedWith = resultID
				return nil
			})
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), item.ID())

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		o, err := uc.BuyNow(ctx, userID, item.ID(), 3, key)

		require.NoError(t, err)
		assert.Equal(t, o.ID(), completedWith)
		assert.Equal(t, userID, claimed.UserID)
		assert.Equal(t, key, claimed.Key)
		assert.Equal(t, commands.EndpointBuyNow, claimed.Endpoint)
		assert.NotEmpty(t, claimed.RequestHash)
	})

	t.Run("success: a repeat returns the stored order without reserving again", func(t *testing.T) {
		m := newTxMocks(t)
		existing := placedOrder(userID)
		id := existing.ID()

		m.seenKey(shared.IdempotencyCompleted, &id)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), id).Return(existing, nil)

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		o, err := uc.BuyNow(ctx, userID, uuid.New(), 3, key)

		require.NoError(t, err)
		assert.Same(t, existing, o)
		assert.Empty(t, m.events)
	})

	t.Run("success: an expired key is reclaimed and the order placed", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		item := ticket(3, 1200)

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.idempotency.EXPECT().ReclaimExpired(gomock.Any(), gomock.Any(), fixedNow, fixedNow.Add(testCfg.IdempotencyKeyTTL)).Return(true, nil)
		m.inventory.EXPECT().TryReserve(gomock.Any(), item.ID(), 1).Return(item.Snapshot(), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), userID, key, gomock.Any()).Return(nil)
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), item.ID())

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.BuyNow(ctx, userID, item.ID(), 1, key)

		require.NoError(t, err)
		assert.Equal(t, []string{commands.EventOrderPlaced}, m.events)
	})

	t.Run("error: the key was used with a different body", func(t *testing.T) {
		m := newTxMocks(t)
		orderID := uuid.New()

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.idempotency.EXPECT().ReclaimExpired(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.idempotency.EXPECT().Get(gomock.Any(), userID, key).Return(&shared.IdempotencyRecord{
			IdempotencyKey: shared.IdempotencyKey{UserID: userID, Key: key, Endpoint: commands.EndpointBuyNow, RequestHash: "another body"},
			Status:         shared.IdempotencyCompleted,
			ResultID:       &orderID,
		}, nil)

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		o, err := uc.BuyNow(ctx, userID, uuid.New(), 2, key)

		require.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyKeyReused))
		assert.Nil(t, o)
	})

	t.Run("error: the first request has not committed a result", func(t *testing.T) {
		m := newTxMocks(t)
		m.seenKey(shared.IdempotencyProcessing, nil)

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.BuyNow(ctx, userID, uuid.New(), 2, key)

		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
		assert.True(t, errs.Is(err, errs.ErrBusy))
	})

	t.Run("error: a failed order leaves the key unrecorded", func(t *testing.T) {
		m := newTxMocks(t)
		item := ticket(0, 1200)

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.inventory.EXPECT().TryReserve(gomock.Any(), item.ID(), 1).
			Return(inventory.Snapshot{}, &inventory.InsufficientStockError{ItemID: item.ID(), Requested: 1, Available: 0})

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.BuyNow(ctx, userID, item.ID(), 1, key)

		assert.True(t, errs.Is(err, errs.ErrInsufficientStock))
	})
}

func TestCheckoutUseCase_Checkout_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()

	t.Run("success: a repeat returns the stored order without reading the cart", func(t *testing.T) {
		m := newTxMocks(t)
		existing := placedOrder(userID)
		id := existing.ID()

		m.seenKey(shared.IdempotencyCompleted, &id)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), id).Return(existing, nil)

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		o, err := uc.Checkout(ctx, userID, key)

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
	})

	t.Run("error: a buy-now key cannot be replayed as a checkout", func(t *testing.T) {
		m := newTxMocks(t)
		orderID := uuid.New()

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.idempotency.EXPECT().ReclaimExpired(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.idempotency.EXPECT().Get(gomock.Any(), userID, key).Return(&shared.IdempotencyRecord{
			IdempotencyKey: shared.IdempotencyKey{UserID: userID, Key: key, Endpoint: commands.EndpointBuyNow},
			Status:         shared.IdempotencyCompleted,
			ResultID:       &orderID,
		}, nil)

		uc := commands.NewCheckoutUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.Checkout(ctx, userID, key)

		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})
}

func TestBookingUseCase_BookRoom_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()
	req := commands.BookRoomRequest{ItemID: uuid.New(), Rooms: 2, CheckIn: checkIn, CheckOut: checkOut, Guests: 3}

	t.Run("success: first request records the booking", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		r := room(4, 12000)
		req := req
		req.ItemID = r.ID()

		var completedWith uuid.UUID
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, k shared.IdempotencyKey, _ time.Time) (bool, error) {
				assert.Equal(t, commands.EndpointBookRoom, k.Endpoint)
				return true, nil
			})
		m.inventory.EXPECT().Get(gomock.Any(), r.ID()).Return(r, nil)
		m.inventory.EXPECT().TryReserve(gomock.Any(), r.ID(), 2).Return(r.Snapshot(), nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), userID, key, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, resultID uuid.UUID) error {
				completedWith = resultID
				return nil
			})
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), r.ID())

		uc := commands.NewBookingUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		b, err := uc.BookRoom(ctx, userID, req, key)

		require.NoError(t, err)
		assert.Equal(t, b.ID(), completedWith)
	})

	t.Run("success: a repeat returns the stored booking without reserving rooms", func(t *testing.T) {
		m := newTxMocks(t)
		existing := existingBooking(t, userID, booking.StatusPending)
		id := existing.ID()

		m.seenKey(shared.IdempotencyCompleted, &id)
		m.bookings.EXPECT().GetForUpdate(gomock.Any(), id).Return(existing, nil)

		uc := commands.NewBookingUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		b, err := uc.BookRoom(ctx, userID, req, key)

		require.NoError(t, err)
		assert.Same(t, existing, b)
		assert.Empty(t, m.events)
	})

	t.Run("error: an invalid stay is rejected before the key is claimed", func(t *testing.T) {
		m := newTxMocks(t)
		bad := req
		bad.CheckOut = checkIn

		uc := commands.NewBookingUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.BookRoom(ctx, userID, bad, key)

		assert.ErrorIs(t, err, booking.ErrInvalidStay)
	})
}

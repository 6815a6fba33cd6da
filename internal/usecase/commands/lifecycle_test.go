//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func placedOrder(t *testing.T, ownerID uuid.UUID, status order.Status) *order.Order {
	t.Helper()
	lines := []order.LineSnapshot{
		order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Adult ticket", UnitPrice: money.FromCents(2000)}, 2),
		order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Child ticket", UnitPrice: money.FromCents(800)}, 1),
	}
	o, err := order.NewOrder(ownerID, lines, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	if status == order.StatusPending {
		return o
	}
	return order.ReconstructOrder(o.ID(), o.UserID(), status, o.Lines(), o.Total(), o.CreatedAt(), o.UpdatedAt(), nil, nil, nil)
}

func TestOrderLifecycle_PayOrder(t *testing.T) {
	ctx := context.Background()
	owner := user.NewActor(uuid.New(), user.RoleViewer)

	testCases := []struct {
		name       string
		actor      user.Actor
		status     order.Status
		wantErr    error
		wantStatus order.Status
	}{
		{name: "success: owner pays a pending order", actor: owner, status: order.StatusPending, wantStatus: order.StatusPaid},
		{name: "error: paying twice", actor: owner, status: order.StatusPaid, wantErr: errs.ErrAlreadyPaid},
		{name: "error: paying a cancelled order", actor: owner, status: order.StatusCancelled, wantErr: errs.ErrInvalidStateTransition},
		{name: "error: another user's order looks missing", actor: user.NewActor(uuid.New(), user.RoleViewer), status: order.StatusPending, wantErr: errs.ErrNotFound},
		{name: "error: staff cannot pay for the owner", actor: user.NewActor(uuid.New(), user.RoleAdmin), status: order.StatusPending, wantErr: errs.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			m.recordEvents()
			o := placedOrder(t, owner.ID, tc.status)

			m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
			if tc.wantErr == nil {
				m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
			}

			uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
			got, err := uc.PayOrder(ctx, tc.actor, o.ID())

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Empty(t, m.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status())
			require.NotNil(t, got.PaidAt())
			assert.Equal(t, fixedNow, *got.PaidAt())
			assert.Equal(t, []string{commands.EventOrderPaid}, m.events)
		})
	}
}

func TestOrderLifecycle_CancelOrder(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success: owner cancel releases exactly the ordered quantities", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		o := placedOrder(t, ownerID, order.StatusPending)
		lines := o.Lines()

		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
		for _, l := range lines {
			m.inventory.EXPECT().Release(gomock.Any(), l.ItemID, l.Quantity).Return(nil)
		}
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), lines[0].ItemID, lines[1].ItemID)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		got, err := uc.CancelOrder(ctx, user.NewActor(ownerID, user.RoleViewer), o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status())
		assert.Equal(t, []string{commands.EventOrderCancelled}, m.events)
	})

	t.Run("success: operator may cancel someone else's order", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		o := placedOrder(t, ownerID, order.StatusPending)

		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
		m.inventory.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), gomock.Any(), gomock.Any())

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.CancelOrder(ctx, user.NewActor(uuid.New(), user.RoleOperator), o.ID())

		require.NoError(t, err)
	})

	t.Run("error: second cancel releases nothing", func(t *testing.T) {
		m := newTxMocks(t)
		o := placedOrder(t, ownerID, order.StatusCancelled)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.CancelOrder(ctx, user.NewActor(ownerID, user.RoleViewer), o.ID())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
		var stateErr *errs.StateError
		require.True(t, errs.As(err, &stateErr))
		assert.Equal(t, "cancelled", stateErr.Current)
	})

	t.Run("error: paid orders stay paid unless the policy allows it", func(t *testing.T) {
		m := newTxMocks(t)
		o := placedOrder(t, ownerID, order.StatusPaid)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.CancelOrder(ctx, user.NewActor(ownerID, user.RoleViewer), o.ID())

		assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
	})

	t.Run("success: paid cancellation when enabled", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		o := placedOrder(t, ownerID, order.StatusPaid)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
		m.inventory.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.invalidator.EXPECT().InvalidateItems(gomock.Any(), gomock.Any(), gomock.Any())

		cfg := testCfg
		cfg.AllowPaidOrderCancellation = true
		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, cfg, nil)
		got, err := uc.CancelOrder(ctx, user.NewActor(ownerID, user.RoleViewer), o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status())
	})

	t.Run("error: release failure aborts before invalidation", func(t *testing.T) {
		m := newTxMocks(t)
		o := placedOrder(t, ownerID, order.StatusPending)
		releaseErr := errs.New("update failed")
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
		m.inventory.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(releaseErr)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, config.ReservationConfig{}, nil)
		_, err := uc.CancelOrder(ctx, user.NewActor(ownerID, user.RoleViewer), o.ID())

		assert.ErrorIs(t, err, releaseErr)
	})
}

func TestOrderLifecycle_CompleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: paid order completes", func(t *testing.T) {
		m := newTxMocks(t)
		m.recordEvents()
		o := placedOrder(t, uuid.New(), order.StatusPaid)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		got, err := uc.CompleteOrder(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, got.Status())
		assert.Equal(t, []string{commands.EventOrderCompleted}, m.events)
	})

	t.Run("error: pending order cannot complete", func(t *testing.T) {
		m := newTxMocks(t)
		o := placedOrder(t, uuid.New(), order.StatusPending)
		m.orders.EXPECT().GetForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.CompleteOrder(ctx, o.ID())

		assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
	})

	t.Run("error: unknown order", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.orders.EXPECT().GetForUpdate(gomock.Any(), id).Return(nil, order.ErrOrderNotFound)

		uc := commands.NewOrderLifecycleUseCase(m.uow, m.invalidator, m.clock, testCfg, nil)
		_, err := uc.CompleteOrder(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

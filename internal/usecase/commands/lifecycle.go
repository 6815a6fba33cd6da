package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderLifecycleCommands interface {
	PayOrder(ctx context.Context, actor user.Actor, orderID uuid.UUID) (*order.Order, error)
	CancelOrder(ctx context.Context, actor user.Actor, orderID uuid.UUID) (*order.Order, error)
	// CompleteOrder is an admin transition and skips the ownership check.
	CompleteOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
}

type orderLifecycleUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
	metrics     *metrics.Metrics
	policy      order.Policy
}

func NewOrderLifecycleUseCase(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	m *metrics.Metrics,
) OrderLifecycleCommands {
	return &orderLifecycleUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		metrics:     m,
		policy:      order.Policy{AllowPaidCancellation: cfg.AllowPaidOrderCancellation},
	}
}

// PayOrder has no inventory effect. Paying twice reports AlreadyPaid and writes nothing.
func (uc *orderLifecycleUseCaseImpl) PayOrder(ctx context.Context, actor user.Actor, orderID uuid.UUID) (*order.Order, error) {
	return uc.transition(ctx, "pay_order", orderID, func(o *order.Order) error {
		if !o.IsOwnedBy(actor.ID) {
			return order.ErrOrderNotFound
		}
		return o.Pay(uc.clock.Now())
	}, EventOrderPaid, nil)
}

// CancelOrder releases exactly the quantities recorded on the order items.
func (uc *orderLifecycleUseCaseImpl) CancelOrder(ctx context.Context, actor user.Actor, orderID uuid.UUID) (*order.Order, error) {
	var released []order.LineSnapshot
	return uc.transition(ctx, "cancel_order", orderID, func(o *order.Order) error {
		if !o.IsOwnedBy(actor.ID) && !actor.IsStaff() {
			return order.ErrOrderNotFound
		}
		lines, err := o.Cancel(uc.clock.Now(), uc.policy)
		released = lines
		return err
	}, EventOrderCancelled, func(ctx context.Context, tx shared.Tx) error {
		itemIDs := make([]uuid.UUID, 0, len(released))
		for _, l := range released {
			if err := tx.Inventory().Release(ctx, l.ItemID, l.Quantity); err != nil {
				return err
			}
			itemIDs = append(itemIDs, l.ItemID)
		}
		tx.AfterCommit(func(ctx context.Context) {
			uc.invalidator.InvalidateItems(ctx, itemIDs...)
		})
		return nil
	})
}

func (uc *orderLifecycleUseCaseImpl) CompleteOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	return uc.transition(ctx, "complete_order", orderID, func(o *order.Order) error {
		return o.Complete(uc.clock.Now())
	}, EventOrderCompleted, nil)
}

// transition locks the order row, applies the domain change, persists it and
// records the event. effects runs after the status update in the same transaction.
func (uc *orderLifecycleUseCaseImpl) transition(
	ctx context.Context,
	operation string,
	orderID uuid.UUID,
	apply func(o *order.Order) error,
	eventType string,
	effects func(ctx context.Context, tx shared.Tx) error,
) (*order.Order, error) {
	var result *order.Order
	err := observe(ctx, uc.metrics, operation, func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			o, err := tx.Orders().GetForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			if err := apply(o); err != nil {
				return err
			}
			if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
				return err
			}
			if effects != nil {
				if err := effects(ctx, tx); err != nil {
					return err
				}
			}
			if err := tx.Outbox().Append(ctx, orderEvent(eventType, o, o.UpdatedAt())); err != nil {
				return err
			}
			result = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

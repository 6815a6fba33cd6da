package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckoutCommands take an optional idempotency key; uuid.Nil disables replay.
// A repeated key returns the order the first request placed.
type CheckoutCommands interface {
	// Checkout turns the whole cart into one pending order or changes nothing.
	Checkout(ctx context.Context, userID, idempotencyKey uuid.UUID) (*order.Order, error)
	// BuyNow orders a single item without reading or clearing the cart.
	BuyNow(ctx context.Context, userID, itemID uuid.UUID, qty int, idempotencyKey uuid.UUID) (*order.Order, error)
}

type checkoutUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
	metrics     *metrics.Metrics
	maxPerLine  int
	keyTTL      time.Duration
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	m *metrics.Metrics,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		metrics:     m,
		maxPerLine:  cfg.MaxLineQuantity,
		keyTTL:      cfg.IdempotencyKeyTTL,
	}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, userID, idempotencyKey uuid.UUID) (*order.Order, error) {
	var placed *order.Order
	err := observe(ctx, uc.metrics, "checkout", func(ctx context.Context) error {
		idem := newIdempotentRequest(userID, idempotencyKey, EndpointCheckout, nil, uc.keyTTL)

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			o, replayed, err := uc.replay(ctx, tx, idem)
			if err != nil || replayed {
				placed = o
				return err
			}

			// Locking the lines makes a concurrent second checkout wait and then see an empty cart.
			lines, err := tx.Carts().ListForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return cart.ErrEmptyCart
			}
			cart.SortByItemID(lines)

			requests := make([]reserveRequest, len(lines))
			for i, l := range lines {
				requests[i] = reserveRequest{itemID: l.ItemID(), qty: l.Quantity()}
			}

			o, err = uc.placeOrder(ctx, tx, userID, requests)
			if err != nil {
				return err
			}
			if err := tx.Carts().Clear(ctx, userID); err != nil {
				return err
			}
			if err := idem.complete(ctx, tx, o.ID()); err != nil {
				return err
			}
			placed = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (uc *checkoutUseCaseImpl) BuyNow(ctx context.Context, userID, itemID uuid.UUID, qty int, idempotencyKey uuid.UUID) (*order.Order, error) {
	var placed *order.Order
	err := observe(ctx, uc.metrics, "buy_now", func(ctx context.Context) error {
		if err := inventory.ValidateQuantity(qty, uc.maxPerLine); err != nil {
			return err
		}
		idem := newIdempotentRequest(userID, idempotencyKey, EndpointBuyNow, buyNowBody{ItemID: itemID, Quantity: qty}, uc.keyTTL)

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			o, replayed, err := uc.replay(ctx, tx, idem)
			if err != nil || replayed {
				placed = o
				return err
			}

			o, err = uc.placeOrder(ctx, tx, userID, []reserveRequest{{itemID: itemID, qty: qty}})
			if err != nil {
				return err
			}
			if err := idem.complete(ctx, tx, o.ID()); err != nil {
				return err
			}
			placed = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

type buyNowBody struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// replay loads the order an earlier request with the same key placed.
func (uc *checkoutUseCaseImpl) replay(ctx context.Context, tx shared.Tx, idem idempotentRequest) (*order.Order, bool, error) {
	orderID, err := idem.claim(ctx, tx, uc.clock.Now())
	if err != nil || orderID == uuid.Nil {
		return nil, false, err
	}
	o, err := tx.Orders().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return o, true, nil
}

type reserveRequest struct {
	itemID uuid.UUID
	qty    int
}

// placeOrder expects requests sorted by item id. The first failed reservation
// aborts the transaction, which also undoes the decrements before it.
func (uc *checkoutUseCaseImpl) placeOrder(ctx context.Context, tx shared.Tx, userID uuid.UUID, requests []reserveRequest) (*order.Order, error) {
	now := uc.clock.Now()

	snapshots := make([]order.LineSnapshot, 0, len(requests))
	itemIDs := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		snap, err := tx.Inventory().TryReserve(ctx, r.itemID, r.qty)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, order.NewLineSnapshot(snap, r.qty))
		itemIDs = append(itemIDs, r.itemID)
	}

	o, err := order.NewOrder(userID, snapshots, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Orders().Create(ctx, o); err != nil {
		return nil, err
	}
	if err := tx.Outbox().Append(ctx, orderEvent(EventOrderPlaced, o, now)); err != nil {
		return nil, err
	}

	tx.AfterCommit(func(ctx context.Context) {
		uc.invalidator.InvalidateItems(ctx, itemIDs...)
	})
	return o, nil
}

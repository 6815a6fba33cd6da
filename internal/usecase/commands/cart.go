package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartCommands never touch stock. Availability checks here are advisory and are
// repeated under lock at checkout.
type CartCommands interface {
	AddToCart(ctx context.Context, userID, itemID uuid.UUID, qty int) (*cart.Line, error)
	UpdateCartLine(ctx context.Context, userID, itemID uuid.UUID, qty int) (*cart.Line, error)
	RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	metrics    *metrics.Metrics
	maxPerLine int
}

func NewCartUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.ReservationConfig, m *metrics.Metrics) CartCommands {
	return &cartUseCaseImpl{
		uow:        uow,
		clock:      clk,
		metrics:    m,
		maxPerLine: cfg.MaxLineQuantity,
	}
}

func (uc *cartUseCaseImpl) AddToCart(ctx context.Context, userID, itemID uuid.UUID, qty int) (*cart.Line, error) {
	var merged *cart.Line
	err := observe(ctx, uc.metrics, "add_to_cart", func(ctx context.Context) error {
		line, err := cart.NewLine(userID, itemID, qty, uc.maxPerLine, uc.clock.Now())
		if err != nil {
			return err
		}

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, err := tx.Inventory().Get(ctx, itemID)
			if err != nil {
				return err
			}
			// the merged total is re-checked under lock at checkout
			if err := item.CheckAvailable(qty); err != nil {
				return err
			}

			stored, err := tx.Carts().AddQuantity(ctx, line)
			if err != nil {
				return err
			}
			if err := stored.CheckLimit(uc.maxPerLine); err != nil {
				return err
			}
			merged = stored
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (uc *cartUseCaseImpl) UpdateCartLine(ctx context.Context, userID, itemID uuid.UUID, qty int) (*cart.Line, error) {
	var updated *cart.Line
	err := observe(ctx, uc.metrics, "update_cart_line", func(ctx context.Context) error {
		line, err := cart.NewLine(userID, itemID, qty, uc.maxPerLine, uc.clock.Now())
		if err != nil {
			return err
		}

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, err := tx.Inventory().Get(ctx, itemID)
			if err != nil {
				return err
			}
			if err := item.CheckAvailable(qty); err != nil {
				return err
			}
			updated, err = tx.Carts().SetQuantity(ctx, line)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *cartUseCaseImpl) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error {
	return observe(ctx, uc.metrics, "remove_from_cart", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Carts().Remove(ctx, userID, itemID)
		})
	})
}

func (uc *cartUseCaseImpl) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return observe(ctx, uc.metrics, "clear_cart", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Carts().Clear(ctx, userID)
		})
	})
}

package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"reservation-engine/internal/domain/inventory"

	"github.com/google/uuid"
)

type CartReadStore interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]*CartLineView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	lines, err := q.store.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		UserID:    userID,
		Lines:     lines,
		Available: true,
	}
	for _, l := range lines {
		l.SubtotalCents = l.UnitPriceCents * int64(l.Quantity)
		l.Available = l.ItemStatus == inventory.StatusActive.String() && l.Stock >= l.Quantity
		view.TotalCents += l.SubtotalCents
		if !l.Available {
			view.Available = false
		}
	}
	return view, nil
}

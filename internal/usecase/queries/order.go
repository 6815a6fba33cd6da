package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/infra"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

// GetByID hides orders of other users behind the same not-found error as missing ones.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != actor.ID && !actor.IsStaff() {
		return nil, order.ErrOrderNotFound
	}
	for _, item := range view.Items {
		item.SubtotalCents = item.UnitPriceCents * int64(item.Quantity)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	return paginate(cursor, limit,
		func(limit int32) ([]*OrderListItem, error) {
			return q.store.FindByUserFirstPage(ctx, actor.ID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error) {
			return q.store.FindByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, limit)
		},
	)
}

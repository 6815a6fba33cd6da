package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if view.UserID != actor.ID && !actor.IsStaff() {
		return nil, booking.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	return paginate(cursor, limit,
		func(limit int32) ([]*BookingView, error) {
			return q.store.FindByUserFirstPage(ctx, actor.ID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error) {
			return q.store.FindByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, limit)
		},
	)
}

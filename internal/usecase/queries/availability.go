package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/infra"

	"github.com/google/uuid"
)

// AvailabilityReadStore is implemented by the database read store and by the
// cache that fronts it.
type AvailabilityReadStore interface {
	ItemAvailability(ctx context.Context, itemID uuid.UUID) (*ItemAvailability, error)
	ActivityAvailability(ctx context.Context, activityID uuid.UUID) (*ActivityAvailability, error)
}

type AvailabilityQueries interface {
	Item(ctx context.Context, itemID uuid.UUID) (*ItemAvailability, error)
	Activity(ctx context.Context, activityID uuid.UUID) (*ActivityAvailability, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) Item(ctx context.Context, itemID uuid.UUID) (*ItemAvailability, error) {
	view, err := q.store.ItemAvailability(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Activity(ctx context.Context, activityID uuid.UUID) (*ActivityAvailability, error) {
	view, err := q.store.ActivityAvailability(ctx, activityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, activity.ErrActivityNotFound
		}
		return nil, err
	}
	return view, nil
}

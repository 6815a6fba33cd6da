package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetItemAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetItemAvailabilityRow, error)
	GetActivityAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetActivityAvailabilityRow, error)
}

// AvailabilityReadStore reads without locks; the numbers are for display.
type AvailabilityReadStore struct {
	queries AvailabilityQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ItemAvailability(ctx context.Context, itemID uuid.UUID) (*queries.ItemAvailability, error) {
	row, err := r.queries.GetItemAvailability(ctx, r.db, itemID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sellable item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item availability", err)
	}
	return &queries.ItemAvailability{
		ItemID:         row.ID,
		Name:           row.Name,
		Kind:           row.Kind,
		Status:         row.Status,
		Stock:          int(row.Stock),
		UnitPriceCents: row.UnitPriceCents,
		Available:      row.Status == string(inventory.StatusActive) && row.Stock > 0,
	}, nil
}

func (r *AvailabilityReadStore) ActivityAvailability(ctx context.Context, activityID uuid.UUID) (*queries.ActivityAvailability, error) {
	row, err := r.queries.GetActivityAvailability(ctx, r.db, activityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get activity availability", err)
	}

	registered := int(row.Registered)
	act := activity.ReconstructActivity(row.ID, row.Name, pgconv.IntPtrFromPgtype(row.MaxParticipants), activity.Status(row.Status))
	return &queries.ActivityAvailability{
		ActivityID:      row.ID,
		Name:            row.Name,
		Status:          row.Status,
		MaxParticipants: act.MaxParticipants(),
		Registered:      registered,
		Remaining:       act.Remaining(registered),
		Available:       act.CheckCapacity(registered) == nil,
	}, nil
}

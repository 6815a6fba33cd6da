package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	ListCartView(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListCartViewRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListLines(ctx context.Context, userID uuid.UUID) ([]*queries.CartLineView, error) {
	rows, err := r.queries.ListCartView(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart view", err)
	}

	result := make([]*queries.CartLineView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CartLineView{
			ItemID:         row.ItemID,
			ItemName:       row.ItemName,
			Kind:           row.Kind,
			ItemStatus:     row.ItemStatus,
			Stock:          int(row.Stock),
			UnitPriceCents: row.UnitPriceCents,
			Quantity:       int(row.Quantity),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

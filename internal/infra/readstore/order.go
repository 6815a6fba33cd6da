package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"
	"time"

	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrdersByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserFirstPageParams) ([]sqlc.Orders, error)
	ListOrdersByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserKeysetParams) ([]sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// Order items are immutable once written, so reading them outside the order's
// snapshot cannot observe a torn order.
func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:          row.ID,
		UserID:      row.UserID,
		Status:      row.Status,
		TotalCents:  row.TotalCents,
		Items:       make([]*queries.OrderItemView, len(items)),
		PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for i, item := range items {
		view.Items[i] = &queries.OrderItemView{
			ItemID:         item.ItemID,
			ItemName:       item.ItemName,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       int(item.Quantity),
		}
	}
	return view, nil
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	params := sqlc.ListOrdersByUserFirstPageParams{UserID: userID, Limit: limit}
	rows, err := r.queries.ListOrdersByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get orders first page by user", err)
	}
	return mapOrderRows(rows), nil
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	params := sqlc.ListOrdersByUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		PageLimit:     limit,
	}
	rows, err := r.queries.ListOrdersByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get orders keyset by user", err)
	}
	return mapOrderRows(rows), nil
}

func mapOrderRows(rows []sqlc.Orders) []*queries.OrderListItem {
	result := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderListItem{
			ID:         row.ID,
			Status:     row.Status,
			TotalCents: row.TotalCents,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}

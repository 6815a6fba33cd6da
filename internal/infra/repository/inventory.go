package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/repository/converter"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	GetSellableItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SellableItems, error)
	GetSellableItemForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SellableItems, error)
	UpdateSellableItemStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSellableItemStockParams) (int64, error)
	IncrementSellableItemStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementSellableItemStockParams) (int64, error)
}

// InventoryRepository is the inventory guard: every stock mutation goes through
// TryReserve or Release inside the caller's transaction.
type InventoryRepository struct {
	queries InventoryQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) Get(ctx context.Context, itemID uuid.UUID) (*inventory.Item, error) {
	row, err := r.queries.GetSellableItem(ctx, r.db, itemID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, infra.WrapRepoErr("failed to get sellable item", err)
	}
	return converter.ItemFromRow(row), nil
}

// TryReserve locks the item row, so concurrent reservations of the same item
// serialize here and the loser re-reads the decremented stock.
func (r *InventoryRepository) TryReserve(ctx context.Context, itemID uuid.UUID, qty int) (inventory.Snapshot, error) {
	row, err := r.queries.GetSellableItemForUpdate(ctx, r.db, itemID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return inventory.Snapshot{}, inventory.ErrItemNotFound
		}
		return inventory.Snapshot{}, infra.WrapRepoErr("failed to lock sellable item", err)
	}

	item := converter.ItemFromRow(row)
	snap, err := item.Reserve(qty)
	if err != nil {
		return inventory.Snapshot{}, err
	}

	affected, err := r.queries.UpdateSellableItemStock(ctx, r.db, sqlc.UpdateSellableItemStockParams{
		ID:    itemID,
		Stock: pgconv.IntToInt32(item.Stock()),
	})
	if err != nil {
		return inventory.Snapshot{}, infra.WrapRepoErr("failed to decrement stock", err)
	}
	if affected == 0 {
		return inventory.Snapshot{}, inventory.ErrItemNotFound
	}
	return snap, nil
}

// Release returns qty units to stock. qty must come from a persisted order item or booking.
func (r *InventoryRepository) Release(ctx context.Context, itemID uuid.UUID, qty int) error {
	if qty <= 0 {
		return inventory.ErrInvalidQuantity
	}
	affected, err := r.queries.IncrementSellableItemStock(ctx, r.db, sqlc.IncrementSellableItemStockParams{
		Quantity: pgconv.IntToInt32(qty),
		ID:       itemID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release stock", err)
	}
	if affected == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

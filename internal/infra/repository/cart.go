package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/repository/converter"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	AddCartLineQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCartLineQuantityParams) (sqlc.CartLines, error)
	SetCartLineQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCartLineQuantityParams) (sqlc.CartLines, error)
	DeleteCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartLineParams) (int64, error)
	ClearCart(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	ListCartLinesForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CartLines, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

// AddQuantity upserts atomically, so two concurrent adds of the same item both count.
func (r *CartRepository) AddQuantity(ctx context.Context, line *cart.Line) (*cart.Line, error) {
	row, err := r.queries.AddCartLineQuantity(ctx, r.db, sqlc.AddCartLineQuantityParams{
		UserID:    line.UserID(),
		ItemID:    line.ItemID(),
		Quantity:  pgconv.IntToInt32(line.Quantity()),
		CreatedAt: pgconv.TimeToPgtype(line.CreatedAt()),
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to add cart line", err)
		switch {
		case infra.IsKind(wrapped, infra.KindForeignKeyViolated):
			return nil, inventory.ErrItemNotFound
		case infra.IsKind(wrapped, infra.KindOutOfRange):
			// the merged quantity no longer fits the column
			return nil, inventory.ErrQuantityTooLarge
		}
		return nil, wrapped
	}
	return converter.CartLineFromRow(row), nil
}

func (r *CartRepository) SetQuantity(ctx context.Context, line *cart.Line) (*cart.Line, error) {
	row, err := r.queries.SetCartLineQuantity(ctx, r.db, sqlc.SetCartLineQuantityParams{
		UserID:    line.UserID(),
		ItemID:    line.ItemID(),
		Quantity:  pgconv.IntToInt32(line.Quantity()),
		UpdatedAt: pgconv.TimeToPgtype(line.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, cart.ErrLineNotFound
		}
		return nil, infra.WrapRepoErr("failed to update cart line", err)
	}
	return converter.CartLineFromRow(row), nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	affected, err := r.queries.DeleteCartLine(ctx, r.db, sqlc.DeleteCartLineParams{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart line", err)
	}
	if affected == 0 {
		return cart.ErrLineNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.ClearCart(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

// ListForUpdate locks the user's lines so two checkouts of one cart cannot both succeed.
func (r *CartRepository) ListForUpdate(ctx context.Context, userID uuid.UUID) ([]*cart.Line, error) {
	rows, err := r.queries.ListCartLinesForUpdate(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart lines", err)
	}
	return converter.CartLinesFromRows(rows), nil
}

package converter

import (
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/domain/order"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:         o.ID(),
		UserID:     o.UserID(),
		Status:     o.Status().String(),
		TotalCents: o.Total().Cents(),
		CreatedAt:  pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToCreateParams(o *order.Order) []sqlc.CreateOrderItemParams {
	lines := o.Lines()
	params := make([]sqlc.CreateOrderItemParams, 0, len(lines))
	for _, l := range lines {
		params = append(params, sqlc.CreateOrderItemParams{
			OrderID:        o.ID(),
			ItemID:         l.ItemID,
			ItemName:       l.Name,
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       pgconv.IntToInt32(l.Quantity),
		})
	}
	return params
}

func OrderToUpdateStatusParams(o *order.Order) sqlc.UpdateOrderStatusParams {
	return sqlc.UpdateOrderStatusParams{
		ID:          o.ID(),
		Status:      o.Status().String(),
		PaidAt:      pgconv.TimePtrToPgtype(o.PaidAt()),
		CancelledAt: pgconv.TimePtrToPgtype(o.CancelledAt()),
		CompletedAt: pgconv.TimePtrToPgtype(o.CompletedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderFromRows(row sqlc.Orders, items []sqlc.OrderItems) *order.Order {
	lines := make([]order.LineSnapshot, 0, len(items))
	for _, it := range items {
		lines = append(lines, order.LineSnapshot{
			ItemID:    it.ItemID,
			Name:      it.ItemName,
			UnitPrice: money.FromCents(it.UnitPriceCents),
			Quantity:  int(it.Quantity),
		})
	}
	return order.ReconstructOrder(
		row.ID,
		row.UserID,
		order.Status(row.Status),
		lines,
		money.FromCents(row.TotalCents),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
	)
}

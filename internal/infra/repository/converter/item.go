package converter

import (
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
)

func ItemFromRow(row sqlc.SellableItems) *inventory.Item {
	return inventory.ReconstructItem(
		row.ID,
		row.ParentID,
		inventory.ParentKind(row.ParentKind),
		inventory.Kind(row.Kind),
		row.Name,
		money.FromCents(row.UnitPriceCents),
		int(row.Stock),
		inventory.Status(row.Status),
	)
}

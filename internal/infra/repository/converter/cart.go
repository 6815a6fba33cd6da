package converter

import (
	"reservation-engine/internal/domain/cart"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
)

func CartLineFromRow(row sqlc.CartLines) *cart.Line {
	return cart.ReconstructLine(
		row.UserID,
		row.ItemID,
		int(row.Quantity),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CartLinesFromRows(rows []sqlc.CartLines) []*cart.Line {
	lines := make([]*cart.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, CartLineFromRow(row))
	}
	return lines
}

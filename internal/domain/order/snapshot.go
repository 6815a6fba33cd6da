package order

import (
	"sort"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"

	"github.com/google/uuid"
)

// LineSnapshot is what the buyer agreed to pay for. It is copied from the catalog
// at reservation time and never follows later catalog edits.
type LineSnapshot struct {
	ItemID    uuid.UUID
	Name      string
	UnitPrice money.Money
	Quantity  int
}

func NewLineSnapshot(s inventory.Snapshot, qty int) LineSnapshot {
	return LineSnapshot{
		ItemID:    s.ItemID,
		Name:      s.Name,
		UnitPrice: s.UnitPrice,
		Quantity:  qty,
	}
}

func (l LineSnapshot) Subtotal() money.Money {
	return l.UnitPrice.Times(l.Quantity)
}

func sortLines(lines []LineSnapshot) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ItemID.String() < lines[j].ItemID.String()
	})
}

package cart

import (
	"sort"
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound = errs.Mark(errs.New("cart line not found"), errs.ErrNotFound)
	ErrEmptyCart    = errs.Mark(errs.New("cart is empty"), errs.ErrDomainValidation)
)

// Line is an unreserved intent to buy. Holding it never affects stock.
type Line struct {
	userID    uuid.UUID
	itemID    uuid.UUID
	quantity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewLine(userID, itemID uuid.UUID, qty, maxPerLine int, now time.Time) (*Line, error) {
	if err := inventory.ValidateQuantity(qty, maxPerLine); err != nil {
		return nil, err
	}
	return &Line{
		userID:    userID,
		itemID:    itemID,
		quantity:  qty,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructLine(userID, itemID uuid.UUID, qty int, createdAt, updatedAt time.Time) *Line {
	return &Line{
		userID:    userID,
		itemID:    itemID,
		quantity:  qty,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CheckLimit validates a line after it has been merged with what the cart already held.
func (l *Line) CheckLimit(maxPerLine int) error {
	return inventory.ValidateQuantity(l.quantity, maxPerLine)
}

func (l *Line) UserID() uuid.UUID    { return l.userID }
func (l *Line) ItemID() uuid.UUID    { return l.itemID }
func (l *Line) Quantity() int        { return l.quantity }
func (l *Line) CreatedAt() time.Time { return l.createdAt }
func (l *Line) UpdatedAt() time.Time { return l.updatedAt }

// SortByItemID orders lines by item id so multi-row locks are always taken in the same order.
func SortByItemID(lines []*Line) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].itemID.String() < lines[j].itemID.String()
	})
}

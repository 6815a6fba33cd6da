package inventory

import (
	"math"

	"reservation-engine/internal/domain/money"

	"github.com/google/uuid"
)

// Item is a sellable unit with finite stock: a ticket type of a spot or a room type of a hotel.
type Item struct {
	id         uuid.UUID
	parentID   uuid.UUID
	parentKind ParentKind
	kind       Kind
	name       string
	unitPrice  money.Money
	stock      int
	status     Status
}

// Snapshot is the name and price captured at reservation time.
type Snapshot struct {
	ItemID    uuid.UUID
	Kind      Kind
	Name      string
	UnitPrice money.Money
}

func ReconstructItem(
	id, parentID uuid.UUID,
	parentKind ParentKind,
	kind Kind,
	name string,
	unitPrice money.Money,
	stock int,
	status Status,
) *Item {
	return &Item{
		id:         id,
		parentID:   parentID,
		parentKind: parentKind,
		kind:       kind,
		name:       name,
		unitPrice:  unitPrice,
		stock:      stock,
		status:     status,
	}
}

func ValidateQuantity(qty, maxPerLine int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if maxPerLine > 0 && qty > maxPerLine {
		return ErrQuantityTooLarge
	}
	// quantities are stored as INTEGER
	if qty > math.MaxInt32 {
		return ErrQuantityTooLarge
	}
	return nil
}

func (i *Item) IsActive() bool {
	return i.status == StatusActive
}

// CheckAvailable performs the availability check without mutating stock.
func (i *Item) CheckAvailable(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if !i.IsActive() {
		return ErrItemUnavailable
	}
	if i.stock < qty {
		return &InsufficientStockError{ItemID: i.id, Requested: qty, Available: i.stock}
	}
	return nil
}

// Reserve must only be called on a row held under a lock for the current transaction.
func (i *Item) Reserve(qty int) (Snapshot, error) {
	if err := i.CheckAvailable(qty); err != nil {
		return Snapshot{}, err
	}
	i.stock -= qty
	return i.Snapshot(), nil
}

// Release is uncapped: returning stock does not consult any original quantity.
func (i *Item) Release(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	i.stock += qty
	return nil
}

func (i *Item) Snapshot() Snapshot {
	return Snapshot{
		ItemID:    i.id,
		Kind:      i.kind,
		Name:      i.name,
		UnitPrice: i.unitPrice,
	}
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) ParentID() uuid.UUID    { return i.parentID }
func (i *Item) ParentKind() ParentKind { return i.parentKind }
func (i *Item) Kind() Kind             { return i.kind }
func (i *Item) Name() string           { return i.name }
func (i *Item) UnitPrice() money.Money { return i.unitPrice }
func (i *Item) Stock() int             { return i.stock }
func (i *Item) Status() Status         { return i.status }

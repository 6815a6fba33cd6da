package inventory

import (
	"fmt"

	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound     = errs.Mark(errs.New("sellable item not found"), errs.ErrNotFound)
	ErrItemUnavailable  = errs.Mark(errs.New("sellable item is not on sale"), errs.ErrUnavailable)
	ErrInvalidQuantity  = errs.Mark(errs.New("quantity must be positive"), errs.ErrDomainValidation)
	ErrQuantityTooLarge = errs.Mark(errs.New("quantity exceeds the per-line limit"), errs.ErrDomainValidation)
	ErrWrongKind        = errs.Mark(errs.New("sellable item has the wrong kind"), errs.ErrDomainValidation)
)

// InsufficientStockError names the item that could not be reserved so callers can
// tell the user which line to change.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrInsufficientStock
}

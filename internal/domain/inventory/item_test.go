//go:build unit

package inventory_test

import (
	"math"
	"testing"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(stock int, status inventory.Status) *inventory.Item {
	return inventory.ReconstructItem(
		uuid.New(), uuid.New(), inventory.ParentSpot, inventory.KindTicket,
		"Museum entry", money.FromCents(1200), stock, status,
	)
}

func TestItem_Reserve(t *testing.T) {
	testCases := []struct {
		name      string
		stock     int
		status    inventory.Status
		qty       int
		errIs     error
		wantStock int
	}{
		{name: "exact stock", stock: 2, status: inventory.StatusActive, qty: 2, wantStock: 0},
		{name: "partial stock", stock: 5, status: inventory.StatusActive, qty: 2, wantStock: 3},
		{name: "more than stock", stock: 1, status: inventory.StatusActive, qty: 2, errIs: errs.ErrInsufficientStock, wantStock: 1},
		{name: "zero stock", stock: 0, status: inventory.StatusActive, qty: 1, errIs: errs.ErrInsufficientStock, wantStock: 0},
		{name: "inactive item", stock: 5, status: inventory.StatusInactive, qty: 1, errIs: inventory.ErrItemUnavailable, wantStock: 5},
		{name: "zero quantity", stock: 5, status: inventory.StatusActive, qty: 0, errIs: inventory.ErrInvalidQuantity, wantStock: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := newItem(tc.stock, tc.status)

			snap, err := item.Reserve(tc.qty)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, item.ID(), snap.ItemID)
				assert.Equal(t, "Museum entry", snap.Name)
				assert.Equal(t, int64(1200), snap.UnitPrice.Cents())
			}
			assert.Equal(t, tc.wantStock, item.Stock())
		})
	}
}

func TestItem_InsufficientStockCarriesItem(t *testing.T) {
	item := newItem(1, inventory.StatusActive)

	_, err := item.Reserve(3)

	var stockErr *inventory.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, item.ID(), stockErr.ItemID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)
}

func TestItem_Release(t *testing.T) {
	item := newItem(0, inventory.StatusInactive)

	require.NoError(t, item.Release(4))
	assert.Equal(t, 4, item.Stock())

	require.ErrorIs(t, item.Release(0), inventory.ErrInvalidQuantity)
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, inventory.ValidateQuantity(1, 20))
	assert.NoError(t, inventory.ValidateQuantity(20, 20))
	assert.NoError(t, inventory.ValidateQuantity(500, 0))
	assert.ErrorIs(t, inventory.ValidateQuantity(21, 20), inventory.ErrQuantityTooLarge)
	assert.ErrorIs(t, inventory.ValidateQuantity(-1, 20), inventory.ErrInvalidQuantity)
	assert.NoError(t, inventory.ValidateQuantity(math.MaxInt32, 0))
	assert.ErrorIs(t, inventory.ValidateQuantity(math.MaxInt32+1, 0), inventory.ErrQuantityTooLarge)
}

//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/repository"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/errs"
	repositorymock "reservation-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func itemRow(id uuid.UUID, stock int32, status string) sqlc.SellableItems {
	return sqlc.SellableItems{
		ID:             id,
		ParentID:       uuid.New(),
		ParentKind:     "spot",
		Kind:           "ticket",
		Name:           "Adult ticket",
		UnitPriceCents: 2000,
		Stock:          stock,
		Status:         status,
	}
}

// =============================================================================
// TryReserve Tests
// =============================================================================

func TestInventoryRepository_TryReserve(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	testCases := []struct {
		name       string
		qty        int
		setupMock  func(*repositorymock.MockInventoryQueries)
		wantErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: stock is decremented by exactly qty",
			qty:  2,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 5, "active"), nil)
				mock.EXPECT().UpdateSellableItemStock(ctx, gomock.Any(), sqlc.UpdateSellableItemStockParams{ID: itemID, Stock: 3}).Return(int64(1), nil)
			},
		},
		{
			name: "success: last units",
			qty:  5,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 5, "active"), nil)
				mock.EXPECT().UpdateSellableItemStock(ctx, gomock.Any(), sqlc.UpdateSellableItemStockParams{ID: itemID, Stock: 0}).Return(int64(1), nil)
			},
		},
		{
			name: "error: insufficient stock writes nothing",
			qty:  6,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 5, "active"), nil)
			},
			wantErr: errs.ErrInsufficientStock,
		},
		{
			name: "error: inactive item",
			qty:  1,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 5, "inactive"), nil)
			},
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "error: unknown item",
			qty:  1,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(sqlc.SellableItems{}, pgx.ErrNoRows)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "error: lock timeout is reported as busy",
			qty:  1,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				lockErr := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(sqlc.SellableItems{}, lockErr)
			},
			wantErr:    errs.ErrBusy,
			expectKind: infra.KindBusy,
		},
		{
			name: "error: update fails",
			qty:  1,
			setupMock: func(mock *repositorymock.MockInventoryQueries) {
				mock.EXPECT().GetSellableItemForUpdate(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 5, "active"), nil)
				mock.EXPECT().UpdateSellableItemStock(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
			repo := repository.NewInventoryRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			snap, err := repo.TryReserve(ctx, itemID, tc.qty)

			if tc.wantErr != nil || tc.expectKind != "" {
				require.Error(t, err)
				if tc.wantErr != nil {
					assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				}
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				}
				assert.Equal(t, inventory.Snapshot{}, snap)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, itemID, snap.ItemID)
			assert.Equal(t, "Adult ticket", snap.Name)
			assert.Equal(t, int64(2000), snap.UnitPrice.Cents())
		})
	}
}

// =============================================================================
// Release Tests
// =============================================================================

func TestInventoryRepository_Release(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	t.Run("success: increments by qty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
		mockQueries.EXPECT().IncrementSellableItemStock(ctx, gomock.Any(), sqlc.IncrementSellableItemStockParams{Quantity: 3, ID: itemID}).Return(int64(1), nil)

		err := repository.NewInventoryRepository(mockQueries, &mockDBTX{}).Release(ctx, itemID, 3)

		assert.NoError(t, err)
	})

	t.Run("error: non-positive qty never reaches the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryQueries(ctrl)

		err := repository.NewInventoryRepository(mockQueries, &mockDBTX{}).Release(ctx, itemID, 0)

		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	})

	t.Run("error: item vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
		mockQueries.EXPECT().IncrementSellableItemStock(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewInventoryRepository(mockQueries, &mockDBTX{}).Release(ctx, itemID, 1)

		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})
}

func TestInventoryRepository_Get(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
	mockQueries.EXPECT().GetSellableItem(ctx, gomock.Any(), itemID).Return(itemRow(itemID, 7, "active"), nil)

	item, err := repository.NewInventoryRepository(mockQueries, &mockDBTX{}).Get(ctx, itemID)

	require.NoError(t, err)
	assert.Equal(t, 7, item.Stock())
	assert.Equal(t, inventory.KindTicket, item.Kind())
	assert.True(t, item.IsActive())
}

// =============================================================================
// Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

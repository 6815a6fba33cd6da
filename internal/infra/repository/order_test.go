//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/repository"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/usecase/shared"
	repositorymock "reservation-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var orderedAt = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(uuid.New(), []order.LineSnapshot{
		order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Adult ticket", UnitPrice: money.FromCents(2000)}, 2),
		order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Child ticket", UnitPrice: money.FromCents(800)}, 1),
	}, orderedAt)
	require.NoError(t, err)
	return o
}

// =============================================================================
// Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockOrderWriteQueries, *order.Order)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: header and one row per line",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), sqlc.CreateOrderParams{
					ID:         o.ID(),
					UserID:     o.UserID(),
					Status:     "pending",
					TotalCents: 4800,
					CreatedAt:  pgtype.Timestamptz{Time: orderedAt, Valid: true},
				}).Return(nil)
				for _, l := range o.Lines() {
					mock.EXPECT().CreateOrderItem(ctx, gomock.Any(), sqlc.CreateOrderItemParams{
						OrderID:        o.ID(),
						ItemID:         l.ItemID,
						ItemName:       l.Name,
						UnitPriceCents: l.UnitPrice.Cents(),
						Quantity:       int32(l.Quantity),
					}).Return(nil)
				}
			},
		},
		{
			name: "error: header insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: item insert violates the foreign key",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().CreateOrderItem(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			repo := repository.NewOrderRepository(mockQueries, &mockDBTX{})
			o := newOrder(t)
			tc.setupMock(mockQueries, o)

			err := repo.Create(ctx, o)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("success: order is rebuilt with its snapshot lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockQueries.EXPECT().GetOrderForUpdate(ctx, gomock.Any(), orderID).Return(sqlc.Orders{
			ID: orderID, UserID: uuid.New(), Status: "pending", TotalCents: 1600,
			CreatedAt: pgtype.Timestamptz{Time: orderedAt, Valid: true},
			UpdatedAt: pgtype.Timestamptz{Time: orderedAt, Valid: true},
		}, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, gomock.Any(), orderID).Return([]sqlc.OrderItems{
			{OrderID: orderID, ItemID: uuid.New(), ItemName: "Child ticket", UnitPriceCents: 800, Quantity: 2},
		}, nil)

		o, err := repository.NewOrderRepository(mockQueries, &mockDBTX{}).GetForUpdate(ctx, orderID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 2, o.Lines()[0].Quantity)
		assert.Nil(t, o.PaidAt())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockQueries.EXPECT().GetOrderForUpdate(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := repository.NewOrderRepository(mockQueries, &mockDBTX{}).GetForUpdate(ctx, orderID)

		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
	o := newOrder(t)
	paidAt := orderedAt.Add(time.Minute)
	require.NoError(t, o.Pay(paidAt))

	mockQueries.EXPECT().UpdateOrderStatus(ctx, gomock.Any(), sqlc.UpdateOrderStatusParams{
		ID:        o.ID(),
		Status:    "paid",
		PaidAt:    pgtype.Timestamptz{Time: paidAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: paidAt, Valid: true},
	}).Return(int64(1), nil)

	assert.NoError(t, repository.NewOrderRepository(mockQueries, &mockDBTX{}).UpdateStatus(ctx, o))
}

// =============================================================================
// Cart Tests
// =============================================================================

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()

	t.Run("add returns the merged row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		line, err := cart.NewLine(userID, itemID, 2, 10, orderedAt)
		require.NoError(t, err)

		mockQueries.EXPECT().AddCartLineQuantity(ctx, gomock.Any(), sqlc.AddCartLineQuantityParams{
			UserID:    userID,
			ItemID:    itemID,
			Quantity:  2,
			CreatedAt: pgtype.Timestamptz{Time: orderedAt, Valid: true},
		}).Return(sqlc.CartLines{UserID: userID, ItemID: itemID, Quantity: 5}, nil)

		stored, err := repository.NewCartRepository(mockQueries, &mockDBTX{}).AddQuantity(ctx, line)

		require.NoError(t, err)
		assert.Equal(t, 5, stored.Quantity())
	})

	t.Run("add for an unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		line, err := cart.NewLine(userID, itemID, 1, 10, orderedAt)
		require.NoError(t, err)
		mockQueries.EXPECT().AddCartLineQuantity(ctx, gomock.Any(), gomock.Any()).Return(sqlc.CartLines{}, &pgconn.PgError{Code: "23503"})

		_, err = repository.NewCartRepository(mockQueries, &mockDBTX{}).AddQuantity(ctx, line)

		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})

	t.Run("merge that overflows the quantity column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		line, err := cart.NewLine(userID, itemID, 2_000_000_000, 0, orderedAt)
		require.NoError(t, err)
		mockQueries.EXPECT().AddCartLineQuantity(ctx, gomock.Any(), gomock.Any()).Return(sqlc.CartLines{}, &pgconn.PgError{Code: "22003"})

		_, err = repository.NewCartRepository(mockQueries, &mockDBTX{}).AddQuantity(ctx, line)

		assert.ErrorIs(t, err, inventory.ErrQuantityTooLarge)
	})

	t.Run("set on a missing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		line, err := cart.NewLine(userID, itemID, 1, 10, orderedAt)
		require.NoError(t, err)
		mockQueries.EXPECT().SetCartLineQuantity(ctx, gomock.Any(), gomock.Any()).Return(sqlc.CartLines{}, pgx.ErrNoRows)

		_, err = repository.NewCartRepository(mockQueries, &mockDBTX{}).SetQuantity(ctx, line)

		assert.ErrorIs(t, err, cart.ErrLineNotFound)
	})

	t.Run("remove a missing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		mockQueries.EXPECT().DeleteCartLine(ctx, gomock.Any(), sqlc.DeleteCartLineParams{UserID: userID, ItemID: itemID}).Return(int64(0), nil)

		err := repository.NewCartRepository(mockQueries, &mockDBTX{}).Remove(ctx, userID, itemID)

		assert.ErrorIs(t, err, cart.ErrLineNotFound)
	})

	t.Run("locked lines are converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		mockQueries.EXPECT().ListCartLinesForUpdate(ctx, gomock.Any(), userID).Return([]sqlc.CartLines{
			{UserID: userID, ItemID: itemID, Quantity: 2},
			{UserID: userID, ItemID: uuid.New(), Quantity: 1},
		}, nil)

		lines, err := repository.NewCartRepository(mockQueries, &mockDBTX{}).ListForUpdate(ctx, userID)

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, itemID, lines[0].ItemID())
	})
}

// =============================================================================
// Outbox Tests
// =============================================================================

func TestOutboxRepository_Append(t *testing.T) {
	ctx := context.Background()
	aggregateID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockQueries.EXPECT().CreateOutboxEvent(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error {
			assert.Equal(t, "reservations.order", arg.Topic)
			assert.Equal(t, "order.placed", arg.EventType)
			assert.Equal(t, aggregateID, arg.AggregateID)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(arg.Payload, &payload))
			assert.Equal(t, "pending", payload["status"])
			return nil
		})

	err := repository.NewOutboxRepository(mockQueries, &mockDBTX{}, "reservations").Append(ctx, shared.OutboxEvent{
		AggregateType: shared.AggregateOrder,
		AggregateID:   aggregateID,
		EventType:     "order.placed",
		Payload:       map[string]string{"status": "pending"},
	})

	assert.NoError(t, err)
}

func TestTopicFor(t *testing.T) {
	assert.Equal(t, "booking", repository.TopicFor("", "booking"))
	assert.Equal(t, "prod.booking", repository.TopicFor("prod", "booking"))
}

func TestOutboxRelayStore_Claim(t *testing.T) {
	ctx := context.Background()
	aggregateID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxRelayQueries(ctrl)
	mockQueries.EXPECT().ClaimUnpublishedOutboxEvents(ctx, gomock.Any(), sqlc.ClaimUnpublishedOutboxEventsParams{
		MaxAttempts: 5,
		BatchSize:   50,
	}).Return([]sqlc.OutboxEvents{
		{ID: 7, AggregateID: aggregateID, Topic: "participation", EventType: "participation.registered", Payload: []byte(`{}`), Attempts: 1},
	}, nil)

	events, err := repository.NewOutboxRelayStore(mockQueries).Claim(ctx, &mockDBTX{}, 50, 5)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(7), events[0].ID)
	assert.Equal(t, aggregateID.String(), events[0].Key)
	assert.Equal(t, 1, events[0].Attempts)
}

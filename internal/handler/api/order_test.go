//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/middleware"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/tests/common/httptest"
	commandsmock "reservation-engine/tests/mock/commands"
	queriesmock "reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as *actor.
func fakeAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

func testErrorMapper() *api.ErrorMapper {
	return api.NewErrorMapper(config.ReservationConfig{RetryAfter: time.Second})
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCheckout  *commandsmock.MockCheckoutCommands
	mockLifecycle *commandsmock.MockOrderLifecycleCommands
	mockQueries   *queriesmock.MockOrderQueries
	actor         user.Actor
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockOrderLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.actor = user.NewActor(uuid.New(), user.RoleViewer)

	h := api.NewOrderHandler(s.mockCheckout, s.mockLifecycle, s.mockQueries, testErrorMapper())
	auth := fakeAuth(&s.actor)

	s.router.POST("/orders", auth, h.BuyNow)
	s.router.GET("/orders", auth, h.List)
	s.router.POST("/orders/checkout", auth, h.Checkout)
	s.router.GET("/orders/:id", auth, h.Get)
	s.router.POST("/orders/:id/pay", auth, h.Pay)
	s.router.POST("/orders/:id/cancel", auth, h.Cancel)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) pendingOrder() *order.Order {
	line := order.NewLineSnapshot(inventory.Snapshot{ItemID: uuid.New(), Name: "Adult ticket", UnitPrice: money.FromCents(2000)}, 2)
	return order.ReconstructOrder(uuid.New(), s.actor.ID, order.StatusPending, []order.LineSnapshot{line},
		money.FromCents(4000), handlerNow, handlerNow, nil, nil, nil)
}

func (s *OrderHandlerTestSuite) view(o *order.Order, status string) *queries.OrderView {
	return &queries.OrderView{
		ID:         o.ID(),
		UserID:     o.UserID(),
		Status:     status,
		TotalCents: 4000,
		Items: []*queries.OrderItemView{
			{ItemID: o.Lines()[0].ItemID, ItemName: "Adult ticket", UnitPriceCents: 2000, Quantity: 2, SubtotalCents: 4000},
		},
		CreatedAt: handlerNow,
		UpdatedAt: handlerNow,
	}
}

// ================================================================================
// Checkout / BuyNow
// ================================================================================

func (s *OrderHandlerTestSuite) TestCheckout() {
	s.Run("success: 201 with the placed order", func() {
		o := s.pendingOrder()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor.ID, uuid.Nil).Return(o, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, o.ID()).Return(s.view(o, "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/checkout", nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(o.ID(), body.ID)
		s.Equal(int64(4000), body.TotalCents)
		s.Require().Len(body.Items, 1)
		s.Equal(2, body.Items[0].Quantity)
	})

	s.Run("error: 409 names the short item", func() {
		itemID := uuid.New()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor.ID, uuid.Nil).
			Return(nil, &inventory.InsufficientStockError{ItemID: itemID, Requested: 2, Available: 0})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/checkout", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
		s.Contains(rec.Body.String(), itemID.String())
	})

	s.Run("error: 503 while the first request with the key is in flight", func() {
		key := uuid.New()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor.ID, key).Return(nil, commands.ErrIdempotencyInProgress)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders/checkout", nil, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.NotEmpty(rec.Header().Get("Retry-After"))
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/checkout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *OrderHandlerTestSuite) TestBuyNow() {
	itemID := uuid.New()

	s.Run("success", func() {
		o := s.pendingOrder()
		s.mockCheckout.EXPECT().BuyNow(gomock.Any(), s.actor.ID, itemID, 2, uuid.Nil).Return(o, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, o.ID()).Return(s.view(o, "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID, "quantity": 2}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on missing quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": "not-a-uuid", "quantity": 1}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: the Idempotency-Key header reaches the use case", func() {
		o := s.pendingOrder()
		key := uuid.New()
		s.mockCheckout.EXPECT().BuyNow(gomock.Any(), s.actor.ID, itemID, 2, key).Return(o, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, o.ID()).Return(s.view(o, "pending"), nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID, "quantity": 2}, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID, "quantity": 2}, "bearer-token",
			map[string]string{"Idempotency-Key": "retry-1"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 409 when the key was used for another request", func() {
		key := uuid.New()
		s.mockCheckout.EXPECT().BuyNow(gomock.Any(), s.actor.ID, itemID, 3, key).Return(nil, commands.ErrIdempotencyKeyReused)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID, "quantity": 3}, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Idempotency key reused")
	})

	s.Run("error: 422 for an item not on sale", func() {
		s.mockCheckout.EXPECT().BuyNow(gomock.Any(), s.actor.ID, itemID, 1, uuid.Nil).Return(nil, inventory.ErrItemUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			map[string]any{"item_id": itemID, "quantity": 1}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Not available")
	})
}

// ================================================================================
// Lifecycle
// ================================================================================

func (s *OrderHandlerTestSuite) TestPay() {
	s.Run("success: returns the paid order", func() {
		o := s.pendingOrder()
		s.mockLifecycle.EXPECT().PayOrder(gomock.Any(), s.actor, o.ID()).Return(o, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, o.ID()).Return(s.view(o, "paid"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+o.ID().String()+"/pay", nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.Status)
	})

	s.Run("error: 409 for a cancelled order", func() {
		id := uuid.New()
		s.mockLifecycle.EXPECT().PayOrder(gomock.Any(), s.actor, id).
			Return(nil, errs.NewStateError("order", "cancelled", order.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/pay", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid state transition")
		s.Contains(rec.Body.String(), `"status":"cancelled"`)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/123/pay", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	s.Run("error: 404 for someone else's order", func() {
		id := uuid.New()
		s.mockLifecycle.EXPECT().CancelOrder(gomock.Any(), s.actor, id).Return(nil, order.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/cancel", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 409 when already cancelled", func() {
		id := uuid.New()
		s.mockLifecycle.EXPECT().CancelOrder(gomock.Any(), s.actor, id).
			Return(nil, errs.NewStateError("order", "cancelled", order.ErrAlreadyCancelled))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/cancel", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already cancelled")
	})
}

// ================================================================================
// Queries
// ================================================================================

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("next cursor is exposed when more pages exist", func() {
		items := []*queries.OrderListItem{{ID: uuid.New(), Status: "pending", TotalCents: 100, CreatedAt: handlerNow}}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, nil, 1).Return(items, &queries.Cursor{After: "abc"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=1", nil, "bearer-token")

		var body struct {
			Orders     []*resdto.OrderListResponse `json:"orders"`
			NextCursor string                      `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Orders, 1)
		s.Equal("abc", body.NextCursor)
	})

	s.Run("cursor is passed through", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, queries.DefaultListLimit).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?after=abc", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.NotContains(rec.Body.String(), "next_cursor")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("error: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(nil, order.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/tests/common/httptest"
	"reservation-engine/tests/common/testutil"
	commandsmock "reservation-engine/tests/mock/commands"
	queriesmock "reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	actor        user.Actor
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.actor = user.NewActor(uuid.New(), user.RoleViewer)

	h := api.NewCartHandler(s.mockCommands, s.mockQueries, testErrorMapper())
	auth := fakeAuth(&s.actor)

	s.router.GET("/cart", auth, h.Get)
	s.router.DELETE("/cart", auth, h.Clear)
	s.router.POST("/cart/items", auth, h.AddItem)
	s.router.PUT("/cart/items/:item_id", auth, h.UpdateItem)
	s.router.DELETE("/cart/items/:item_id", auth, h.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartView(itemID uuid.UUID, qty int) *queries.CartView {
	return &queries.CartView{
		UserID: s.actor.ID,
		Lines: []*queries.CartLineView{{
			ItemID: itemID, ItemName: "Adult ticket", Kind: "ticket", ItemStatus: "active",
			UnitPriceCents: 2000, Quantity: qty, SubtotalCents: int64(qty) * 2000, Available: true,
			CreatedAt: handlerNow, UpdatedAt: handlerNow,
		}},
		TotalCents: int64(qty) * 2000,
		Available:  true,
	}
}

func (s *CartHandlerTestSuite) TestAddItem() {
	itemID := uuid.New()
	reqBody := map[string]any{"item_id": itemID, "quantity": 2}

	s.Run("success: responds with the merged cart", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), s.actor.ID, itemID, 2).Return(nil, nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor.ID).Return(s.cartView(itemID, 5), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Lines, 1)
		s.Equal(5, body.Lines[0].Quantity)
		s.Equal(int64(10000), body.TotalCents)
		s.True(body.Available)
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing item_id", mutate: testutil.Field("item_id", nil)},
		{name: "missing quantity", mutate: testutil.Field("quantity", nil)},
		{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
		{name: "non-numeric quantity", mutate: testutil.Field("quantity", "two")},
	}
	for _, tc := range validation {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 409 when the quantity exceeds stock", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), s.actor.ID, itemID, 2).
			Return(nil, &inventory.InsufficientStockError{ItemID: itemID, Requested: 2, Available: 1})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
		s.Contains(rec.Body.String(), `"requested":2`)
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), s.actor.ID, itemID, 2).Return(nil, inventory.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CartHandlerTestSuite) TestUpdateAndRemove() {
	itemID := uuid.New()

	s.Run("update: 404 for a line not in the cart", func() {
		s.mockCommands.EXPECT().UpdateCartLine(gomock.Any(), s.actor.ID, itemID, 3).Return(nil, cart.ErrLineNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/"+itemID.String(),
			map[string]any{"quantity": 3}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("remove: returns the remaining cart", func() {
		s.mockCommands.EXPECT().RemoveFromCart(gomock.Any(), s.actor.ID, itemID).Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.actor.ID).Return(&queries.CartView{UserID: s.actor.ID, Available: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+itemID.String(), nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Lines)
	})

	s.Run("clear: 204", func() {
		s.mockCommands.EXPECT().ClearCart(gomock.Any(), s.actor.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}

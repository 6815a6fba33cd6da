package api

import (
	"context"
	"net/http"

	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/domain/user"
	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	checkout  commands.CheckoutCommands
	lifecycle commands.OrderLifecycleCommands
	q         queries.OrderQueries
	errors    *ErrorMapper
}

func NewOrderHandler(
	checkout commands.CheckoutCommands,
	lifecycle commands.OrderLifecycleCommands,
	q queries.OrderQueries,
	errors *ErrorMapper,
) *OrderHandler {
	return &OrderHandler{checkout: checkout, lifecycle: lifecycle, q: q, errors: errors}
}

// @Summary Checkout cart
// @Description Reserves stock for every cart line in one transaction and creates a pending order. Either all lines are reserved or none.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; a retry with the same key returns the first order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "insufficient stock, detail.item_id names the line"
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	o, err := h.checkout.Checkout(c.Request.Context(), actor.ID, key)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondOrder(c, http.StatusCreated, actor, o.ID())
}

// @Summary Buy now
// @Description Places a single-line order without touching the cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; a retry with the same key returns the first order"
// @Param request body reqdto.BuyNowRequest true "Buy now request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) BuyNow(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err, "Invalid request")
		return
	}
	o, err := h.checkout.BuyNow(c.Request.Context(), actor.ID, req.ItemID, req.Quantity, key)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondOrder(c, http.StatusCreated, actor, o.ID())
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromOrderList(items)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse("orders", resp, next))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondOrder(c, http.StatusOK, actor, id)
}

// @Summary Pay order
// @Description Marks a pending order as paid. Owner only.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "detail.status is the current status"
// @Router /api/orders/{id}/pay [post]
func (h *OrderHandler) Pay(c *gin.Context) {
	h.transition(c, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*order.Order, error) {
		return h.lifecycle.PayOrder(ctx, actor, id)
	})
}

// @Summary Cancel order
// @Description Cancels a pending order and returns its reserved stock. Staff may cancel any order.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "detail.status is the current status"
// @Failure 503 {object} httperr.Response
// @Router /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*order.Order, error) {
		return h.lifecycle.CancelOrder(ctx, actor, id)
	})
}

// @Summary Complete order
// @Description Admin only. Moves a paid order to completed.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	h.transition(c, func(ctx context.Context, _ user.Actor, id uuid.UUID) (*order.Order, error) {
		return h.lifecycle.CompleteOrder(ctx, id)
	})
}

func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, actor user.Actor, id uuid.UUID) (*order.Order, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := apply(c.Request.Context(), actor, id); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondOrder(c, http.StatusOK, actor, id)
}

func (h *OrderHandler) respondOrder(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromOrderView(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}

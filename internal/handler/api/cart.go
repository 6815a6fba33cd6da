package api

import (
	"net/http"

	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds   commands.CartCommands
	q      queries.CartQueries
	errors *ErrorMapper
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries, errors *ErrorMapper) *CartHandler {
	return &CartHandler{cmds: cmds, q: q, errors: errors}
}

// @Summary Get cart
// @Description Current cart lines with live prices and a soft availability flag per line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.respondCart(c, http.StatusOK, actor.ID)
}

// @Summary Add item to cart
// @Description Adds quantity to the line for the item, creating it when absent. Stock is not reserved.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Add to cart request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.AddToCart(c.Request.Context(), actor.ID, req.ItemID, req.Quantity); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, actor.ID)
}

// @Summary Update cart line
// @Description Replaces the quantity of an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "Item ID"
// @Param request body reqdto.UpdateCartLineRequest true "Update cart line request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var req reqdto.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.UpdateCartLine(c.Request.Context(), actor.ID, itemID, req.Quantity); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, actor.ID)
}

// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveFromCart(c.Request.Context(), actor.ID, itemID); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, actor.ID)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.ClearCart(c.Request.Context(), actor.ID); err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCart(c *gin.Context, status int, userID uuid.UUID) {
	view, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromCartView(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}

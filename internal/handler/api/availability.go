package api

import (
	"net/http"

	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves display-only numbers that may lag the ledger by the cache TTL.
type AvailabilityHandler struct {
	q      queries.AvailabilityQueries
	errors *ErrorMapper
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, errors *ErrorMapper) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, errors: errors}
}

// @Summary Item availability
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemAvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id}/availability [get]
func (h *AvailabilityHandler) Item(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Item(c.Request.Context(), id)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromItemAvailability(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Activity availability
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 200 {object} resdto.ActivityAvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/activities/{id}/availability [get]
func (h *AvailabilityHandler) Activity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Activity(c.Request.Context(), id)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromActivityAvailability(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

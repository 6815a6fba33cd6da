package api

import (
	"context"
	"net/http"

	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/user"
	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	q      queries.BookingQueries
	errors *ErrorMapper
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, errors *ErrorMapper) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, errors: errors}
}

// @Summary Book a room
// @Description Reserves rooms of a room item for a stay and creates a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; a retry with the same key returns the first booking"
// @Param request body reqdto.BookRoomRequest true "Booking request, dates as YYYY-MM-DD"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.errors.BadRequest(c, err, "Invalid stay dates")
		return
	}
	b, err := h.cmds.BookRoom(c.Request.Context(), actor.ID, cmd, key)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respondBooking(c, http.StatusCreated, actor, b.ID())
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
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
	resp, err := resdto.FromBookingList(items)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse("bookings", resp, next))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondBooking(c, http.StatusOK, actor, id)
}

// @Summary Confirm booking
// @Description Operator or admin. Moves a pending booking to confirmed.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(ctx context.Context, _ user.Actor, id uuid.UUID) (*booking.Booking, error) {
		return h.cmds.ConfirmBooking(ctx, id)
	})
}

// @Summary Cancel booking
// @Description Cancels a pending or confirmed booking and returns its rooms
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "detail.status is the current status"
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
		return h.cmds.CancelBooking(ctx, actor, id)
	})
}

// @Summary Complete booking
// @Description Admin only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(ctx context.Context, _ user.Actor, id uuid.UUID) (*booking.Booking, error) {
		return h.cmds.CompleteBooking(ctx, id)
	})
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error)) {
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
	h.respondBooking(c, http.StatusOK, actor, id)
}

func (h *BookingHandler) respondBooking(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}

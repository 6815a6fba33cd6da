package api

import (
	"net/http"

	"reservation-engine/internal/domain/user"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParticipationHandler struct {
	cmds   commands.ParticipationCommands
	q      queries.ParticipationQueries
	errors *ErrorMapper
}

func NewParticipationHandler(cmds commands.ParticipationCommands, q queries.ParticipationQueries, errors *ErrorMapper) *ParticipationHandler {
	return &ParticipationHandler{cmds: cmds, q: q, errors: errors}
}

// @Summary Join activity
// @Description Registers the caller while the activity has a free slot
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 201 {object} resdto.ParticipationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "full or already registered"
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/activities/{id}/join [post]
func (h *ParticipationHandler) Join(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.cmds.JoinActivity(c.Request.Context(), actor.ID, activityID)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, actor, p.ID())
}

// @Summary List my participations
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ParticipationResponse
// @Router /api/participations [get]
func (h *ParticipationHandler) List(c *gin.Context) {
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
	resp, err := resdto.FromParticipationList(items)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse("participations", resp, next))
}

// @Summary Get participation
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participation ID"
// @Success 200 {object} resdto.ParticipationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/participations/{id} [get]
func (h *ParticipationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Cancel participation
// @Description Frees the slot. Cancelling twice reports the current status.
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participation ID"
// @Success 200 {object} resdto.ParticipationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/participations/{id}/cancel [post]
func (h *ParticipationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.cmds.CancelParticipation(c.Request.Context(), actor, id); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Complete participation
// @Description Admin only
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participation ID"
// @Success 200 {object} resdto.ParticipationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/participations/{id}/complete [post]
func (h *ParticipationHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.cmds.CompleteParticipation(c.Request.Context(), id); err != nil {
		h.errors.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

func (h *ParticipationHandler) respond(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	resp, err := resdto.FromParticipationView(view)
	if err != nil {
		h.errors.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}

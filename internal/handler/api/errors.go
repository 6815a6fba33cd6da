package api

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/handler/middleware"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorMapper turns use-case errors into the public error envelope.
type ErrorMapper struct {
	retryAfter time.Duration
}

func NewErrorMapper(cfg config.ReservationConfig) *ErrorMapper {
	return &ErrorMapper{retryAfter: cfg.RetryAfter}
}

func (m *ErrorMapper) Abort(c *gin.Context, err error) {
	var stock *inventory.InsufficientStockError
	var full *activity.FullError
	var state *errs.StateError

	switch {
	case errs.As(err, &stock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", gin.H{
			"item_id":   stock.ItemID,
			"requested": stock.Requested,
			"available": stock.Available,
		})
	case errs.As(err, &full):
		httperr.AbortWithError(c, http.StatusConflict, err, "Activity is full", gin.H{
			"item_id":  full.ActivityID,
			"capacity": full.Capacity,
		})
	case errs.Is(err, errs.ErrAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already registered", gin.H{"status": "registered"})
	case errs.IsAny(err, errs.ErrAlreadyCancelled, errs.ErrAlreadyPaid, errs.ErrInvalidStateTransition):
		var detail any
		if errs.As(err, &state) {
			detail = gin.H{"status": state.Current}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, conflictMessage(err), detail)
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Not available", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
	case errs.Is(err, errs.ErrBusy):
		c.Header("Retry-After", strconv.Itoa(retrySeconds(m.retryAfter)))
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service busy, retry later", nil)
	default:
		slog.Error("unhandled error",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// BadRequest is for input rejected before any use case ran.
func (m *ErrorMapper) BadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func conflictMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrAlreadyCancelled):
		return "Already cancelled"
	case errs.Is(err, errs.ErrAlreadyPaid):
		return "Already paid"
	default:
		return "Invalid state transition"
	}
}

func retrySeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}

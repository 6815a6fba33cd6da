//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/cart"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/handler/api"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func TestErrorMapper_Abort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	itemID := uuid.New()
	activityID := uuid.New()

	testCases := []struct {
		name         string
		err          error
		expectCode   int
		expectMsg    string
		expectDetail map[string]any
	}{
		{
			name:       "insufficient stock names the line",
			err:        errs.Wrap(&inventory.InsufficientStockError{ItemID: itemID, Requested: 3, Available: 1}, "checkout"),
			expectCode: http.StatusConflict,
			expectMsg:  "Insufficient stock",
			expectDetail: map[string]any{
				"item_id":   itemID.String(),
				"requested": float64(3),
				"available": float64(1),
			},
		},
		{
			name:       "full activity",
			err:        &activity.FullError{ActivityID: activityID, Capacity: 12},
			expectCode: http.StatusConflict,
			expectMsg:  "Activity is full",
			expectDetail: map[string]any{
				"item_id":  activityID.String(),
				"capacity": float64(12),
			},
		},
		{
			name:         "already registered",
			err:          activity.ErrAlreadyRegistered,
			expectCode:   http.StatusConflict,
			expectMsg:    "Already registered",
			expectDetail: map[string]any{"status": "registered"},
		},
		{
			name:         "state conflict reports the current status",
			err:          errs.NewStateError("order", "cancelled", order.ErrAlreadyCancelled),
			expectCode:   http.StatusConflict,
			expectMsg:    "Already cancelled",
			expectDetail: map[string]any{"status": "cancelled"},
		},
		{
			name:         "paid order",
			err:          errs.NewStateError("order", "paid", order.ErrAlreadyPaid),
			expectCode:   http.StatusConflict,
			expectMsg:    "Already paid",
			expectDetail: map[string]any{"status": "paid"},
		},
		{
			name:       "not found",
			err:        order.ErrOrderNotFound,
			expectCode: http.StatusNotFound,
			expectMsg:  "Not found",
		},
		{
			name:       "inactive item",
			err:        inventory.ErrItemUnavailable,
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "Not available",
		},
		{
			name:       "domain validation",
			err:        cart.ErrEmptyCart,
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request",
		},
		{
			name:       "unexpected failure",
			err:        errors.New("boom"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			mapper := api.NewErrorMapper(config.ReservationConfig{RetryAfter: time.Second})
			router.GET("/fail", func(c *gin.Context) { mapper.Abort(c, tc.err) })

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/fail", nil, "")

			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
			if tc.expectDetail != nil {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.expectDetail, body.Detail)
			}
		})
	}
}

func TestErrorMapper_BusySetsRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		retryAfter time.Duration
		expect     string
	}{
		{name: "whole seconds", retryAfter: 2 * time.Second, expect: "2"},
		{name: "rounded up", retryAfter: 1500 * time.Millisecond, expect: "2"},
		{name: "never below one", retryAfter: 0, expect: "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			mapper := api.NewErrorMapper(config.ReservationConfig{RetryAfter: tc.retryAfter})
			busy := infra.WrapRepoErr("failed to lock item", errors.New("lock timeout"), infra.KindBusy)
			router.GET("/fail", func(c *gin.Context) { mapper.Abort(c, busy) })

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/fail", nil, "")

			httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Service busy")
			httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": tc.expect})
		})
	}
}

//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil is ok", err: nil, want: "ok"},
		{name: "insufficient stock", err: &inventory.InsufficientStockError{ItemID: uuid.New(), Requested: 2, Available: 1}, want: "insufficient_stock"},
		{name: "not found", err: inventory.ErrItemNotFound, want: "not_found"},
		{name: "already cancelled", err: order.ErrAlreadyCancelled, want: "duplicate"},
		{name: "busy", err: errs.Mark(errors.New("lock timeout"), errs.ErrBusy), want: "busy"},
		{name: "unknown error", err: errors.New("boom"), want: "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, metrics.Outcome(tc.err))
		})
	}
}

func TestMetrics_RecordsAndExposes(t *testing.T) {
	m := metrics.New()

	m.ObserveOperation("checkout", nil)
	m.ObserveOperation("checkout", inventory.ErrItemUnavailable)
	m.ObserveTx(20*time.Millisecond, nil)
	m.CacheLookup("hit")
	m.OutboxDelivery("published", 3)

	count, err := testutil.GatherAndCount(m.Registry(), "reservation_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reservation_outbox_deliveries_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("checkout", nil)
		m.ObserveTx(time.Second, nil)
		m.CacheLookup("miss")
		m.OutboxDelivery("failed", 1)
		m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
	})
}

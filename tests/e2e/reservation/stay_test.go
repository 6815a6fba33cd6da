//go:build e2e

package reservation_test

import (
	"net/http"
	"sync/atomic"
	"testing"

	"reservation-engine/internal/domain/user"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/tests/common/dbtest"
	"reservation-engine/tests/common/httptest"
	"reservation-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type StayE2ESuite struct {
	e2e.SharedSuite
}

func TestStayE2ESuite(t *testing.T) {
	suite.Run(t, new(StayE2ESuite))
}

func bookingBody(itemID uuid.UUID, rooms int) map[string]any {
	return map[string]any{
		"item_id":   itemID,
		"rooms":     rooms,
		"check_in":  "2026-11-02",
		"check_out": "2026-11-05",
		"guests":    2,
	}
}

func (s *StayE2ESuite) join(token string, activityID uuid.UUID) resdto.ParticipationResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/activities/"+activityID.String()+"/join", nil, token)
	var body resdto.ParticipationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

// ================================================================================
// Bookings
// ================================================================================

func (s *StayE2ESuite) TestBookingLifecycle() {
	s.Run("booking holds rooms for the stay and cancel returns them", func() {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		roomID := dbtest.CreateRoom(s.T(), s.DB, "Twin room", 12000, 4)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", bookingBody(roomID, 2), token)
		var booked resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.Equal("pending", booked.Status)
		s.Equal(3, booked.Nights)
		s.Equal(int64(72000), booked.TotalCents)
		s.Equal(2, dbtest.ItemStock(s.T(), s.DB, roomID))

		path := "/api/bookings/" + booked.ID.String() + "/cancel"
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(4, dbtest.ItemStock(s.T(), s.DB, roomID))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already cancelled")
		s.Equal(4, dbtest.ItemStock(s.T(), s.DB, roomID))
	})

	s.Run("confirm requires operator", func() {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		_, operator := s.Tokens.NewUser(s.T(), user.RoleOperator)
		roomID := dbtest.CreateRoom(s.T(), s.DB, "Double room", 15000, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", bookingBody(roomID, 1), token)
		var booked resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		path := "/api/bookings/" + booked.ID.String() + "/confirm"

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, operator)
		var confirmed resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmed)
		s.Equal("confirmed", confirmed.Status)
		s.Equal(1, dbtest.CountOutboxEvents(s.T(), s.DB, booked.ID, "booking.confirmed"))
	})

	s.Run("a retried booking returns the first booking", func() {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		roomID := dbtest.CreateRoom(s.T(), s.DB, "Twin room", 12000, 4)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", bookingBody(roomID, 2), token, headers)
		var first resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", bookingBody(roomID, 2), token, headers)
		var retried resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &retried)

		s.Equal(first.ID, retried.ID)
		s.Equal(2, dbtest.ItemStock(s.T(), s.DB, roomID))
		s.Equal(1, dbtest.CountOutboxEvents(s.T(), s.DB, first.ID, "booking.created"))
	})

	s.Run("error: tickets cannot be booked as rooms", func() {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		ticketID := dbtest.CreateTicket(s.T(), s.DB, "Adult ticket", 2000, 10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", bookingBody(ticketID, 1), token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal(10, dbtest.ItemStock(s.T(), s.DB, ticketID))
	})
}

func (s *StayE2ESuite) TestConcurrentBookingsNeverOverbook() {
	const (
		rooms  = 3
		guests = 12
	)
	roomID := dbtest.CreateRoom(s.T(), s.DB, "Suite", 30000, rooms)

	var created atomic.Int32
	var g errgroup.Group
	for range guests {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		g.Go(func() error {
			if serve(s.Router, http.MethodPost, "/api/bookings", bookingBody(roomID, 1), token) == http.StatusCreated {
				created.Add(1)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(rooms), created.Load())
	s.Zero(dbtest.ItemStock(s.T(), s.DB, roomID))
}

// ================================================================================
// Participations
// ================================================================================

func (s *StayE2ESuite) TestConcurrentJoinsRespectCapacity() {
	const (
		capacity = 4
		joiners  = 15
	)
	activityID := dbtest.CreateActivity(s.T(), s.DB, "Kayak tour", dbtest.Limit(capacity))

	var joined, full atomic.Int32
	var g errgroup.Group
	for range joiners {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		g.Go(func() error {
			switch serve(s.Router, http.MethodPost, "/api/activities/"+activityID.String()+"/join", nil, token) {
			case http.StatusCreated:
				joined.Add(1)
			case http.StatusConflict:
				full.Add(1)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(capacity), joined.Load())
	s.Equal(int32(joiners-capacity), full.Load())
	s.Equal(capacity, dbtest.LiveParticipations(s.T(), s.DB, activityID))
}

func (s *StayE2ESuite) TestParticipation() {
	s.Run("double join is rejected and cancel frees the seat", func() {
		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		_, late := s.Tokens.NewUser(s.T(), user.RoleViewer)
		activityID := dbtest.CreateActivity(s.T(), s.DB, "Sunrise hike", dbtest.Limit(1))

		p := s.join(token, activityID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/activities/"+activityID.String()+"/join", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already registered")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/activities/"+activityID.String()+"/join", nil, late)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Activity is full")
		s.Contains(rec.Body.String(), `"capacity":1`)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/participations/"+p.ID.String()+"/cancel", nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.join(late, activityID)
		s.Equal(1, dbtest.LiveParticipations(s.T(), s.DB, activityID))
	})

	s.Run("unlimited activity accepts everyone", func() {
		activityID := dbtest.CreateActivity(s.T(), s.DB, "Open museum day", nil)
		for range 5 {
			_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
			s.join(token, activityID)
		}

		_, token := s.Tokens.NewUser(s.T(), user.RoleViewer)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/activities/"+activityID.String()+"/availability", nil, token)

		var body resdto.ActivityAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.Registered)
		s.Nil(body.Remaining)
		s.True(body.Available)
	})
}

//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/api/auth/login"
	recurringURL = "/api/bookings/recurring"
)

type bookingSuite struct {
	e2e.SharedSuite

	clientID  uuid.UUID
	serviceID uuid.UUID
	staffID   uuid.UUID
	cookies   []*http.Cookie
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.clientID = dbtest.CreateTestUser(s.T(), s.DB, "client@example.com", "client")
	s.serviceID = dbtest.CreateTestService(s.T(), s.DB, "Deep Tissue Massage", 60)
	s.staffID = dbtest.CreateTestStaff(s.T(), s.DB, "Mia")

	s.cookies = s.login("client@example.com")
}

func (s *bookingSuite) login(email string) []*http.Cookie {
	body := map[string]any{"email": email, "password": "password123"}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	cookie := httptest.ExtractCookie(rec, "access_token")
	s.Require().NotNil(cookie, "login did not set the access token cookie")
	return []*http.Cookie{cookie}
}

// nextMonday returns the next Monday at 10:00 UTC at least a week out, so
// every generated occurrence is safely in the future.
func (s *bookingSuite) nextMonday() time.Time {
	t := time.Now().UTC().AddDate(0, 0, 7)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 10, 0, 0, 0, time.UTC)
}

func (s *bookingSuite) TestRecurringBookingFlow() {
	start := s.nextMonday()

	// Occupy the second occurrence up front; it must be skipped, not fatal.
	occupied := start.AddDate(0, 0, 7)
	dbtest.CreateTestBooking(s.T(), s.DB, s.serviceID, s.staffID, s.clientID, occupied, time.Hour)

	maxOccurrences := 3
	body := map[string]any{
		"service_id":      s.serviceID.String(),
		"staff_id":        s.staffID.String(),
		"frequency":       "weekly",
		"interval":        1,
		"day_of_week":     int(time.Monday),
		"start_date":      start.Format(time.RFC3339),
		"time_zone":       "UTC",
		"max_occurrences": maxOccurrences,
	}

	rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, recurringURL, body, s.cookies)

	var response resdto.CreateRecurringBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	s.Require().Len(response.BookingIDs, 2)
	s.Require().Len(response.SkippedDates, 1)
	s.Equal(occupied.Unix(), response.SkippedDates[0].Unix())

	// Pattern row carries the weak references to its generated bookings.
	var generatedCount int
	err := s.DB.QueryRow(context.Background(),
		"SELECT cardinality(generated_booking_ids) FROM recurrence_patterns WHERE id = $1",
		response.PatternID).Scan(&generatedCount)
	s.Require().NoError(err)
	s.Equal(2, generatedCount)

	s.Run("scheduled slots are no longer available", func() {
		url := fmt.Sprintf("/api/availability?staff_id=%s&from=%s&to=%s",
			s.staffID,
			response.ScheduledDates[0].Format(time.RFC3339),
			response.ScheduledDates[0].Add(time.Hour).Format(time.RFC3339))
		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, url, nil, s.cookies)

		var availability resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &availability)
		s.False(availability.Available)
	})

	s.Run("an identical series has nothing left to schedule", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, recurringURL, body, s.cookies)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("cancelling releases the slot", func() {
		cancelURL := fmt.Sprintf("/api/bookings/%s/cancel", response.BookingIDs[0])
		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, cancelURL, nil, s.cookies)
		s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		url := fmt.Sprintf("/api/availability?staff_id=%s&from=%s&to=%s",
			s.staffID,
			response.ScheduledDates[0].Format(time.RFC3339),
			response.ScheduledDates[0].Add(time.Hour).Format(time.RFC3339))
		availRec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, url, nil, s.cookies)

		var availability resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), availRec, http.StatusOK, &availability)
		s.True(availability.Available)
	})

	s.Run("listing shows the client's bookings", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, s.cookies)

		var items []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
		// Two generated plus the seeded conflicting booking.
		s.Len(items, 3)
	})
}

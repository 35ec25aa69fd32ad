//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Stand-in for the auth middleware
	authed := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleClient)
	}
	group := s.router.Group("/bookings", authed)
	group.POST("/recurring", s.handler.CreateRecurringBooking)
	group.GET("", s.handler.ListBookings)
	group.GET("/:id", s.handler.GetBooking)
	group.PATCH("/:id/reschedule", s.handler.RescheduleBooking)
	group.POST("/:id/cancel", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) recurringBody() map[string]any {
	return map[string]any{
		"service_id":  uuid.New().String(),
		"staff_id":    uuid.New().String(),
		"frequency":   "weekly",
		"interval":    1,
		"day_of_week": 1,
		"start_date":  "2026-01-05T10:00:00Z",
		"time_zone":   "UTC",
	}
}

func (s *BookingHandlerTestSuite) TestCreateRecurringBooking() {
	url := "/bookings/recurring"

	s.Run("success: returns 201 with scheduled and skipped dates", func() {
		result := &commands.CreateRecurringBookingResult{
			PatternID:      uuid.New(),
			BookingIDs:     []uuid.UUID{uuid.New(), uuid.New()},
			ScheduledDates: []time.Time{time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)},
			SkippedDates:   []time.Time{time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)},
		}
		s.mockCommands.EXPECT().CreateRecurringBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.recurringBody(), "")

		var response resdto.CreateRecurringBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.PatternID, response.PatternID)
		s.Len(response.BookingIDs, 2)
		s.Len(response.SkippedDates, 1)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectCode    int
		}{
			{"unknown service", errs.ErrServiceNotFound, http.StatusNotFound},
			{"unknown staff", errs.ErrStaffNotFound, http.StatusNotFound},
			{"invalid pattern", errs.ErrInvalidPattern, http.StatusBadRequest},
			{"invalid time slot", errs.ErrInvalidTimeSlot, http.StatusBadRequest},
			{"nothing to schedule", errs.ErrNothingToSchedule, http.StatusUnprocessableEntity},
			{"concurrent conflict", errs.ErrBookingConflict, http.StatusConflict},
			{"unexpected failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRecurringBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.recurringBody(), "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 on malformed body", func() {
		body := s.recurringBody()
		delete(body, "frequency")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestRescheduleBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s/reschedule", bookingID)
	body := map[string]any{"new_start": "2026-01-06T14:00:00Z"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			RescheduleBooking(gomock.Any(), commands.Actor{ID: s.actorID, Role: user.RoleClient}, bookingID, time.Date(2026, 1, 6, 14, 0, 0, 0, time.UTC)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the slot is taken", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(errs.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: 403 for another client's booking", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(errs.ErrBookingAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid/reschedule", body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s/cancel", bookingID)

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), commands.Actor{ID: s.actorID, Role: user.RoleClient}, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := &queries.BookingView{
		ID:          uuid.New(),
		ServiceName: "Deep Tissue Massage",
		StaffName:   "Mia",
		StartsAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC),
		Status:      "confirmed",
	}

	s.Run("success: returns the booking view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleClient, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.ServiceName, response.ServiceName)
	})

	s.Run("error: 404 when hidden or missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleClient, view.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: lists the caller's bookings by default", func() {
		items := []*queries.BookingListItem{{ID: uuid.New(), ServiceName: "Haircut", Status: "confirmed"}}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.actorID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: staff calendar window via query params", func() {
		staffID := uuid.New()
		from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListByStaffBetween(gomock.Any(), staffID, from, to).
			Return(nil, nil).Times(1)

		url := fmt.Sprintf("/bookings?staff_id=%s&from=%s&to=%s",
			staffID, from.Format(time.RFC3339), to.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when the window is missing", func() {
		url := "/bookings?staff_id=" + uuid.New().String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

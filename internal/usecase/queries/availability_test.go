//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCalendar *queriesmock.MockStaffCalendarReader
	queries      queries.AvailabilityQueries

	staffID uuid.UUID
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCalendar = queriesmock.NewMockStaffCalendarReader(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockCalendar)
	s.staffID = uuid.New()
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) bookingAt(start time.Time, d time.Duration) *booking.Booking {
	slot, err := booking.NewTimeSlot(start, start.Add(d))
	s.Require().NoError(err)
	return booking.NewBooking(uuid.New(), s.staffID, uuid.New(), nil, slot, booking.NewNote(""))
}

func (s *AvailabilityQueriesTestSuite) TestCheckAvailability() {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	s.Run("success: free calendar is available", func() {
		s.mockCalendar.EXPECT().StaffCalendar(gomock.Any(), s.staffID, start, end).Return(nil, nil)

		available, err := s.queries.CheckAvailability(context.Background(), s.staffID, start, end)

		s.Require().NoError(err)
		s.True(available)
	})

	s.Run("success: overlapping booking blocks the slot", func() {
		existing := s.bookingAt(start.Add(30*time.Minute), time.Hour)
		s.mockCalendar.EXPECT().StaffCalendar(gomock.Any(), s.staffID, start, end).
			Return([]*booking.Booking{existing}, nil)

		available, err := s.queries.CheckAvailability(context.Background(), s.staffID, start, end)

		s.Require().NoError(err)
		s.False(available)
	})

	s.Run("success: back-to-back booking does not block", func() {
		existing := s.bookingAt(end, time.Hour)
		s.mockCalendar.EXPECT().StaffCalendar(gomock.Any(), s.staffID, start, end).
			Return([]*booking.Booking{existing}, nil)

		available, err := s.queries.CheckAvailability(context.Background(), s.staffID, start, end)

		s.Require().NoError(err)
		s.True(available)
	})

	s.Run("error: inverted window", func() {
		_, err := s.queries.CheckAvailability(context.Background(), s.staffID, end, start)

		s.Require().ErrorIs(err, errs.ErrInvalidTimeSlot)
	})
}

func (s *AvailabilityQueriesTestSuite) TestPreviewOccurrences() {
	monday := 1

	s.Run("success: expands a weekly pattern without persisting", func() {
		maxOccurrences := 3
		in := queries.PreviewPatternInput{
			Frequency:      "weekly",
			Interval:       1,
			DayOfWeek:      &monday,
			StartDate:      time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			TimeZone:       "UTC",
			DurationMin:    45,
			MaxOccurrences: &maxOccurrences,
		}

		previews, err := s.queries.PreviewOccurrences(context.Background(), in, 52)

		s.Require().NoError(err)
		s.Require().Len(previews, 3)
		s.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), previews[0].StartsAt)
		s.Equal(time.Date(2026, 1, 5, 10, 45, 0, 0, time.UTC), previews[0].EndsAt)
		s.Equal(time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC), previews[2].StartsAt)
	})

	s.Run("success: preview cap bounds an open-ended pattern", func() {
		in := queries.PreviewPatternInput{
			Frequency:   "weekly",
			Interval:    1,
			DayOfWeek:   &monday,
			StartDate:   time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			TimeZone:    "UTC",
			DurationMin: 30,
		}

		previews, err := s.queries.PreviewOccurrences(context.Background(), in, 5)

		s.Require().NoError(err)
		s.Len(previews, 5)
	})

	s.Run("error: unknown frequency", func() {
		in := queries.PreviewPatternInput{
			Frequency:   "daily",
			DayOfWeek:   &monday,
			StartDate:   time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			DurationMin: 30,
		}

		_, err := s.queries.PreviewOccurrences(context.Background(), in, 52)

		s.Require().ErrorIs(err, errs.ErrInvalidPattern)
	})
}

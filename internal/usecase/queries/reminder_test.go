//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *queriesmock.MockReminderViewRepo
	queries  queries.ReminderQueries
}

func (s *ReminderQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockReminderViewRepo(s.mockCtrl)
	s.queries = queries.NewReminderQueries(s.mockRepo)
}

func (s *ReminderQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReminderQueriesTestSuite))
}

func (s *ReminderQueriesTestSuite) TestDueReminders() {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tolerance := 15 * time.Minute

	s.Run("success: queries both lookahead windows and tags the lead", func() {
		dayTarget := now.Add(24 * time.Hour)
		hourTarget := now.Add(time.Hour)

		dayView := &queries.ReminderView{BookingID: uuid.New(), StartsAt: dayTarget}
		hourView := &queries.ReminderView{BookingID: uuid.New(), StartsAt: hourTarget}

		s.mockRepo.EXPECT().
			FindConfirmedStartingBetween(gomock.Any(), dayTarget.Add(-tolerance), dayTarget.Add(tolerance)).
			Return([]*queries.ReminderView{dayView}, nil)
		s.mockRepo.EXPECT().
			FindConfirmedStartingBetween(gomock.Any(), hourTarget.Add(-tolerance), hourTarget.Add(tolerance)).
			Return([]*queries.ReminderView{hourView}, nil)

		due, err := s.queries.DueReminders(context.Background(), now, tolerance)

		s.Require().NoError(err)
		s.Require().Len(due, 2)
		s.Equal(queries.LeadDayBefore, due[0].Lead)
		s.Equal(queries.LeadHourBefore, due[1].Lead)
	})

	s.Run("success: empty windows yield no reminders", func() {
		s.mockRepo.EXPECT().
			FindConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(2)

		due, err := s.queries.DueReminders(context.Background(), now, tolerance)

		s.Require().NoError(err)
		s.Empty(due)
	})

	s.Run("error: repository failure surfaces", func() {
		s.mockRepo.EXPECT().
			FindConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed)

		_, err := s.queries.DueReminders(context.Background(), now, tolerance)

		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

package queries

import (
	"context"
	"time"
)

// Reminder lookahead offsets. A booking is due for a reminder when its start
// falls within offset +/- tolerance of now.
const (
	LeadDayBefore  = "24h"
	LeadHourBefore = "1h"

	dayBeforeOffset  = 24 * time.Hour
	hourBeforeOffset = time.Hour
)

// ReminderViewRepo finds confirmed bookings starting inside a window.
type ReminderViewRepo interface {
	FindConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*ReminderView, error)
}

type ReminderQueries interface {
	// DueReminders returns bookings whose reminder is due at now, tagged
	// with the lead that matched. A booking sitting in both windows (only
	// possible with an oversized tolerance) is reported once per window.
	DueReminders(ctx context.Context, now time.Time, tolerance time.Duration) ([]*ReminderView, error)
}

type reminderQueriesImpl struct {
	repo ReminderViewRepo
}

func NewReminderQueries(repo ReminderViewRepo) ReminderQueries {
	return &reminderQueriesImpl{repo: repo}
}

func (q *reminderQueriesImpl) DueReminders(ctx context.Context, now time.Time, tolerance time.Duration) ([]*ReminderView, error) {
	var due []*ReminderView

	for _, lead := range []struct {
		name   string
		offset time.Duration
	}{
		{LeadDayBefore, dayBeforeOffset},
		{LeadHourBefore, hourBeforeOffset},
	} {
		target := now.Add(lead.offset)
		views, err := q.repo.FindConfirmedStartingBetween(ctx, target.Add(-tolerance), target.Add(tolerance))
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			v.Lead = lead.name
			due = append(due, v)
		}
	}
	return due, nil
}

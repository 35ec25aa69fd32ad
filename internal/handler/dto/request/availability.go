package request

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type PreviewOccurrencesRequest struct {
	Frequency      string     `json:"frequency" binding:"required"`
	Interval       int        `json:"interval,omitempty"`
	DayOfWeek      *int       `json:"day_of_week,omitempty"`
	DayOfMonth     *int       `json:"day_of_month,omitempty"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	TimeZone       string     `json:"time_zone" binding:"required"`
	DurationMin    int        `json:"duration_min" binding:"required,min=1"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxOccurrences *int       `json:"max_occurrences,omitempty"`
}

func (r PreviewOccurrencesRequest) ToInput() queries.PreviewPatternInput {
	return queries.PreviewPatternInput{
		Frequency:      r.Frequency,
		Interval:       r.Interval,
		DayOfWeek:      r.DayOfWeek,
		DayOfMonth:     r.DayOfMonth,
		StartDate:      r.StartDate,
		TimeZone:       r.TimeZone,
		DurationMin:    r.DurationMin,
		EndDate:        r.EndDate,
		MaxOccurrences: r.MaxOccurrences,
	}
}

package request

import (
	"strings"
	"time"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRecurringBookingRequest struct {
	ServiceID      uuid.UUID  `json:"service_id" binding:"required"`
	StaffID        uuid.UUID  `json:"staff_id" binding:"required"`
	Frequency      string     `json:"frequency" binding:"required"`
	Interval       int        `json:"interval,omitempty"`
	DayOfWeek      *int       `json:"day_of_week,omitempty"`
	DayOfMonth     *int       `json:"day_of_month,omitempty"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	TimeZone       string     `json:"time_zone" binding:"required"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxOccurrences *int       `json:"max_occurrences,omitempty"`
	Note           *string    `json:"note,omitempty"`
}

func (r CreateRecurringBookingRequest) ToInput() commands.CreateRecurringBookingInput {
	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.CreateRecurringBookingInput{
		ServiceID:      r.ServiceID,
		StaffID:        r.StaffID,
		Frequency:      r.Frequency,
		Interval:       r.Interval,
		DayOfWeek:      r.DayOfWeek,
		DayOfMonth:     r.DayOfMonth,
		StartDate:      r.StartDate,
		TimeZone:       r.TimeZone,
		EndDate:        r.EndDate,
		MaxOccurrences: r.MaxOccurrences,
		Note:           note,
	}
}

type RescheduleBookingRequest struct {
	NewStart time.Time `json:"new_start" binding:"required"`
}

package response

import (
	"time"

	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	ServiceID   uuid.UUID  `json:"serviceId"`
	ServiceName string     `json:"serviceName"`
	StaffID     uuid.UUID  `json:"staffId"`
	StaffName   string     `json:"staffName"`
	ClientID    uuid.UUID  `json:"clientId"`
	ClientEmail string     `json:"clientEmail"`
	PatternID   *uuid.UUID `json:"patternId,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	Status      string     `json:"status"`
	Note        *string    `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"serviceName"`
	StaffName   string    `json:"staffName"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status"`
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

type CreateRecurringBookingResponse struct {
	PatternID      uuid.UUID   `json:"patternId"`
	BookingIDs     []uuid.UUID `json:"bookingIds"`
	ScheduledDates []time.Time `json:"scheduledDates"`
	SkippedDates   []time.Time `json:"skippedDates,omitempty"`
}

func FromCreateRecurringBookingResult(result *commands.CreateRecurringBookingResult) *CreateRecurringBookingResponse {
	return &CreateRecurringBookingResponse{
		PatternID:      result.PatternID,
		BookingIDs:     result.BookingIDs,
		ScheduledDates: result.ScheduledDates,
		SkippedDates:   result.SkippedDates,
	}
}

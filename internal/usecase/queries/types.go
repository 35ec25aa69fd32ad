package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID          uuid.UUID  `json:"id"`
	ServiceID   uuid.UUID  `json:"service_id"`
	ServiceName string     `json:"service_name"`
	StaffID     uuid.UUID  `json:"staff_id"`
	StaffName   string     `json:"staff_name"`
	ClientID    uuid.UUID  `json:"client_id"`
	ClientEmail string     `json:"client_email"`
	PatternID   *uuid.UUID `json:"pattern_id,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      time.Time  `json:"ends_at"`
	Status      string     `json:"status"`
	Note        *string    `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BookingListItem is the compact row for booking listings
type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"service_name"`
	StaffName   string    `json:"staff_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
}

// ServiceView represents read-optimized service catalog data
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StaffView represents read-optimized staff catalog data
type StaffView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	TimeZone  string    `json:"time_zone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ReminderView is one due reminder for the notification collaborator.
type ReminderView struct {
	BookingID   uuid.UUID `json:"booking_id"`
	ClientID    uuid.UUID `json:"client_id"`
	ClientEmail string    `json:"client_email"`
	ServiceName string    `json:"service_name"`
	StaffName   string    `json:"staff_name"`
	StartsAt    time.Time `json:"starts_at"`
	// Lead is which lookahead window matched, "24h" or "1h".
	Lead string `json:"lead"`
}

package shared

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Patterns() PatternRepository
	Catalog() CatalogRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the snapshot reads commands use for validation.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	StaffByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// StaffCalendar returns the staff member's bookings whose slots
	// intersect the window, regardless of status; callers filter with the
	// domain conflict rules.
	StaffCalendar(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
	IsActive    bool
}

type StaffSnapshot struct {
	ID       uuid.UUID
	Name     string
	TimeZone string
	IsActive bool
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateSlot(ctx context.Context, id uuid.UUID, slot booking.TimeSlot) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type PatternRepository interface {
	Create(ctx context.Context, p *schedule.Pattern) (uuid.UUID, error)
	AppendGeneratedBooking(ctx context.Context, patternID, bookingID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status schedule.Status) error
}

type CatalogRepository interface {
	CreateService(ctx context.Context, s *catalog.Service) (uuid.UUID, error)
	CreateStaff(ctx context.Context, s *catalog.Staff) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

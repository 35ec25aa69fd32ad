package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff member not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingAccessDenied = errors.New("booking does not belong to the requesting client")
	ErrBookingConflict     = errors.New("booking conflict")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrSlotUnavailable     = errors.New("requested slot is not available")
	ErrNothingToSchedule   = errors.New("pattern produced no schedulable occurrences")

	// Recurrence errors
	ErrInvalidPattern = errors.New("invalid recurrence pattern")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

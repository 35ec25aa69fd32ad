package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownFrequency     = errors.New("unknown recurrence frequency")
	ErrInvalidInterval      = errors.New("recurrence interval must be positive")
	ErrDayOfWeekRequired    = errors.New("day of week is required for weekly and biweekly patterns")
	ErrDayOfWeekNotAllowed  = errors.New("day of week is only valid for weekly and biweekly patterns")
	ErrInvalidDayOfWeek     = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrDayOfMonthRequired   = errors.New("day of month is required for monthly patterns")
	ErrDayOfMonthNotAllowed = errors.New("day of month is only valid for monthly patterns")
	ErrInvalidDayOfMonth    = errors.New("day of month must be between 1 and 31")
	ErrInvalidDuration      = errors.New("occurrence duration must be positive")
	ErrInvalidOccurrenceCap = errors.New("occurrence cap must be positive when set")
	ErrInvalidStatus        = errors.New("invalid pattern status")

	ErrOccurrenceBudgetExhausted = errors.New("pattern occurrence budget exhausted")
)

// PatternSpec carries the caller-supplied fields of a recurrence pattern.
// Interval zero means "use the default of 1".
type PatternSpec struct {
	Frequency      Frequency
	Interval       int
	DayOfWeek      *int
	DayOfMonth     *int
	StartDate      time.Time
	TimeZone       string
	DurationMin    int
	EndDate        *time.Time
	MaxOccurrences *int
}

// Pattern is a recurrence pattern anchored at StartDate. StartDate carries
// the wall-clock time of day for every occurrence and, for weekly and
// biweekly patterns, is expected to already fall on DayOfWeek (a caller
// precondition, not re-validated here).
type Pattern struct {
	id                  uuid.UUID
	frequency           Frequency
	interval            int
	dayOfWeek           *int
	dayOfMonth          *int
	startDate           time.Time
	timeZone            string
	durationMin         int
	endDate             *time.Time
	maxOccurrences      *int
	status              Status
	generatedBookingIDs []uuid.UUID
}

func NewPattern(spec PatternSpec) (*Pattern, error) {
	interval := spec.Interval
	if interval == 0 {
		interval = 1
	}

	p := &Pattern{
		id:             uuid.New(),
		frequency:      spec.Frequency,
		interval:       interval,
		dayOfWeek:      spec.DayOfWeek,
		dayOfMonth:     spec.DayOfMonth,
		startDate:      spec.StartDate,
		timeZone:       spec.TimeZone,
		durationMin:    spec.DurationMin,
		endDate:        spec.EndDate,
		maxOccurrences: spec.MaxOccurrences,
		status:         StatusActive,
	}

	if p.durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if spec.MaxOccurrences != nil && *spec.MaxOccurrences <= 0 {
		return nil, ErrInvalidOccurrenceCap
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructPattern(
	id uuid.UUID,
	frequency Frequency,
	interval int,
	dayOfWeek, dayOfMonth *int,
	startDate time.Time,
	timeZone string,
	durationMin int,
	endDate *time.Time,
	maxOccurrences *int,
	status Status,
	generatedBookingIDs []uuid.UUID,
) *Pattern {
	return &Pattern{
		id:                  id,
		frequency:           frequency,
		interval:            interval,
		dayOfWeek:           dayOfWeek,
		dayOfMonth:          dayOfMonth,
		startDate:           startDate,
		timeZone:            timeZone,
		durationMin:         durationMin,
		endDate:             endDate,
		maxOccurrences:      maxOccurrences,
		status:              status,
		generatedBookingIDs: generatedBookingIDs,
	}
}

// validate checks the structural invariants shared by the resolver and the
// generator: cadence fields must match the frequency and the interval must
// be positive. A naturally exhausted series is not a validation failure.
func (p *Pattern) validate() error {
	if p.interval <= 0 {
		return ErrInvalidInterval
	}

	switch p.frequency {
	case FrequencyWeekly, FrequencyBiweekly:
		if p.dayOfWeek == nil {
			return ErrDayOfWeekRequired
		}
		if *p.dayOfWeek < 0 || *p.dayOfWeek > 6 {
			return ErrInvalidDayOfWeek
		}
		if p.dayOfMonth != nil {
			return ErrDayOfMonthNotAllowed
		}
	case FrequencyMonthly:
		if p.dayOfMonth == nil {
			return ErrDayOfMonthRequired
		}
		if *p.dayOfMonth < 1 || *p.dayOfMonth > 31 {
			return ErrInvalidDayOfMonth
		}
		if p.dayOfWeek != nil {
			return ErrDayOfWeekNotAllowed
		}
	default:
		return ErrUnknownFrequency
	}
	return nil
}

// RecordGeneratedBooking appends a materialized booking to the pattern's
// weak-reference list. It refuses to grow past MaxOccurrences.
func (p *Pattern) RecordGeneratedBooking(bookingID uuid.UUID) error {
	if p.maxOccurrences != nil && len(p.generatedBookingIDs) >= *p.maxOccurrences {
		return ErrOccurrenceBudgetExhausted
	}
	p.generatedBookingIDs = append(p.generatedBookingIDs, bookingID)
	return nil
}

func (p *Pattern) IsActive() bool {
	return p.status == StatusActive
}

func (p *Pattern) ID() uuid.UUID                    { return p.id }
func (p *Pattern) Frequency() Frequency             { return p.frequency }
func (p *Pattern) Interval() int                    { return p.interval }
func (p *Pattern) DayOfWeek() *int                  { return p.dayOfWeek }
func (p *Pattern) DayOfMonth() *int                 { return p.dayOfMonth }
func (p *Pattern) StartDate() time.Time             { return p.startDate }
func (p *Pattern) TimeZone() string                 { return p.timeZone }
func (p *Pattern) DurationMin() int                 { return p.durationMin }
func (p *Pattern) EndDate() *time.Time              { return p.endDate }
func (p *Pattern) MaxOccurrences() *int             { return p.maxOccurrences }
func (p *Pattern) Status() Status                   { return p.status }
func (p *Pattern) GeneratedBookingIDs() []uuid.UUID { return p.generatedBookingIDs }

// Duration is the length of a single occurrence.
func (p *Pattern) Duration() time.Duration {
	return time.Duration(p.durationMin) * time.Minute
}

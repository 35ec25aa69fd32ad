package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidDuration    = errors.New("service duration must be positive")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrServiceUnavailable = errors.New("service is not bookable")
	ErrStaffUnavailable   = errors.New("staff member is not bookable")
)

// Service is a bookable offering: a named session with a default duration
// and price.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	durationMin int
	price       Money
	active      bool
}

func NewService(name, description string, durationMin int, price Money) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		durationMin: durationMin,
		price:       price,
		active:      true,
	}, nil
}

func ReconstructService(id uuid.UUID, name, description string, durationMin int, price Money, active bool) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		durationMin: durationMin,
		price:       price,
		active:      active,
	}
}

func (s *Service) Deactivate() { s.active = false }

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }
func (s *Service) DurationMin() int    { return s.durationMin }
func (s *Service) Price() Money        { return s.price }
func (s *Service) IsActive() bool      { return s.active }

// Staff is a provider whose calendar bookings are checked against.
type Staff struct {
	id       uuid.UUID
	name     string
	title    string
	timeZone string
	active   bool
}

func NewStaff(name, title, timeZone string) (*Staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if timeZone == "" {
		timeZone = "UTC"
	}
	return &Staff{
		id:       uuid.New(),
		name:     name,
		title:    strings.TrimSpace(title),
		timeZone: timeZone,
		active:   true,
	}, nil
}

func ReconstructStaff(id uuid.UUID, name, title, timeZone string, active bool) *Staff {
	return &Staff{
		id:       id,
		name:     name,
		title:    title,
		timeZone: timeZone,
		active:   active,
	}
}

func (s *Staff) Deactivate() { s.active = false }

func (s *Staff) ID() uuid.UUID    { return s.id }
func (s *Staff) Name() string     { return s.name }
func (s *Staff) Title() string    { return s.title }
func (s *Staff) TimeZone() string { return s.timeZone }
func (s *Staff) IsActive() bool   { return s.active }

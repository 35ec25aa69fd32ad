package schedule

import "time"

// NextOccurrence computes the first occurrence of the pattern on or after
// from. The second return value is false when the series is exhausted: the
// occurrence cap is already consumed by generated bookings, or the next
// cadence date falls strictly after EndDate. Exhaustion is a normal outcome,
// not an error; an error is returned only for a structurally invalid pattern.
//
// Stepping is anchored at StartDate, so weekly and biweekly candidates land
// on StartDate's weekday and every candidate keeps StartDate's wall-clock
// time of day.
func (p *Pattern) NextOccurrence(from time.Time) (time.Time, bool, error) {
	if err := p.validate(); err != nil {
		return time.Time{}, false, err
	}

	if p.maxOccurrences != nil && len(p.generatedBookingIDs) >= *p.maxOccurrences {
		return time.Time{}, false, nil
	}

	var candidate time.Time
	switch p.frequency {
	case FrequencyWeekly:
		candidate = p.nextByDayStep(from, 7*p.interval)
	case FrequencyBiweekly:
		// Biweekly is a fixed two-week cadence; interval is not a week
		// multiplier here.
		candidate = p.nextByDayStep(from, 14)
	case FrequencyMonthly:
		candidate = p.nextByMonthStep(from)
	}

	if p.endDate != nil && candidate.After(*p.endDate) {
		return time.Time{}, false, nil
	}
	return candidate, true, nil
}

func (p *Pattern) nextByDayStep(from time.Time, stepDays int) time.Time {
	candidate := p.startDate
	for candidate.Before(from) {
		candidate = candidate.AddDate(0, 0, stepDays)
	}
	return candidate
}

func (p *Pattern) nextByMonthStep(from time.Time) time.Time {
	// Months are stepped by index rather than AddDate to avoid the
	// end-of-month overflow (Jan 31 + 1 month = Mar 2/3).
	months := monthIndex(p.startDate.Year(), p.startDate.Month())
	candidate := p.monthlyCandidate(months)
	for candidate.Before(from) {
		months += p.interval
		candidate = p.monthlyCandidate(months)
	}
	return candidate
}

// monthlyCandidate builds the occurrence for the given month index, clamping
// DayOfMonth to the month's last day so short months yield their final day
// instead of being skipped.
func (p *Pattern) monthlyCandidate(months int) time.Time {
	year, month := yearMonth(months)
	day := *p.dayOfMonth
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	hour, minute, sec := p.startDate.Clock()
	return time.Date(year, month, day, hour, minute, sec, p.startDate.Nanosecond(), p.startDate.Location())
}

func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

func yearMonth(months int) (int, time.Month) {
	return months / 12, time.Month(months%12 + 1)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

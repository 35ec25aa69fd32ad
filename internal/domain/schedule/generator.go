package schedule

import "time"

// OccurrenceDates expands the pattern into an ascending, bounded sequence of
// occurrence dates. The first element is StartDate itself (the nominal first
// session); subsequent dates come from NextOccurrence. The result never
// exceeds maxToGenerate, never passes EndDate, and never exceeds the
// remaining occurrence budget (MaxOccurrences minus bookings already
// generated). The expansion holds no state: repeated calls with the same
// pattern and bound return the same dates.
func (p *Pattern) OccurrenceDates(maxToGenerate int) ([]time.Time, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	limit := maxToGenerate
	if p.maxOccurrences != nil {
		if remaining := *p.maxOccurrences - len(p.generatedBookingIDs); remaining < limit {
			limit = remaining
		}
	}
	if limit <= 0 {
		return nil, nil
	}
	if p.endDate != nil && p.startDate.After(*p.endDate) {
		return nil, nil
	}

	dates := make([]time.Time, 0, limit)
	dates = append(dates, p.startDate)

	for len(dates) < limit {
		prev := dates[len(dates)-1]
		// The resolver search is inclusive of its lower bound, so resolve
		// from just past the previous occurrence. Any delta below the
		// minimum one-day cadence works.
		next, ok, err := p.NextOccurrence(prev.Add(time.Second))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		dates = append(dates, next)
	}
	return dates, nil
}

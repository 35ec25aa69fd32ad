package booking

import "github.com/google/uuid"

// IsSlotAvailable reports whether the proposed slot is free on the staff
// member's calendar. existing is the caller-supplied set of bookings already
// scoped (by query) to the staff member and a relevant date window; bookings
// for a different staff ID are skipped defensively. excludeID skips one
// booking, used when re-checking availability for an in-place reschedule;
// pass uuid.Nil to exclude nothing.
//
// The check is a pure predicate and therefore advisory under concurrency:
// two callers can both observe a free slot. The persistence layer's
// exclusion constraint on (staff, slot) is what makes the eventual insert
// atomic.
func IsSlotAvailable(staffID uuid.UUID, proposed TimeSlot, existing []*Booking, excludeID uuid.UUID) bool {
	for _, b := range existing {
		if b.StaffID() != staffID {
			continue
		}
		if !b.IsBlocking() {
			continue
		}
		if excludeID != uuid.Nil && b.ID() == excludeID {
			continue
		}
		if conflicts(b.Slot(), proposed) {
			return false
		}
	}
	return true
}

// conflicts applies the three-clause overlap test. The clause boundaries are
// deliberately asymmetric: a slot that starts exactly where an existing one
// ends (or ends exactly where one starts) does not conflict.
func conflicts(existing, proposed TimeSlot) bool {
	// Proposed start falls inside the existing slot, or exactly at its start.
	startsInside := !existing.Start().After(proposed.Start()) && existing.End().After(proposed.Start())
	// Proposed end falls inside the existing slot, or exactly at its end.
	endsInside := existing.Start().Before(proposed.End()) && !existing.End().Before(proposed.End())
	// Existing slot is fully contained in the proposed slot.
	contained := !existing.Start().Before(proposed.Start()) && !existing.End().After(proposed.End())

	return startsInside || endsInside || contained
}

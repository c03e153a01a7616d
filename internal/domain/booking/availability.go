package booking

import "rental-marketplace/internal/pkg/errs"

var ErrDatesUnavailable = errs.Domain(errs.ErrConflict, "Property is not available for the selected dates")

// Reservation is the slice of an existing booking the conflict check needs.
type Reservation struct {
	Stay   Stay
	Status Status
}

// HasConflict reports whether candidate overlaps any existing reservation that blocks availability.
func HasConflict(candidate Stay, existing []Reservation) bool {
	for _, r := range existing {
		if r.Status.BlocksAvailability() && candidate.Overlaps(r.Stay) {
			return true
		}
	}
	return false
}

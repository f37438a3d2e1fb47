package reservation

import (
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// Overlap boundaries are inclusive on both ends: windows that merely
// touch an endpoint count as conflicting. Kept exactly as the product
// behaves today; loosening it is a product decision, and this predicate
// is the single place to change.

func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DayFloor truncates t to midnight in its own location. Blocked ranges
// are compared at day resolution.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func BlockedRangeApplies(br *models.BlockedRange, serviceID uint) bool {
	if br.AppliesToAllServices {
		return true
	}
	for _, s := range br.Services {
		if s.ServiceID == serviceID {
			return true
		}
	}
	return false
}

func BlockedRangeOverlaps(br *models.BlockedRange, checkIn, checkOut time.Time) bool {
	return Overlaps(
		DayFloor(checkIn), DayFloor(checkOut),
		DayFloor(br.StartDate), DayFloor(br.EndDate),
	)
}

func ReservationOverlaps(r *models.Reservation, checkIn, checkOut time.Time) bool {
	return Overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut)
}

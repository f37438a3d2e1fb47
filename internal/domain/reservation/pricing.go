package reservation

import (
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ===============================
// Checkout derivation
// ===============================

// ResolvePricing computes the checkout time and price for a reservation
// from the service's pricing definition. The client never supplies a
// checkout time; the duration/slot table is the source of truth for
// elapsed time.
func ResolvePricing(
	svc *models.Service,
	checkIn time.Time,
	pricingOptionID uint,
) (checkOut time.Time, price float64, err error) {

	switch svc.PricingMode {

	case models.PricingModeDuration:
		for _, d := range svc.Durations {
			if d.ID == pricingOptionID {
				return checkIn.Add(time.Duration(d.Hours) * time.Hour), d.Price, nil
			}
		}

	case models.PricingModeTimeSlot:
		for _, s := range svc.TimeSlots {
			if s.ID == pricingOptionID {
				out, perr := slotEnd(checkIn, s.StartTime, s.EndTime)
				if perr != nil {
					return time.Time{}, 0, perr
				}
				return out, s.Price, nil
			}
		}
	}

	return time.Time{}, 0, httperr.ErrBusiness("pricing_option_not_found")
}

// slotEnd anchors the slot's end wall-clock time on the check-in day,
// rolling to the next day for slots that cross midnight.
func slotEnd(checkIn time.Time, startHM, endHM string) (time.Time, error) {
	start, err1 := time.Parse("15:04", startHM)
	end, err2 := time.Parse("15:04", endHM)
	if err1 != nil || err2 != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time_slot")
	}

	out := time.Date(
		checkIn.Year(), checkIn.Month(), checkIn.Day(),
		end.Hour(), end.Minute(), 0, 0,
		checkIn.Location(),
	)

	if !end.After(start) {
		out = out.AddDate(0, 0, 1)
	}

	return out, nil
}

// ApplyPromo returns the discount for a subtotal, zero when the code is
// not currently redeemable.
func ApplyPromo(p *models.PromoCode, subtotal float64, now time.Time) float64 {
	if p == nil || !p.Active || p.PercentOff <= 0 {
		return 0
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return 0
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return 0
	}
	return subtotal * p.PercentOff / 100
}

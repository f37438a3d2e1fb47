package reservation

import (
	"context"
	"log"
	"time"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CheckAvailabilityInput struct {
	ServiceID uint
	CheckIn   time.Time
	CheckOut  time.Time
}

type AvailabilityResult struct {
	Available      bool   `json:"available"`
	ConflictReason string `json:"conflict_reason,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute is a soft advisory check, not a hard lock: there is no
// transaction spanning this read and a later reservation write, so two
// concurrent requests can both pass. Store read failures therefore fail
// OPEN (treat as available) rather than blocking legitimate bookings;
// the write path still fails closed.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (AvailabilityResult, error) {

	// --------------------------------------------------
	// Validation happens before any store query
	// --------------------------------------------------
	if in.ServiceID == 0 {
		return AvailabilityResult{}, httperr.ErrBusiness("missing_service")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return AvailabilityResult{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return AvailabilityResult{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Blocked ranges
	// --------------------------------------------------
	ranges, err := uc.repo.ListBlockedRangesForService(ctx, in.ServiceID)
	if err != nil {
		log.Printf("availability: blocked-range fetch failed, failing open: %v", err)
	} else {
		for i := range ranges {
			br := &ranges[i]
			if !domain.BlockedRangeApplies(br, in.ServiceID) {
				continue
			}
			if domain.BlockedRangeOverlaps(br, in.CheckIn, in.CheckOut) {
				return AvailabilityResult{
					Available:      false,
					ConflictReason: br.Reason,
				}, nil
			}
		}
	}

	// --------------------------------------------------
	// Existing reservations
	// --------------------------------------------------
	existing, err := uc.repo.ListBlockingReservations(ctx, in.ServiceID)
	if err != nil {
		log.Printf("availability: reservation fetch failed, failing open: %v", err)
	} else {
		for i := range existing {
			if !domain.BlocksAvailability(domain.Status(existing[i].Status)) {
				continue
			}
			if domain.ReservationOverlaps(&existing[i], in.CheckIn, in.CheckOut) {
				return AvailabilityResult{
					Available:      false,
					ConflictReason: "already booked",
				}, nil
			}
		}
	}

	return AvailabilityResult{Available: true}, nil
}

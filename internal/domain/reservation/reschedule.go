package reservation

import (
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ===============================
// Reschedule overlay
// ===============================

// A pending reschedule is an overlay on top of the reservation's
// authoritative dates: NONE -> PENDING -> {APPROVED, REJECTED}. Only
// APPROVED rewrites check-in/check-out.

type RescheduleStatus string

const (
	RescheduleNone     RescheduleStatus = "NONE"
	ReschedulePending  RescheduleStatus = "PENDING"
	RescheduleApproved RescheduleStatus = "APPROVED"
	RescheduleRejected RescheduleStatus = "REJECTED"
)

func RequestReschedule(
	r *models.Reservation,
	proposedCheckIn time.Time,
	proposedCheckOut time.Time,
	reason string,
	now time.Time,
	leadDays int,
) error {

	eligible := Status(r.Status) == StatusConfirmed ||
		(Status(r.Status) == StatusPending && HasPaymentRecorded(PaymentStatus(r.PaymentStatus)))
	if !eligible {
		return httperr.ErrBusiness("invalid_state")
	}

	if RescheduleStatus(r.RescheduleStatus) == ReschedulePending {
		return httperr.ErrBusiness("reschedule_already_pending")
	}

	if !proposedCheckOut.After(proposedCheckIn) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	// Minimum lead time is checked before the overlay transitions to
	// PENDING, so a rejected request leaves no trace on the reservation.
	if proposedCheckIn.Before(now.Add(time.Duration(leadDays) * 24 * time.Hour)) {
		return httperr.ErrBusiness("reschedule_too_soon")
	}

	r.RescheduleStatus = string(ReschedulePending)
	r.RescheduleProposedCheckIn = &proposedCheckIn
	r.RescheduleProposedCheckOut = &proposedCheckOut
	r.RescheduleReason = reason
	return nil
}

// ApproveReschedule applies the proposed window to the authoritative
// fields and clears the overlay.
func ApproveReschedule(r *models.Reservation) error {
	if RescheduleStatus(r.RescheduleStatus) != ReschedulePending {
		return httperr.ErrBusiness("no_pending_reschedule")
	}
	if r.RescheduleProposedCheckIn == nil || r.RescheduleProposedCheckOut == nil {
		return httperr.ErrBusiness("no_pending_reschedule")
	}

	r.CheckIn = *r.RescheduleProposedCheckIn
	r.CheckOut = *r.RescheduleProposedCheckOut
	r.RescheduleStatus = string(RescheduleApproved)
	r.RescheduleProposedCheckIn = nil
	r.RescheduleProposedCheckOut = nil
	r.RescheduleReason = ""
	return nil
}

// RejectReschedule clears the overlay, keeps the original dates, and
// retains the rejection reason for customer visibility.
func RejectReschedule(r *models.Reservation, rejectionReason string) error {
	if RescheduleStatus(r.RescheduleStatus) != ReschedulePending {
		return httperr.ErrBusiness("no_pending_reschedule")
	}

	r.RescheduleStatus = string(RescheduleRejected)
	r.RescheduleProposedCheckIn = nil
	r.RescheduleProposedCheckOut = nil
	r.RescheduleReason = rejectionReason
	return nil
}

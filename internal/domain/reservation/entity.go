package reservation

import (
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// GroupAction is a staff/customer action that, on a multi-amenity group,
// must be applied to every member identically.
type GroupAction string

const (
	ActionApprove GroupAction = "approve"
	ActionReject  GroupAction = "reject"
	ActionCancel  GroupAction = "cancel"
)

// ActionTarget is the status/paymentStatus pair every group member must
// reach. It is computed once, from the referenced reservation, so that
// the whole group converges on identical state.
type ActionTarget struct {
	Status        Status
	PaymentStatus PaymentStatus
}

func TargetFor(r *models.Reservation, action GroupAction) (ActionTarget, error) {
	switch action {
	case ActionApprove:
		pay := PaymentPartiallyPaid
		switch PaymentStatus(r.PaymentStatus) {
		case PaymentFullSubmitted, PaymentFullyPaid:
			pay = PaymentFullyPaid
		}
		if err := CanTransition(Status(r.Status), StatusConfirmed); err != nil {
			return ActionTarget{}, err
		}
		return ActionTarget{Status: StatusConfirmed, PaymentStatus: pay}, nil

	case ActionReject:
		if err := CanTransition(Status(r.Status), StatusRejected); err != nil {
			return ActionTarget{}, err
		}
		return ActionTarget{Status: StatusRejected, PaymentStatus: PaymentRejected}, nil

	case ActionCancel:
		if err := CanTransition(Status(r.Status), StatusCancelled); err != nil {
			return ActionTarget{}, err
		}
		return ActionTarget{Status: StatusCancelled, PaymentStatus: PaymentStatus(r.PaymentStatus)}, nil
	}

	return ActionTarget{}, httperr.ErrBusiness("unknown_action")
}

// ApplyTarget moves a reservation to the target pair. Members already at
// the target are left untouched so re-applying a group action stays safe.
func ApplyTarget(r *models.Reservation, target ActionTarget, now time.Time) {
	if Status(r.Status) == target.Status &&
		PaymentStatus(r.PaymentStatus) == target.PaymentStatus {
		return
	}

	r.Status = string(target.Status)
	r.PaymentStatus = string(target.PaymentStatus)

	switch target.Status {
	case StatusConfirmed:
		r.ApprovedAt = &now
	case StatusCancelled:
		r.CancelledAt = &now
	}
}

func AtTarget(r *models.Reservation, target ActionTarget) bool {
	return Status(r.Status) == target.Status &&
		PaymentStatus(r.PaymentStatus) == target.PaymentStatus
}

// ===============================
// Single-reservation actions
// ===============================

func CheckIn(r *models.Reservation, now time.Time) error {
	if err := CanTransition(Status(r.Status), StatusCheckedIn); err != nil {
		return err
	}

	r.Status = string(StatusCheckedIn)
	r.CheckedInAt = &now
	return nil
}

func CheckOut(r *models.Reservation, now time.Time) error {
	if err := CanTransition(Status(r.Status), StatusCompleted); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}

// SubmitReceipt records an uploaded GCash receipt reference. kindFull
// distinguishes full settlement from the 50% downpayment.
func SubmitReceipt(r *models.Reservation, filename string, kindFull bool) error {
	switch Status(r.Status) {
	case StatusPending, StatusPaid, StatusConfirmed:
	default:
		return httperr.ErrBusiness("invalid_state")
	}

	if filename == "" {
		return httperr.ErrBusiness("missing_receipt")
	}

	r.ReceiptFilename = filename
	if kindFull {
		r.PaymentStatus = string(PaymentFullSubmitted)
	} else {
		r.PaymentStatus = string(PaymentPartialSubmitted)
	}
	return nil
}

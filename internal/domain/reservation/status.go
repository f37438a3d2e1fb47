package reservation

import "github.com/TerraRicaResort/resort-booking/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusCart      Status = "CART"
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusRejected  Status = "REJECTED"
)

// ===============================
// Payment Status
// ===============================

// Payment status is an independent axis: a reservation can be CONFIRMED
// while only the downpayment is approved. "-payment" suffixes mean a
// receipt was submitted and awaits review, "-paid" that staff approved it.

type PaymentStatus string

const (
	PaymentPending          PaymentStatus = "pending"
	PaymentPartialSubmitted PaymentStatus = "partial-payment"
	PaymentPartiallyPaid    PaymentStatus = "partially-paid"
	PaymentFullSubmitted    PaymentStatus = "full-payment"
	PaymentFullyPaid        PaymentStatus = "fully-paid"
	PaymentRejected         PaymentStatus = "rejected"
)

// Fixed downpayment rate accepted to hold a reservation.
const DownpaymentRate = 0.5

// ===============================
// Transition table
// ===============================

var statusTransitions = map[Status][]Status{
	StatusCart:      {StatusPending, StatusCancelled},
	StatusPending:   {StatusPaid, StatusConfirmed, StatusCancelled, StatusRejected},
	StatusPaid:      {StatusConfirmed, StatusCancelled, StatusRejected},
	StatusConfirmed: {StatusCheckedIn, StatusConfirmed, StatusCancelled, StatusRejected},
	StatusCheckedIn: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusRejected:  {},
}

func CanTransition(from, to Status) error {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func IsValidStatus(s Status) bool {
	_, ok := statusTransitions[s]
	return ok
}

// BlocksAvailability reports whether a reservation in the given status
// occupies its window for conflict purposes. CART drafts and dead
// reservations never block.
func BlocksAvailability(s Status) bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusCart:
		return false
	}
	return true
}

// HasPaymentRecorded reports whether any receipt has been submitted or
// approved for the reservation.
func HasPaymentRecorded(p PaymentStatus) bool {
	switch p {
	case PaymentPartialSubmitted, PaymentPartiallyPaid, PaymentFullSubmitted, PaymentFullyPaid:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}

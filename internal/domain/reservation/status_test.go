package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"cart to pending", StatusCart, StatusPending, true},
		{"cart to cancelled", StatusCart, StatusCancelled, true},
		{"cart to confirmed", StatusCart, StatusConfirmed, false},
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to checked in", StatusPending, StatusCheckedIn, false},
		{"paid to confirmed", StatusPaid, StatusConfirmed, true},
		{"confirmed to checked in", StatusConfirmed, StatusCheckedIn, true},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"checked in to completed", StatusCheckedIn, StatusCompleted, true},
		{"checked in to rejected", StatusCheckedIn, StatusRejected, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBlocksAvailability(t *testing.T) {
	assert.True(t, BlocksAvailability(StatusPending))
	assert.True(t, BlocksAvailability(StatusPaid))
	assert.True(t, BlocksAvailability(StatusConfirmed))
	assert.True(t, BlocksAvailability(StatusCheckedIn))
	assert.True(t, BlocksAvailability(StatusCompleted))

	assert.False(t, BlocksAvailability(StatusCart))
	assert.False(t, BlocksAvailability(StatusCancelled))
	assert.False(t, BlocksAvailability(StatusRejected))
}

func TestHasPaymentRecorded(t *testing.T) {
	assert.False(t, HasPaymentRecorded(PaymentPending))
	assert.False(t, HasPaymentRecorded(PaymentRejected))

	assert.True(t, HasPaymentRecorded(PaymentPartialSubmitted))
	assert.True(t, HasPaymentRecorded(PaymentPartiallyPaid))
	assert.True(t, HasPaymentRecorded(PaymentFullSubmitted))
	assert.True(t, HasPaymentRecorded(PaymentFullyPaid))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCart))
	assert.False(t, IsValidStatus(Status("ON_HOLD")))
}

package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// byHashRepo serves a single reservation by hash and by id, recording
// updates in place.
func byHashRepo(res *models.Reservation) *mockRepo {
	return &mockRepo{
		getReservationByHash: func(ctx context.Context, hash string) (*models.Reservation, error) {
			if hash != res.Hash {
				return nil, errors.New("record not found")
			}
			return res, nil
		},
		getReservationByID: func(ctx context.Context, id uint) (*models.Reservation, error) {
			if id != res.ID {
				return nil, errors.New("record not found")
			}
			return res, nil
		},
	}
}

func TestSubmitReceiptByHash(t *testing.T) {
	res := &models.Reservation{
		ID:            1,
		Hash:          "abc123",
		Status:        string(domain.StatusPending),
		PaymentStatus: string(domain.PaymentPending),
	}

	uc := NewSubmitReceipt(byHashRepo(res), nil)

	out, err := uc.Execute(context.Background(), SubmitReceiptInput{
		Hash:     "abc123",
		Filename: "gcash-ref-991.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentPartialSubmitted), out.PaymentStatus)
	assert.Equal(t, "gcash-ref-991.jpg", out.ReceiptFilename)

	// Second receipt for the balance.
	out, err = uc.Execute(context.Background(), SubmitReceiptInput{
		Hash:        "abc123",
		Filename:    "gcash-ref-992.jpg",
		FullPayment: true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentFullSubmitted), out.PaymentStatus)
}

func TestSubmitReceiptUnknownHash(t *testing.T) {
	res := &models.Reservation{ID: 1, Hash: "abc123", Status: string(domain.StatusPending)}
	uc := NewSubmitReceipt(byHashRepo(res), nil)

	_, err := uc.Execute(context.Background(), SubmitReceiptInput{
		Hash:     "wrong",
		Filename: "x.jpg",
	})
	assert.Error(t, err)
}

func TestRequestRescheduleKeepsDuration(t *testing.T) {
	res := &models.Reservation{
		ID:            1,
		Hash:          "abc123",
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentPartiallyPaid),
		CheckIn:       mustTime("2026-07-01 14:00"),
		CheckOut:      mustTime("2026-07-02 12:00"),
	}

	uc := NewRequestReschedule(byHashRepo(res), nil, mustTime("2026-06-01 09:00").Location(), 14)
	uc.now = func() time.Time { return mustTime("2026-06-01 09:00") }

	out, err := uc.Execute(context.Background(), RequestRescheduleInput{
		Hash:   "abc123",
		Date:   "2026-07-10",
		Time:   "14:00",
		Reason: "flight moved",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReschedulePending), out.RescheduleStatus)
	assert.Equal(t, mustTime("2026-07-10 14:00"), *out.RescheduleProposedCheckIn)
	// 22-hour stay preserved.
	assert.Equal(t, mustTime("2026-07-11 12:00"), *out.RescheduleProposedCheckOut)
}

func TestRequestRescheduleTooSoonChangesNothing(t *testing.T) {
	res := &models.Reservation{
		ID:            1,
		Hash:          "abc123",
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentPartiallyPaid),
		CheckIn:       mustTime("2026-07-01 14:00"),
		CheckOut:      mustTime("2026-07-02 12:00"),
	}

	repo := byHashRepo(res)
	updates := 0
	repo.updateReservation = func(ctx context.Context, r *models.Reservation) error {
		updates++
		return nil
	}

	uc := NewRequestReschedule(repo, nil, mustTime("2026-06-01 09:00").Location(), 14)
	uc.now = func() time.Time { return mustTime("2026-06-28 09:00") }

	_, err := uc.Execute(context.Background(), RequestRescheduleInput{
		Hash: "abc123",
		Date: "2026-07-01",
		Time: "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "reschedule_too_soon"))
	assert.Zero(t, updates)
	assert.Equal(t, "", res.RescheduleReason)
	assert.Equal(t, mustTime("2026-07-01 14:00"), res.CheckIn)
}

func TestResolveReschedule(t *testing.T) {
	proposedIn := mustTime("2026-07-10 14:00")
	proposedOut := mustTime("2026-07-11 12:00")

	t.Run("approve applies proposed window", func(t *testing.T) {
		res := &models.Reservation{
			ID:                         1,
			Status:                     string(domain.StatusConfirmed),
			CheckIn:                    mustTime("2026-07-01 14:00"),
			CheckOut:                   mustTime("2026-07-02 12:00"),
			RescheduleStatus:           string(domain.ReschedulePending),
			RescheduleProposedCheckIn:  &proposedIn,
			RescheduleProposedCheckOut: &proposedOut,
		}

		uc := NewResolveReschedule(byHashRepo(res), nil, nil)

		out, err := uc.Approve(context.Background(), 1, 42)
		require.NoError(t, err)

		assert.Equal(t, proposedIn, out.CheckIn)
		assert.Equal(t, proposedOut, out.CheckOut)
		assert.Equal(t, string(domain.RescheduleApproved), out.RescheduleStatus)
	})

	t.Run("reject keeps original window", func(t *testing.T) {
		res := &models.Reservation{
			ID:                         1,
			Status:                     string(domain.StatusConfirmed),
			CheckIn:                    mustTime("2026-07-01 14:00"),
			CheckOut:                   mustTime("2026-07-02 12:00"),
			RescheduleStatus:           string(domain.ReschedulePending),
			RescheduleProposedCheckIn:  &proposedIn,
			RescheduleProposedCheckOut: &proposedOut,
		}

		uc := NewResolveReschedule(byHashRepo(res), nil, nil)

		out, err := uc.Reject(context.Background(), 1, 42, "no slots")
		require.NoError(t, err)

		assert.Equal(t, mustTime("2026-07-01 14:00"), out.CheckIn)
		assert.Equal(t, string(domain.RescheduleRejected), out.RescheduleStatus)
		assert.Equal(t, "no slots", out.RescheduleReason)
	})

	t.Run("approve without pending request", func(t *testing.T) {
		res := &models.Reservation{
			ID:               1,
			Status:           string(domain.StatusConfirmed),
			RescheduleStatus: string(domain.RescheduleNone),
		}

		uc := NewResolveReschedule(byHashRepo(res), nil, nil)

		_, err := uc.Approve(context.Background(), 1, 42)
		assert.True(t, httperr.IsBusiness(err, "no_pending_reschedule"))
	})
}

func TestCheckInAndOutFlow(t *testing.T) {
	res := &models.Reservation{
		ID:     1,
		Status: string(domain.StatusConfirmed),
	}
	repo := byHashRepo(res)

	checkIn := NewCheckInReservation(repo, nil)
	checkOut := NewCheckOutReservation(repo, nil)

	// Checking out before checking in is refused.
	_, err := checkOut.Execute(context.Background(), 1, 42)
	assert.Error(t, err)

	out, err := checkIn.Execute(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCheckedIn), out.Status)
	assert.NotNil(t, out.CheckedInAt)

	out, err = checkOut.Execute(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	assert.NotNil(t, out.CompletedAt)

	// Re-checking in a completed stay is refused.
	_, err = checkIn.Execute(context.Background(), 1, 42)
	assert.Error(t, err)
}

package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

func TestCheckAvailabilityValidation(t *testing.T) {
	uc := NewCheckAvailability(&mockRepo{})

	tests := []struct {
		name     string
		in       CheckAvailabilityInput
		wantCode string
	}{
		{
			name:     "missing service",
			in:       CheckAvailabilityInput{CheckIn: mustTime("2026-06-10 14:00"), CheckOut: mustTime("2026-06-11 12:00")},
			wantCode: "missing_service",
		},
		{
			name:     "zero check-in",
			in:       CheckAvailabilityInput{ServiceID: 1, CheckOut: mustTime("2026-06-11 12:00")},
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "checkout not after check-in",
			in:       CheckAvailabilityInput{ServiceID: 1, CheckIn: mustTime("2026-06-11 12:00"), CheckOut: mustTime("2026-06-11 12:00")},
			wantCode: "invalid_date_or_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode))
		})
	}
}

func TestCheckAvailabilityBlockedRange(t *testing.T) {
	repo := &mockRepo{
		listBlockedRanges: func(ctx context.Context, serviceID uint) ([]models.BlockedRange, error) {
			return []models.BlockedRange{
				{
					StartDate:            mustTime("2026-06-10 00:00"),
					EndDate:              mustTime("2026-06-12 00:00"),
					Reason:               "pool maintenance",
					AppliesToAllServices: true,
				},
			}, nil
		},
	}

	uc := NewCheckAvailability(repo)

	res, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-11 14:00"),
		CheckOut:  mustTime("2026-06-12 12:00"),
	})
	require.NoError(t, err)

	assert.False(t, res.Available)
	assert.Equal(t, "pool maintenance", res.ConflictReason)
}

func TestCheckAvailabilityScopedRangeOtherService(t *testing.T) {
	repo := &mockRepo{
		listBlockedRanges: func(ctx context.Context, serviceID uint) ([]models.BlockedRange, error) {
			return []models.BlockedRange{
				{
					StartDate: mustTime("2026-06-10 00:00"),
					EndDate:   mustTime("2026-06-12 00:00"),
					Reason:    "villa repaint",
					Services:  []models.BlockedRangeService{{ServiceID: 9}},
				},
			}, nil
		},
	}

	uc := NewCheckAvailability(repo)

	res, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-11 14:00"),
		CheckOut:  mustTime("2026-06-12 12:00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckAvailabilityExistingReservation(t *testing.T) {
	repo := &mockRepo{
		listBlocking: func(ctx context.Context, serviceID uint) ([]models.Reservation, error) {
			return []models.Reservation{
				{
					Status:   string(domain.StatusConfirmed),
					CheckIn:  mustTime("2026-06-10 14:00"),
					CheckOut: mustTime("2026-06-11 12:00"),
				},
			}, nil
		},
	}

	uc := NewCheckAvailability(repo)

	// Touching the existing checkout exactly still conflicts.
	res, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-11 12:00"),
		CheckOut:  mustTime("2026-06-12 12:00"),
	})
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, "already booked", res.ConflictReason)

	// A minute later is free.
	res, err = uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-11 12:01"),
		CheckOut:  mustTime("2026-06-12 12:00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckAvailabilityIgnoresDeadReservations(t *testing.T) {
	repo := &mockRepo{
		listBlocking: func(ctx context.Context, serviceID uint) ([]models.Reservation, error) {
			return []models.Reservation{
				{Status: string(domain.StatusCancelled), CheckIn: mustTime("2026-06-10 14:00"), CheckOut: mustTime("2026-06-11 12:00")},
				{Status: string(domain.StatusRejected), CheckIn: mustTime("2026-06-10 14:00"), CheckOut: mustTime("2026-06-11 12:00")},
				{Status: string(domain.StatusCart), CheckIn: mustTime("2026-06-10 14:00"), CheckOut: mustTime("2026-06-11 12:00")},
			}, nil
		},
	}

	uc := NewCheckAvailability(repo)

	res, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-10 14:00"),
		CheckOut:  mustTime("2026-06-11 12:00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckAvailabilityFailsOpenOnStoreErrors(t *testing.T) {
	repo := &mockRepo{
		listBlockedRanges: func(ctx context.Context, serviceID uint) ([]models.BlockedRange, error) {
			return nil, errors.New("connection reset")
		},
		listBlocking: func(ctx context.Context, serviceID uint) ([]models.Reservation, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := NewCheckAvailability(repo)

	res, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-10 14:00"),
		CheckOut:  mustTime("2026-06-11 12:00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Empty(t, res.ConflictReason)
}

func TestCheckAvailabilityIsReadOnly(t *testing.T) {
	calls := 0
	repo := &mockRepo{
		listBlocking: func(ctx context.Context, serviceID uint) ([]models.Reservation, error) {
			calls++
			return nil, nil
		},
	}

	uc := NewCheckAvailability(repo)
	in := CheckAvailabilityInput{
		ServiceID: 1,
		CheckIn:   mustTime("2026-06-10 14:00"),
		CheckOut:  mustTime("2026-06-11 12:00"),
	}

	// Identical repeated checks return identical answers.
	for i := 0; i < 3; i++ {
		res, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Available)
	}
	assert.Equal(t, 3, calls)
}

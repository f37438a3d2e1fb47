package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

func groupOfThree() []models.Reservation {
	member := func(id uint, primary bool) models.Reservation {
		return models.Reservation{
			ID:                       id,
			FormalID:                 fmt.Sprintf("TRR-20260610-%03d", id),
			Status:                   string(domain.StatusPending),
			PaymentStatus:            string(domain.PaymentPartialSubmitted),
			IsMultiAmenity:           true,
			MultiAmenityGroupID:      "6f1d2e3c-aaaa-bbbb-cccc-000000000001",
			MultiAmenityTotal:        3,
			MultiAmenityGroupPrimary: primary,
		}
	}
	return []models.Reservation{member(1, true), member(2, false), member(3, false)}
}

// groupStore keeps the group in memory so updates are visible to the
// verification re-read.
type groupStore struct {
	members map[uint]*models.Reservation
	order   []uint
}

func newGroupStore(members []models.Reservation) *groupStore {
	s := &groupStore{members: map[uint]*models.Reservation{}}
	for i := range members {
		m := members[i]
		s.members[m.ID] = &m
		s.order = append(s.order, m.ID)
	}
	return s
}

func (s *groupStore) list() []models.Reservation {
	out := make([]models.Reservation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.members[id])
	}
	return out
}

func (s *groupStore) repo() *mockRepo {
	return &mockRepo{
		getReservationByID: func(ctx context.Context, id uint) (*models.Reservation, error) {
			m, ok := s.members[id]
			if !ok {
				return nil, errors.New("record not found")
			}
			cp := *m
			return &cp, nil
		},
		listGroupMembers: func(ctx context.Context, groupID string) ([]models.Reservation, error) {
			return s.list(), nil
		},
		updateReservation: func(ctx context.Context, r *models.Reservation) error {
			cp := *r
			s.members[r.ID] = &cp
			return nil
		},
	}
}

func TestApplyGroupActionApprovesAllMembers(t *testing.T) {
	store := newGroupStore(groupOfThree())
	uc := NewApplyGroupAction(store.repo(), nil, nil)

	staffID := uint(42)
	affected, err := uc.Execute(context.Background(), 2, domain.ActionApprove, &staffID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint{1, 2, 3}, affected)
	for _, m := range store.list() {
		assert.Equal(t, string(domain.StatusConfirmed), m.Status)
		assert.Equal(t, string(domain.PaymentPartiallyPaid), m.PaymentStatus)
		assert.NotNil(t, m.ApprovedAt)
	}
}

func TestApplyGroupActionPartialFailureNamesMembers(t *testing.T) {
	store := newGroupStore(groupOfThree())
	repo := store.repo()

	inner := repo.updateReservation
	repo.updateReservation = func(ctx context.Context, r *models.Reservation) error {
		if r.ID == 3 {
			return errors.New("write timeout")
		}
		return inner(ctx, r)
	}

	uc := NewApplyGroupAction(repo, nil, nil)

	affected, err := uc.Execute(context.Background(), 1, domain.ActionApprove, nil)

	// Every member was attempted.
	assert.ElementsMatch(t, []uint{1, 2, 3}, affected)

	var pge *domain.PartialGroupError
	require.ErrorAs(t, err, &pge)
	assert.Equal(t, []uint{3}, pge.FailedIDs)

	// Successfully written members stay at the target; the convergence
	// failure is reported, not rolled back.
	assert.Equal(t, string(domain.StatusConfirmed), store.members[1].Status)
	assert.Equal(t, string(domain.StatusConfirmed), store.members[2].Status)
	assert.Equal(t, string(domain.StatusPending), store.members[3].Status)
}

func TestApplyGroupActionVerificationReadFailure(t *testing.T) {
	store := newGroupStore(groupOfThree())
	repo := store.repo()

	listCalls := 0
	inner := repo.listGroupMembers
	repo.listGroupMembers = func(ctx context.Context, groupID string) ([]models.Reservation, error) {
		listCalls++
		if listCalls > 1 {
			// First call resolves the members, the verification re-read fails.
			return nil, errors.New("connection reset")
		}
		return inner(ctx, groupID)
	}

	uc := NewApplyGroupAction(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, domain.ActionApprove, nil)

	var pge *domain.PartialGroupError
	require.ErrorAs(t, err, &pge)
	// Convergence cannot be confirmed, so every member is suspect.
	assert.ElementsMatch(t, []uint{1, 2, 3}, pge.FailedIDs)
}

func TestApplyGroupActionSingleReservation(t *testing.T) {
	single := models.Reservation{
		ID:            7,
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentPartiallyPaid),
	}
	store := newGroupStore([]models.Reservation{single})
	uc := NewApplyGroupAction(store.repo(), nil, nil)

	affected, err := uc.Execute(context.Background(), 7, domain.ActionCancel, nil)
	require.NoError(t, err)

	assert.Equal(t, []uint{7}, affected)
	assert.Equal(t, string(domain.StatusCancelled), store.members[7].Status)
	// Cancellation keeps the payment trail for refund handling.
	assert.Equal(t, string(domain.PaymentPartiallyPaid), store.members[7].PaymentStatus)
	assert.NotNil(t, store.members[7].CancelledAt)
}

func TestApplyGroupActionRejectsInvalidTransition(t *testing.T) {
	done := models.Reservation{ID: 9, Status: string(domain.StatusCompleted)}
	store := newGroupStore([]models.Reservation{done})
	uc := NewApplyGroupAction(store.repo(), nil, nil)

	_, err := uc.Execute(context.Background(), 9, domain.ActionCancel, nil)
	assert.Error(t, err)

	assert.Equal(t, string(domain.StatusCompleted), store.members[9].Status)
}

package reservation

import (
	"context"
	"time"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// mockRepo implements domain.Repository with overridable funcs so each
// test wires only the calls it cares about.
type mockRepo struct {
	getService            func(ctx context.Context, id uint) (*models.Service, error)
	listBlockedRanges     func(ctx context.Context, serviceID uint) ([]models.BlockedRange, error)
	listBlocking          func(ctx context.Context, serviceID uint) ([]models.Reservation, error)
	createReservation     func(ctx context.Context, r *models.Reservation) error
	maxFormalSequence     func(ctx context.Context, day string) (int, error)
	getReservationByID    func(ctx context.Context, id uint) (*models.Reservation, error)
	getReservationByHash  func(ctx context.Context, hash string) (*models.Reservation, error)
	listGroupMembers      func(ctx context.Context, groupID string) ([]models.Reservation, error)
	updateReservation     func(ctx context.Context, r *models.Reservation) error
	getPromoByCode        func(ctx context.Context, code string) (*models.PromoCode, error)
	listReservationsRange func(ctx context.Context, start, end time.Time, status string) ([]models.Reservation, error)
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if m.getService != nil {
		return m.getService(ctx, id)
	}
	return nil, nil
}

func (m *mockRepo) ListBlockedRangesForService(ctx context.Context, serviceID uint) ([]models.BlockedRange, error) {
	if m.listBlockedRanges != nil {
		return m.listBlockedRanges(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockRepo) ListBlockingReservations(ctx context.Context, serviceID uint) ([]models.Reservation, error) {
	if m.listBlocking != nil {
		return m.listBlocking(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockRepo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if m.createReservation != nil {
		return m.createReservation(ctx, r)
	}
	return nil
}

func (m *mockRepo) MaxFormalSequence(ctx context.Context, day string) (int, error) {
	if m.maxFormalSequence != nil {
		return m.maxFormalSequence(ctx, day)
	}
	return 0, nil
}

func (m *mockRepo) GetReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	if m.getReservationByID != nil {
		return m.getReservationByID(ctx, id)
	}
	return nil, nil
}

func (m *mockRepo) GetReservationByHash(ctx context.Context, hash string) (*models.Reservation, error) {
	if m.getReservationByHash != nil {
		return m.getReservationByHash(ctx, hash)
	}
	return nil, nil
}

func (m *mockRepo) ListGroupMembers(ctx context.Context, groupID string) ([]models.Reservation, error) {
	if m.listGroupMembers != nil {
		return m.listGroupMembers(ctx, groupID)
	}
	return nil, nil
}

func (m *mockRepo) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	if m.updateReservation != nil {
		return m.updateReservation(ctx, r)
	}
	return nil
}

func (m *mockRepo) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	if m.getPromoByCode != nil {
		return m.getPromoByCode(ctx, code)
	}
	return nil, nil
}

func (m *mockRepo) ListReservationsForPeriod(ctx context.Context, start, end time.Time, status string) ([]models.Reservation, error) {
	if m.listReservationsRange != nil {
		return m.listReservationsRange(ctx, start, end, status)
	}
	return nil, nil
}

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

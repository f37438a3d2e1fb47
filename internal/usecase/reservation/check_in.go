package reservation

import (
	"context"
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

type CheckInReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckInReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CheckInReservation {
	return &CheckInReservation{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CheckInReservation) Execute(
	ctx context.Context,
	reservationID uint,
	staffID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckIn(res, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "reservation_checked_in",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}

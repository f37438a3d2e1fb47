package reservation

import (
	"context"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
	"github.com/TerraRicaResort/resort-booking/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type ResolveReschedule struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewResolveReschedule(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *ResolveReschedule {
	return &ResolveReschedule{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifier,
	}
}

func (uc *ResolveReschedule) Approve(
	ctx context.Context,
	reservationID uint,
	staffID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.ApproveReschedule(res); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "reschedule_approved",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	uc.notify.Dispatch(notify.Message{
		Event:      "reschedule_approved",
		FormalID:   res.FormalID,
		GuestEmail: res.GuestEmail,
	})

	return res, nil
}

func (uc *ResolveReschedule) Reject(
	ctx context.Context,
	reservationID uint,
	staffID uint,
	reason string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.RejectReschedule(res, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "reschedule_rejected",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"reason": reason},
	})

	uc.notify.Dispatch(notify.Message{
		Event:      "reschedule_rejected",
		FormalID:   res.FormalID,
		GuestEmail: res.GuestEmail,
		Detail:     reason,
	})

	return res, nil
}

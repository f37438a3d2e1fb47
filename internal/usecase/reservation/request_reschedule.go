package reservation

import (
	"context"
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RequestRescheduleInput struct {
	Hash string

	Date   string // YYYY-MM-DD
	Time   string // HH:mm
	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type RequestReschedule struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	loc      *time.Location
	leadDays int
	now      func() time.Time
}

func NewRequestReschedule(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
	leadDays int,
) *RequestReschedule {
	return &RequestReschedule{
		repo:     repo,
		audit:    auditDispatcher,
		loc:      loc,
		leadDays: leadDays,
		now:      time.Now,
	}
}

func (uc *RequestReschedule) Execute(
	ctx context.Context,
	in RequestRescheduleInput,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByHash(ctx, in.Hash)
	if err != nil {
		return nil, err
	}

	proposedCheckIn, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// The proposed stay keeps the booked duration; only the window moves.
	proposedCheckOut := proposedCheckIn.Add(res.CheckOut.Sub(res.CheckIn))

	if err := domain.RequestReschedule(
		res,
		proposedCheckIn,
		proposedCheckOut,
		in.Reason,
		uc.now().In(uc.loc),
		uc.leadDays,
	); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reschedule_requested",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"proposed_check_in":  proposedCheckIn,
			"proposed_check_out": proposedCheckOut,
		},
	})

	return res, nil
}

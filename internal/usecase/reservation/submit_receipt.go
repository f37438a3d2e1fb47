package reservation

import (
	"context"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// SubmitReceipt records the filename of an uploaded GCash receipt
// against a reservation looked up by its capability hash. The file
// itself lives behind the external upload collaborator.
type SubmitReceipt struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitReceipt(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SubmitReceipt {
	return &SubmitReceipt{
		repo:  repo,
		audit: auditDispatcher,
	}
}

type SubmitReceiptInput struct {
	Hash     string
	Filename string
	// Full settlement, as opposed to the 50% downpayment.
	FullPayment bool
}

func (uc *SubmitReceipt) Execute(
	ctx context.Context,
	in SubmitReceiptInput,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByHash(ctx, in.Hash)
	if err != nil {
		return nil, err
	}

	if err := domain.SubmitReceipt(res, in.Filename, in.FullPayment); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "receipt_submitted",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"payment_status": res.PaymentStatus},
	})

	return res, nil
}

package reservation

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type GroupItem struct {
	ServiceID       uint
	PricingOptionID uint
	Date            string // YYYY-MM-DD
	Time            string // HH:mm
}

type CreateGroupInput struct {
	Items []GroupItem

	GuestName  string
	GuestPhone string
	GuestEmail string
	GuestCount int

	Notes     string
	PromoCode string
}

// ======================================================
// USE CASE
// ======================================================

// One checkout, N amenities: every member carries the shared group id so
// a later approve/reject/cancel on any one of them reaches all of them.
type CreateReservationGroup struct {
	create *CreateReservation
	audit  *audit.Dispatcher
}

func NewCreateReservationGroup(
	create *CreateReservation,
	auditDispatcher *audit.Dispatcher,
) *CreateReservationGroup {
	return &CreateReservationGroup{
		create: create,
		audit:  auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservationGroup) Execute(
	ctx context.Context,
	in CreateGroupInput,
) ([]models.Reservation, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_checkout")
	}

	// --------------------------------------------------
	// 1. Validate the whole cart before writing anything
	// --------------------------------------------------
	built := make([]*models.Reservation, 0, len(in.Items))
	for _, item := range in.Items {
		res, err := uc.create.build(ctx, CreateReservationInput{
			ServiceID:       item.ServiceID,
			PricingOptionID: item.PricingOptionID,
			Date:            item.Date,
			Time:            item.Time,
			GuestName:       in.GuestName,
			GuestPhone:      in.GuestPhone,
			GuestEmail:      in.GuestEmail,
			GuestCount:      in.GuestCount,
			Notes:           in.Notes,
			PromoCode:       in.PromoCode,
		})
		if err != nil {
			return nil, err
		}
		built = append(built, res)
	}

	// --------------------------------------------------
	// 2. Group metadata (index 0 is the primary member and
	//    carries the group-level totals)
	// --------------------------------------------------
	if len(built) > 1 {
		groupID := uuid.NewString()

		subtotal := 0.0
		for _, res := range built {
			subtotal += res.TotalPrice
		}

		groupDiscount := 0.0
		if in.PromoCode != "" {
			if promo, err := uc.create.repo.GetPromoByCode(ctx, in.PromoCode); err == nil {
				groupDiscount = domain.ApplyPromo(promo, subtotal, uc.create.now())
			}
		}

		for i, res := range built {
			res.IsMultiAmenity = true
			res.MultiAmenityGroupID = groupID
			res.MultiAmenityIndex = i
			res.MultiAmenityTotal = len(built)
			res.MultiAmenityGroupPrimary = i == 0
			res.DiscountAmount = 0
			res.DownpaymentAmount = 0
		}

		primary := built[0]
		primary.DiscountAmount = groupDiscount
		primary.DownpaymentAmount = (subtotal - groupDiscount) * domain.DownpaymentRate
	}

	// --------------------------------------------------
	// 3. Persist sequentially; there is no cross-row
	//    transaction, so a mid-cart failure rolls back
	//    already-written members best-effort
	// --------------------------------------------------
	created := make([]models.Reservation, 0, len(built))
	for _, res := range built {
		if err := uc.create.persistWithFormalID(ctx, res); err != nil {
			uc.rollback(ctx, created)
			return nil, err
		}
		created = append(created, *res)
	}

	uc.audit.Dispatch(audit.Event{
		Action: "reservation_group_created",
		Entity: "reservation",
		Metadata: map[string]any{
			"group_id": groupIDOf(created),
			"members":  len(created),
		},
	})

	return created, nil
}

func (uc *CreateReservationGroup) rollback(ctx context.Context, created []models.Reservation) {
	now := time.Now()
	for i := range created {
		res := created[i]
		res.Status = string(domain.StatusCancelled)
		res.CancelledAt = &now
		if err := uc.create.repo.UpdateReservation(ctx, &res); err != nil {
			log.Printf("group rollback: could not cancel reservation %d: %v", res.ID, err)
		}
	}
}

func groupIDOf(created []models.Reservation) string {
	if len(created) == 0 {
		return ""
	}
	return created[0].MultiAmenityGroupID
}

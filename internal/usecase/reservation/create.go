package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
	"github.com/TerraRicaResort/resort-booking/internal/sequence"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ServiceID       uint
	PricingOptionID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

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

type CreateReservation struct {
	repo    domain.Repository
	gen     *sequence.Generator
	checker *CheckAvailability
	audit   *audit.Dispatcher
	loc     *time.Location
	now     func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	gen *sequence.Generator,
	checker *CheckAvailability,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateReservation {
	return &CreateReservation{
		repo:    repo,
		gen:     gen,
		checker: checker,
		audit:   auditDispatcher,
		loc:     loc,
		now:     time.Now,
	}
}

// formal-id collisions under concurrent same-day creation are resolved
// by re-reading the max counter, never by tolerating a duplicate
const createAttempts = 3

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	res, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := uc.persistWithFormalID(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"formal_id": res.FormalID},
	})

	return res, nil
}

// build runs every validation and derivation step but does not persist;
// the multi-amenity flow validates a whole cart before writing anything.
func (uc *CreateReservation) build(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Guest fields
	// --------------------------------------------------
	if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestPhone) == "" {
		return nil, httperr.ErrBusiness("missing_guest_info")
	}

	// --------------------------------------------------
	// 2. Service + pricing definition
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// --------------------------------------------------
	// 3. Check-in in resort time
	// --------------------------------------------------
	checkIn, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if checkIn.Before(uc.now().In(uc.loc)) {
		return nil, httperr.ErrBusiness("check_in_in_past")
	}

	// --------------------------------------------------
	// 4. Checkout derived from the pricing table
	// --------------------------------------------------
	checkOut, price, err := domain.ResolvePricing(svc, checkIn, in.PricingOptionID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Advisory availability check
	// --------------------------------------------------
	result, err := uc.checker.Execute(ctx, CheckAvailabilityInput{
		ServiceID: in.ServiceID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, httperr.ErrBusinessReason("not_available", result.ConflictReason)
	}

	// --------------------------------------------------
	// 6. Promo + totals
	// --------------------------------------------------
	discount := 0.0
	if in.PromoCode != "" {
		promo, perr := uc.repo.GetPromoByCode(ctx, in.PromoCode)
		if perr != nil {
			return nil, httperr.ErrBusiness("promo_not_found")
		}
		discount = domain.ApplyPromo(promo, price, uc.now())
	}

	downpayment := (price - discount) * domain.DownpaymentRate

	// --------------------------------------------------
	// 7. Capability hash
	// --------------------------------------------------
	hash, err := domain.NewHash()
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Persist, retrying formal-id collisions
	// --------------------------------------------------
	res := &models.Reservation{
		Hash:       hash,
		ServiceID:  svc.ID,
		GuestName:  in.GuestName,
		GuestPhone: in.GuestPhone,
		GuestEmail: in.GuestEmail,
		GuestCount: in.GuestCount,
		Notes:      in.Notes,

		CheckIn:  checkIn,
		CheckOut: checkOut,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),

		TotalPrice:        price,
		DiscountAmount:    discount,
		DownpaymentAmount: downpayment,
		PromoCode:         in.PromoCode,

		RescheduleStatus: string(domain.RescheduleNone),
	}

	return res, nil
}

func (uc *CreateReservation) persistWithFormalID(
	ctx context.Context,
	res *models.Reservation,
) error {

	var lastErr error

	for attempt := 0; attempt < createAttempts; attempt++ {
		var formalID string
		var err error

		if attempt == 0 {
			formalID, err = uc.gen.Next(ctx)
		} else {
			formalID, err = uc.gen.NextFromStore(ctx)
		}
		if err != nil {
			return err
		}

		res.FormalID = formalID
		if err := uc.repo.CreateReservation(ctx, res); err != nil {
			if httperr.IsUniqueViolation(err) {
				lastErr = err
				continue
			}
			return err
		}

		return nil
	}

	return lastErr
}

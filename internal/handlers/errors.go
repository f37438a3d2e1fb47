package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
)

// Validation and conflict errors surface their human-readable reason;
// store and unknown errors surface a generic message (detail stays in
// server logs).
func writeDomainError(c *gin.Context, err error) {

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Reservation or record not found.")
		return
	}

	var partial *domain.PartialGroupError
	if errors.As(err, &partial) {
		httperr.Internal(c, "partial_group_failure", partial.Error())
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "not_available":
			reason := be.Reason
			if reason == "" {
				reason = "The selected dates are not available."
			}
			httperr.Conflict(c, be.Code, reason)
		case "invalid_state", "reschedule_already_pending", "no_pending_reschedule":
			httperr.Conflict(c, be.Code, businessMessage(be.Code))
		case "service_not_found", "promo_not_found":
			httperr.NotFound(c, be.Code, businessMessage(be.Code))
		default:
			httperr.BadRequest(c, be.Code, businessMessage(be.Code))
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
}

func businessMessage(code string) string {
	switch code {
	case "missing_guest_info":
		return "Guest name and phone are required."
	case "missing_service":
		return "A service is required."
	case "service_not_found":
		return "Service not found."
	case "service_inactive":
		return "This service is not currently bookable."
	case "invalid_date_or_time":
		return "Invalid date or time."
	case "check_in_in_past":
		return "Check-in must be in the future."
	case "pricing_option_not_found":
		return "Selected duration or time slot not found."
	case "invalid_time_slot":
		return "The service's time slot definition is invalid."
	case "promo_not_found":
		return "Promo code not found."
	case "invalid_state":
		return "The reservation cannot take this action in its current state."
	case "reschedule_already_pending":
		return "A reschedule request is already pending for this reservation."
	case "reschedule_too_soon":
		return "The proposed check-in must be at least 14 days away."
	case "no_pending_reschedule":
		return "There is no pending reschedule request."
	case "missing_receipt":
		return "A receipt file reference is required."
	case "empty_checkout":
		return "The checkout contains no items."
	case "unknown_action":
		return "Unknown action."
	}
	return "Invalid request."
}

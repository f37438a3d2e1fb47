package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/httpresp"
	ucReservation "github.com/TerraRicaResort/resort-booking/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	check *ucReservation.CheckAvailability
	loc   *time.Location
}

func NewAvailabilityHandler(
	check *ucReservation.CheckAvailability,
	loc *time.Location,
) *AvailabilityHandler {
	return &AvailabilityHandler{check: check, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckAvailabilityRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`  // 2006-01-02 15:04
	CheckOut  string `json:"check_out" binding:"required"` // 2006-01-02 15:04
}

// ======================================================
// CHECK
// ======================================================

func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Service and check-in/check-out are required.")
		return
	}

	checkIn, err1 := time.ParseInLocation("2006-01-02 15:04", req.CheckIn, h.loc)
	checkOut, err2 := time.ParseInLocation("2006-01-02 15:04", req.CheckOut, h.loc)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	result, err := h.check.Execute(c.Request.Context(), ucReservation.CheckAvailabilityInput{
		ServiceID: req.ServiceID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, result)
}

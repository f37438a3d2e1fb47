package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/dto"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/httpresp"
	"github.com/TerraRicaResort/resort-booking/internal/middleware"
	ucReservation "github.com/TerraRicaResort/resort-booking/internal/usecase/reservation"
)

// ======================================================
// HANDLER (staff surface)
// ======================================================

type StaffReservationHandler struct {
	db *gorm.DB

	groupAction       *ucReservation.ApplyGroupAction
	checkIn           *ucReservation.CheckInReservation
	checkOut          *ucReservation.CheckOutReservation
	resolveReschedule *ucReservation.ResolveReschedule

	repo domain.Repository
	loc  *time.Location
}

func NewStaffReservationHandler(
	db *gorm.DB,
	groupAction *ucReservation.ApplyGroupAction,
	checkIn *ucReservation.CheckInReservation,
	checkOut *ucReservation.CheckOutReservation,
	resolveReschedule *ucReservation.ResolveReschedule,
	repo domain.Repository,
	loc *time.Location,
) *StaffReservationHandler {
	return &StaffReservationHandler{
		db:                db,
		groupAction:       groupAction,
		checkIn:           checkIn,
		checkOut:          checkOut,
		resolveReschedule: resolveReschedule,
		repo:              repo,
		loc:               loc,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *StaffReservationHandler) List(c *gin.Context) {
	fromStr := c.DefaultQuery("from", time.Now().In(h.loc).Format("2006-01-02"))
	toStr := c.Query("to")
	status := c.Query("status")

	from, err := parseDate(h.loc, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid from date.")
		return
	}

	to := from.AddDate(0, 1, 0)
	if toStr != "" {
		parsed, err := parseDate(h.loc, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date.")
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	rs, err := h.repo.ListReservationsForPeriod(c.Request.Context(), from, to, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		return
	}

	out := make([]dto.ReservationListDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.ReservationListDTO{
			ID:            r.ID,
			FormalID:      r.FormalID,
			ServiceName:   r.Service.Name,
			GuestName:     r.GuestName,
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			Status:        r.Status,
			PaymentStatus: r.PaymentStatus,
			GroupID:       r.MultiAmenityGroupID,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// GROUP ACTIONS (approve / reject / cancel)
// ======================================================

func (h *StaffReservationHandler) Approve(c *gin.Context) {
	h.applyAction(c, domain.ActionApprove)
}

func (h *StaffReservationHandler) Reject(c *gin.Context) {
	h.applyAction(c, domain.ActionReject)
}

func (h *StaffReservationHandler) Cancel(c *gin.Context) {
	h.applyAction(c, domain.ActionCancel)
}

func (h *StaffReservationHandler) applyAction(c *gin.Context, action domain.GroupAction) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.paramID(c)
	if !ok {
		return
	}

	affected, err := h.groupAction.Execute(c.Request.Context(), id, action, &staffID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action":   string(action),
		"affected": affected,
	})
}

// ======================================================
// CHECK-IN / CHECK-OUT
// ======================================================

func (h *StaffReservationHandler) CheckIn(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.paramID(c)
	if !ok {
		return
	}

	res, err := h.checkIn.Execute(c.Request.Context(), id, staffID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *StaffReservationHandler) CheckOut(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.paramID(c)
	if !ok {
		return
	}

	res, err := h.checkOut.Execute(c.Request.Context(), id, staffID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// RESCHEDULE DECISIONS
// ======================================================

type RejectRescheduleRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *StaffReservationHandler) ApproveReschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.paramID(c)
	if !ok {
		return
	}

	res, err := h.resolveReschedule.Approve(c.Request.Context(), id, staffID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *StaffReservationHandler) RejectReschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req RejectRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A rejection reason is required.")
		return
	}

	res, err := h.resolveReschedule.Reject(c.Request.Context(), id, staffID, req.Reason)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *StaffReservationHandler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return 0, false
	}
	return uint(id), true
}

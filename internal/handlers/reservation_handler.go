package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/models"
	ucReservation "github.com/TerraRicaResort/resort-booking/internal/usecase/reservation"
)

// ======================================================
// HANDLER (public, capability-hash surface)
// ======================================================

type ReservationHandler struct {
	db *gorm.DB

	create        *ucReservation.CreateReservation
	createGroup   *ucReservation.CreateReservationGroup
	submitReceipt *ucReservation.SubmitReceipt
	reschedule    *ucReservation.RequestReschedule
	groupAction   *ucReservation.ApplyGroupAction
}

func NewReservationHandler(
	db *gorm.DB,
	create *ucReservation.CreateReservation,
	createGroup *ucReservation.CreateReservationGroup,
	submitReceipt *ucReservation.SubmitReceipt,
	reschedule *ucReservation.RequestReschedule,
	groupAction *ucReservation.ApplyGroupAction,
) *ReservationHandler {
	return &ReservationHandler{
		db:            db,
		create:        create,
		createGroup:   createGroup,
		submitReceipt: submitReceipt,
		reschedule:    reschedule,
		groupAction:   groupAction,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	PricingOptionID uint   `json:"pricing_option_id" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:mm

	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
	GuestEmail string `json:"guest_email"`
	GuestCount int    `json:"guest_count"`

	Notes     string `json:"notes"`
	PromoCode string `json:"promo_code"`
}

type CreateGroupItemRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	PricingOptionID uint   `json:"pricing_option_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
}

type CreateGroupRequest struct {
	Items []CreateGroupItemRequest `json:"items" binding:"required,min=1,dive"`

	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
	GuestEmail string `json:"guest_email"`
	GuestCount int    `json:"guest_count"`

	Notes     string `json:"notes"`
	PromoCode string `json:"promo_code"`
}

type SubmitReceiptRequest struct {
	Filename    string `json:"filename" binding:"required"`
	FullPayment bool   `json:"full_payment"`
}

type RescheduleRequestBody struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE (single)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed reservation fields.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		ServiceID:       req.ServiceID,
		PricingOptionID: req.PricingOptionID,
		Date:            req.Date,
		Time:            req.Time,
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestEmail:      req.GuestEmail,
		GuestCount:      req.GuestCount,
		Notes:           req.Notes,
		PromoCode:       req.PromoCode,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation_id":   res.ID,
		"formal_id":        res.FormalID,
		"reservation_hash": res.Hash,
		"check_in":         res.CheckIn,
		"check_out":        res.CheckOut,
		"total_price":      res.TotalPrice,
		"discount_amount":  res.DiscountAmount,
		"downpayment":      res.DownpaymentAmount,
	})
}

// ======================================================
// CREATE (multi-amenity)
// ======================================================

func (h *ReservationHandler) CreateMulti(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed checkout fields.")
		return
	}

	items := make([]ucReservation.GroupItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ucReservation.GroupItem{
			ServiceID:       it.ServiceID,
			PricingOptionID: it.PricingOptionID,
			Date:            it.Date,
			Time:            it.Time,
		})
	}

	created, err := h.createGroup.Execute(c.Request.Context(), ucReservation.CreateGroupInput{
		Items:      items,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		GuestCount: req.GuestCount,
		Notes:      req.Notes,
		PromoCode:  req.PromoCode,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(created))
	for _, res := range created {
		out = append(out, gin.H{
			"reservation_id":   res.ID,
			"formal_id":        res.FormalID,
			"reservation_hash": res.Hash,
			"service_id":       res.ServiceID,
			"check_in":         res.CheckIn,
			"check_out":        res.CheckOut,
			"group_id":         res.MultiAmenityGroupID,
			"group_index":      res.MultiAmenityIndex,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"reservations": out})
}

// ======================================================
// LOOKUP / ACTIONS BY HASH
// ======================================================

func (h *ReservationHandler) GetByHash(c *gin.Context) {
	res, ok := h.findByHash(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) SubmitReceipt(c *gin.Context) {
	var req SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A receipt filename is required.")
		return
	}

	res, err := h.submitReceipt.Execute(c.Request.Context(), ucReservation.SubmitReceiptInput{
		Hash:        c.Param("hash"),
		Filename:    req.Filename,
		FullPayment: req.FullPayment,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Cancel through the capability hash; on a multi-amenity reservation the
// cancellation reaches every group member.
func (h *ReservationHandler) CancelByHash(c *gin.Context) {
	res, ok := h.findByHash(c)
	if !ok {
		return
	}

	affected, err := h.groupAction.Execute(
		c.Request.Context(),
		res.ID,
		domain.ActionCancel,
		nil,
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": affected})
}

func (h *ReservationHandler) RequestReschedule(c *gin.Context) {
	var req RescheduleRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A proposed date and time are required.")
		return
	}

	res, err := h.reschedule.Execute(c.Request.Context(), ucReservation.RequestRescheduleInput{
		Hash:   c.Param("hash"),
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) findByHash(c *gin.Context) (*models.Reservation, bool) {
	hash := c.Param("hash")

	var res models.Reservation
	if err := h.db.
		Preload("Service").
		Where("hash = ?", hash).
		First(&res).Error; err != nil {

		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return nil, false
	}

	return &res, true
}

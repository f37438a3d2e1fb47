package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/httpresp"
	"github.com/TerraRicaResort/resort-booking/internal/middleware"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedRangeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewBlockedRangeHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, loc *time.Location) *BlockedRangeHandler {
	return &BlockedRangeHandler{db: db, audit: auditDispatcher, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockedRangeRequest struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason" binding:"required"`

	AppliesToAllServices bool   `json:"applies_to_all_services"`
	ServiceIDs           []uint `json:"service_ids"`
}

// ======================================================
// LIST (public — UI calendars and the checker consume this)
// ======================================================

func (h *BlockedRangeHandler) List(c *gin.Context) {
	var ranges []models.BlockedRange
	if err := h.db.
		Preload("Services").
		Order("start_date ASC").
		Find(&ranges).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_ranges", "Could not list blocked ranges.")
		return
	}

	httpresp.List(c, ranges)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockedRangeHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Start date, end date and reason are required.")
		return
	}

	start, err1 := parseDate(h.loc, req.StartDate)
	end, err2 := parseDate(h.loc, req.EndDate)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_range", "End date must not precede start date.")
		return
	}

	// Ranges effective today are fine; strictly past starts are not.
	today := domain.DayFloor(time.Now().In(h.loc))
	if start.Before(today) {
		httperr.BadRequest(c, "start_in_past", "Start date may not be in the past.")
		return
	}

	if !req.AppliesToAllServices && len(req.ServiceIDs) == 0 {
		httperr.BadRequest(c, "missing_services", "Select services or apply the block to all of them.")
		return
	}

	br := models.BlockedRange{
		StartDate:            start,
		EndDate:              end,
		Reason:               req.Reason,
		AppliesToAllServices: req.AppliesToAllServices,
		CreatedByID:          &staffID,
	}

	if !req.AppliesToAllServices {
		for _, sid := range req.ServiceIDs {
			br.Services = append(br.Services, models.BlockedRangeService{ServiceID: sid})
		}
	}

	if err := h.db.Create(&br).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_range", "Could not create the blocked range.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "blocked_range_created",
		Entity:   "blocked_range",
		EntityID: &br.ID,
		Metadata: map[string]any{"reason": br.Reason},
	})

	c.JSON(http.StatusCreated, br)
}

// ======================================================
// DELETE (hard delete; ranges are never mutated)
// ======================================================

func (h *BlockedRangeHandler) Delete(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid blocked range id.")
		return
	}

	var br models.BlockedRange
	if err := h.db.First(&br, id).Error; err != nil {
		httperr.NotFound(c, "blocked_range_not_found", "Blocked range not found.")
		return
	}

	if err := h.db.Delete(&br).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_range", "Could not delete the blocked range.")
		return
	}

	rid := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "blocked_range_deleted",
		Entity:   "blocked_range",
		EntityID: &rid,
	})

	c.Status(http.StatusNoContent)
}

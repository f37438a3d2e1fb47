package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/httpresp"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

// The pricing mode is a tagged choice made when the service is defined:
// exactly one of durations/time_slots is accepted, matching the mode.

type DurationInput struct {
	Label string  `json:"label"`
	Hours int     `json:"hours" binding:"required,min=1"`
	Price float64 `json:"price" binding:"required"`
}

type TimeSlotInput struct {
	Label     string  `json:"label"`
	StartTime string  `json:"start_time" binding:"required"` // HH:MM
	EndTime   string  `json:"end_time" binding:"required"`   // HH:MM
	Price     float64 `json:"price" binding:"required"`
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`

	PricingMode string          `json:"pricing_mode" binding:"required,oneof=duration time_slot"`
	Durations   []DurationInput `json:"durations"`
	TimeSlots   []TimeSlotInput `json:"time_slots"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Capacity    *int    `json:"capacity"`
	Active      *bool   `json:"active"`
}

// ======================================================
// PUBLIC LISTING
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Preload("Durations").
		Preload("TimeSlots").
		Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Preload("Durations").
		Preload("TimeSlots").
		First(&svc, id).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// STAFF CRUD
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed service fields.")
		return
	}

	switch req.PricingMode {
	case models.PricingModeDuration:
		if len(req.Durations) == 0 || len(req.TimeSlots) > 0 {
			httperr.BadRequest(c, "invalid_pricing", "Duration-priced services take durations only.")
			return
		}
	case models.PricingModeTimeSlot:
		if len(req.TimeSlots) == 0 || len(req.Durations) > 0 {
			httperr.BadRequest(c, "invalid_pricing", "Slot-priced services take time slots only.")
			return
		}
	}

	svc := models.Service{
		Name:        req.Name,
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Description: req.Description,
		Category:    req.Category,
		Capacity:    req.Capacity,
		Active:      true,
		PricingMode: req.PricingMode,
	}

	for _, d := range req.Durations {
		svc.Durations = append(svc.Durations, models.ServiceDuration{
			Label: d.Label,
			Hours: d.Hours,
			Price: d.Price,
		})
	}
	for _, s := range req.TimeSlots {
		svc.TimeSlots = append(svc.TimeSlots, models.ServiceTimeSlot{
			Label:     s.Label,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.Price,
		})
	}

	if err := h.db.Create(&svc).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "slug_already_exists", "A service with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed service fields.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Capacity != nil {
		svc.Capacity = *req.Capacity
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	httpresp.OK(c, svc)
}

// Delete deactivates rather than removes: existing reservations keep
// their service reference and history.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	svc.Active = false
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	c.Status(http.StatusNoContent)
}

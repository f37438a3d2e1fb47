package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/httperr"
	"github.com/TerraRicaResort/resort-booking/internal/httpresp"
	"github.com/TerraRicaResort/resort-booking/internal/models"
)

type PromoHandler struct {
	db *gorm.DB
}

func NewPromoHandler(db *gorm.DB) *PromoHandler {
	return &PromoHandler{db: db}
}

// --------- Requests ---------

type ValidatePromoRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required"`
}

type CreatePromoRequest struct {
	Code       string     `json:"code" binding:"required"`
	PercentOff float64    `json:"percent_off" binding:"required,gt=0,lte=100"`
	ValidFrom  *time.Time `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until"`
}

// --------- Public ---------

func (h *PromoHandler) Validate(c *gin.Context) {
	var req ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A promo code and subtotal are required.")
		return
	}

	var promo models.PromoCode
	if err := h.db.Where("code = ?", req.Code).First(&promo).Error; err != nil {
		httperr.NotFound(c, "promo_not_found", "Promo code not found.")
		return
	}

	discount := domain.ApplyPromo(&promo, req.Subtotal, time.Now())
	if discount == 0 {
		httperr.BadRequest(c, "promo_not_applicable", "This promo code is not currently redeemable.")
		return
	}

	httpresp.OK(c, gin.H{
		"code":     promo.Code,
		"discount": discount,
	})
}

// --------- Staff ---------

func (h *PromoHandler) List(c *gin.Context) {
	var promos []models.PromoCode
	if err := h.db.Order("id ASC").Find(&promos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_promos", "Could not list promo codes.")
		return
	}
	httpresp.List(c, promos)
}

func (h *PromoHandler) Create(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A code and percent-off are required.")
		return
	}

	promo := models.PromoCode{
		Code:       req.Code,
		PercentOff: req.PercentOff,
		Active:     true,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
	}

	if err := h.db.Create(&promo).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "code_already_exists", "A promo with this code already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_promo", "Could not create the promo code.")
		return
	}

	c.JSON(http.StatusCreated, promo)
}

func (h *PromoHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid promo id.")
		return
	}

	var promo models.PromoCode
	if err := h.db.First(&promo, id).Error; err != nil {
		httperr.NotFound(c, "promo_not_found", "Promo code not found.")
		return
	}

	promo.Active = false
	if err := h.db.Save(&promo).Error; err != nil {
		httperr.Internal(c, "failed_to_update_promo", "Could not update the promo code.")
		return
	}

	c.JSON(http.StatusOK, promo)
}

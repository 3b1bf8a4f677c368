package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	NameAr        string          `json:"name_ar" binding:"required"`
	NameFr        string          `json:"name_fr" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	DurationMin   int             `json:"duration_min" binding:"required"`
	DescriptionAr string          `json:"description_ar"`
	DescriptionFr string          `json:"description_fr"`
	Color         string          `json:"color"`
}

type UpdateServiceRequest struct {
	NameAr        *string          `json:"name_ar,omitempty"`
	NameFr        *string          `json:"name_fr,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	DurationMin   *int             `json:"duration_min,omitempty"`
	DescriptionAr *string          `json:"description_ar,omitempty"`
	DescriptionFr *string          `json:"description_fr,omitempty"`
	Color         *string          `json:"color,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var services []models.Service
	if err := q.Order("category ASC, name_fr ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}
	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
		return
	}

	svc := models.Service{
		NameAr:        req.NameAr,
		NameFr:        req.NameFr,
		Category:      req.Category,
		Price:         req.Price,
		DurationMin:   req.DurationMin,
		DescriptionAr: req.DescriptionAr,
		DescriptionFr: req.DescriptionFr,
		Color:         req.Color,
		IsActive:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
		return
	}

	if req.NameAr != nil {
		svc.NameAr = *req.NameAr
	}
	if req.NameFr != nil {
		svc.NameFr = *req.NameFr
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.DescriptionAr != nil {
		svc.DescriptionAr = *req.DescriptionAr
	}
	if req.DescriptionFr != nil {
		svc.DescriptionFr = *req.DescriptionFr
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// Deactivate soft-disables a service so existing history keeps its rows.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Model(&models.Service{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_deactivate_service", "Could not deactivate service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated."})
}

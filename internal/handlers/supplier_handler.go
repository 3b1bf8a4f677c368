package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

type SupplierHandler struct {
	db *gorm.DB
}

func NewSupplierHandler(db *gorm.DB) *SupplierHandler {
	return &SupplierHandler{db: db}
}

// --------- Requests ---------

type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *SupplierHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var suppliers []models.Supplier
	if err := q.Order("name ASC").Find(&suppliers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_suppliers", "Could not list suppliers.")
		return
	}

	httpresp.List(c, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := h.db.First(&supplier, id).Error; err != nil {
		httperr.NotFound(c, "supplier_not_found", "Supplier not found.")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	supplier := models.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Address:       req.Address,
		City:          req.City,
		IsActive:      true,
	}

	if err := h.db.Create(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supplier", "Could not create supplier.")
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := h.db.First(&supplier, id).Error; err != nil {
		httperr.NotFound(c, "supplier_not_found", "Supplier not found.")
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := h.db.Save(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supplier", "Could not update supplier.")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// Orders lists the supplier's purchase orders, newest first.
func (h *SupplierHandler) Orders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var orders []models.PurchaseOrder
	if err := h.db.
		Preload("Items").
		Where("supplier_id = ?", id).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list purchase orders.")
		return
	}

	httpresp.List(c, orders)
}

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

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	NameAr        string          `json:"name_ar" binding:"required"`
	NameFr        string          `json:"name_fr" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	ExpiryDate    string          `json:"expiry_date"`
	SupplierID    *uint           `json:"supplier_id"`
}

type UpdateProductRequest struct {
	NameAr        *string          `json:"name_ar,omitempty"`
	NameFr        *string          `json:"name_fr,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	MinStock      *int             `json:"min_stock,omitempty"`
	ExpiryDate    *string          `json:"expiry_date,omitempty"`
	SupplierID    *uint            `json:"supplier_id,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var products []models.Product
	if err := q.Order("name_fr ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	c.JSON(http.StatusOK, product)
}

// LowStock lists active products at or below their reorder threshold.
func (h *ProductHandler) LowStock(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Where("is_active = ? AND stock <= min_stock", true).
		Order("stock ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Price.IsNegative() || req.PurchasePrice.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Prices cannot be negative.")
		return
	}
	if req.Stock < 0 || req.MinStock < 0 {
		httperr.BadRequest(c, "invalid_stock", "Stock values cannot be negative.")
		return
	}

	product := models.Product{
		NameAr:        req.NameAr,
		NameFr:        req.NameFr,
		Category:      req.Category,
		Price:         req.Price,
		PurchasePrice: req.PurchasePrice,
		Stock:         req.Stock,
		MinStock:      req.MinStock,
		ExpiryDate:    req.ExpiryDate,
		SupplierID:    req.SupplierID,
		IsActive:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Could not create product.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update edits catalog fields only. Stock moves through AdjustStock, sales
// and purchase receipts so every change stays a relative increment.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		httperr.BadRequest(c, "invalid_stock", "Minimum stock cannot be negative.")
		return
	}

	if req.NameAr != nil {
		product.NameAr = *req.NameAr
	}
	if req.NameFr != nil {
		product.NameFr = *req.NameFr
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.ExpiryDate != nil {
		product.ExpiryDate = *req.ExpiryDate
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Could not update product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

// AdjustStock applies a signed correction as a relative increment. Negative
// deltas are guarded so stock never goes below zero.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == 0 {
		httperr.BadRequest(c, "invalid_request", "Delta must be a non-zero integer.")
		return
	}

	q := h.db.Model(&models.Product{}).Where("id = ?", id)
	if req.Delta < 0 {
		q = q.Where("stock >= ?", -req.Delta)
	}

	res := q.Update("stock", gorm.Expr("stock + ?", req.Delta))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_adjust_stock", "Could not adjust stock.")
		return
	}
	if res.RowsAffected == 0 {
		var exists int64
		h.db.Model(&models.Product{}).Where("id = ?", id).Count(&exists)
		if exists == 0 {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.Conflict(c, "insufficient_stock", "Stock cannot go below zero.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.Internal(c, "failed_to_adjust_stock", "Could not reload product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

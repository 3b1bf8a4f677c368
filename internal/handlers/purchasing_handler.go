package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/salonops/salon-manager/internal/domain/purchasing"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
	ucpurchasing "github.com/salonops/salon-manager/internal/usecase/purchasing"
)

type PurchasingHandler struct {
	db           *gorm.DB
	postPurchase *ucpurchasing.PostPurchase
	paySupplier  *ucpurchasing.PaySupplier
}

func NewPurchasingHandler(
	db *gorm.DB,
	postPurchase *ucpurchasing.PostPurchase,
	paySupplier *ucpurchasing.PaySupplier,
) *PurchasingHandler {
	return &PurchasingHandler{
		db:           db,
		postPurchase: postPurchase,
		paySupplier:  paySupplier,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PurchaseLineRequest struct {
	// Omit product_id to create a new product from this line.
	ProductID uint            `json:"product_id"`
	NameAr    string          `json:"name_ar"`
	NameFr    string          `json:"name_fr"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

type PostPurchaseRequest struct {
	SupplierID    uint                  `json:"supplier_id" binding:"required"`
	Lines         []PurchaseLineRequest `json:"lines" binding:"required,min=1"`
	PaymentStatus string                `json:"payment_status" binding:"required,oneof=paid partial credit"`
	PartialAmount decimal.Decimal       `json:"partial_amount"`
	PaymentMethod string                `json:"payment_method"`
	Notes         string                `json:"notes"`
}

type PaySupplierRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// ======================================================
// POST PURCHASE
// ======================================================

func (h *PurchasingHandler) PostPurchase(c *gin.Context) {
	var req PostPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	lines := make([]domain.Line, 0, len(req.Lines))
	for _, rl := range req.Lines {
		lines = append(lines, domain.Line{
			ProductID: rl.ProductID,
			NameAr:    rl.NameAr,
			NameFr:    rl.NameFr,
			Category:  rl.Category,
			Quantity:  rl.Quantity,
			UnitPrice: rl.UnitPrice,
		})
	}

	order, err := h.postPurchase.Execute(c.Request.Context(), ucpurchasing.PostPurchaseInput{
		SupplierID:    req.SupplierID,
		Lines:         lines,
		PaymentStatus: req.PaymentStatus,
		PartialAmount: req.PartialAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_post_purchase")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ======================================================
// SUPPLIER PAYMENT
// ======================================================

func (h *PurchasingHandler) PaySupplier(c *gin.Context) {
	supplierID, ok := paramID(c)
	if !ok {
		return
	}

	var req PaySupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	payment, err := h.paySupplier.Execute(c.Request.Context(), ucpurchasing.PaySupplierInput{
		SupplierID:    supplierID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_pay_supplier")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ======================================================
// LIST
// ======================================================

func (h *PurchasingHandler) ListOrders(c *gin.Context) {
	q := h.db.Preload("Items").Order("created_at DESC").Limit(200)

	if supplierID := c.Query("supplier_id"); supplierID != "" {
		q = q.Where("supplier_id = ?", supplierID)
	}

	var orders []models.PurchaseOrder
	if err := q.Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list purchase orders.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *PurchasingHandler) ListPayments(c *gin.Context) {
	supplierID, ok := paramID(c)
	if !ok {
		return
	}

	var payments []models.SupplierPayment
	if err := h.db.
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Could not list supplier payments.")
		return
	}

	c.JSON(http.StatusOK, payments)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/salonops/salon-manager/internal/domain/checkout"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
	uccheckout "github.com/salonops/salon-manager/internal/usecase/checkout"
)

type CheckoutHandler struct {
	db       *gorm.DB
	postSale *uccheckout.PostSale
}

func NewCheckoutHandler(db *gorm.DB, postSale *uccheckout.PostSale) *CheckoutHandler {
	return &CheckoutHandler{db: db, postSale: postSale}
}

// ======================================================
// REQUESTS
// ======================================================

type CartLineRequest struct {
	ItemType string `json:"item_type" binding:"required,oneof=product service"`
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type PostSaleRequest struct {
	Lines           []CartLineRequest `json:"lines" binding:"required,min=1"`
	PaymentMethod   string            `json:"payment_method" binding:"required,oneof=cash card credit"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	ClientID        *uint             `json:"client_id"`
	StaffID         *uint             `json:"staff_id"`
	AmountPaid      decimal.Decimal   `json:"amount_paid"`
	AppointmentID   *uint             `json:"appointment_id"`
}

// buildLines resolves cart references against the catalog, capturing the
// current price on each line.
func (h *CheckoutHandler) buildLines(reqLines []CartLineRequest) ([]domain.Line, error) {
	lines := make([]domain.Line, 0, len(reqLines))

	for _, rl := range reqLines {
		switch rl.ItemType {
		case models.ItemTypeProduct:
			var p models.Product
			if err := h.db.First(&p, rl.ItemID).Error; err != nil {
				return nil, httperr.ErrBusiness("product_not_found")
			}
			lines = append(lines, domain.ProductLine{
				ProductID: p.ID,
				NameAr:    p.NameAr,
				NameFr:    p.NameFr,
				UnitPrice: p.Price,
				Quantity:  rl.Quantity,
			})
		case models.ItemTypeService:
			var s models.Service
			if err := h.db.First(&s, rl.ItemID).Error; err != nil {
				return nil, httperr.ErrBusiness("service_not_found")
			}
			lines = append(lines, domain.ServiceLine{
				ServiceID: s.ID,
				NameAr:    s.NameAr,
				NameFr:    s.NameFr,
				UnitPrice: s.Price,
				Quantity:  rl.Quantity,
			})
		}
	}

	return lines, nil
}

// ======================================================
// POST SALE
// ======================================================

func (h *CheckoutHandler) PostSale(c *gin.Context) {
	var req PostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	lines, err := h.buildLines(req.Lines)
	if err != nil {
		writeBusinessError(c, err, "failed_to_build_cart")
		return
	}

	res, err := h.postSale.Execute(c.Request.Context(), uccheckout.PostSaleInput{
		Lines:           lines,
		PaymentMethod:   req.PaymentMethod,
		DiscountPercent: req.DiscountPercent,
		ClientID:        req.ClientID,
		StaffID:         req.StaffID,
		AmountPaid:      req.AmountPaid,
		AppointmentID:   req.AppointmentID,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_post_sale")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction":      res.Transaction,
		"credit_remaining": res.CreditRemaining,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *CheckoutHandler) List(c *gin.Context) {
	q := h.db.Preload("Items").Order("created_at DESC").Limit(200)

	if from := c.Query("from"); from != "" {
		q = q.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("created_at < ?", to)
	}

	var txs []models.Transaction
	if err := q.Find(&txs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_transactions", "Could not list transactions.")
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var tx models.Transaction
	if err := h.db.Preload("Items").First(&tx, id).Error; err != nil {
		httperr.NotFound(c, "transaction_not_found", "Transaction not found.")
		return
	}

	c.JSON(http.StatusOK, tx)
}

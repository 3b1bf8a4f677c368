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

type ExpenseHandler struct {
	db *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

func (h *ExpenseHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var expenses []models.Expense
	if err := q.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_expenses", "Could not list expenses.")
		return
	}

	httpresp.List(c, expenses)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		httperr.BadRequest(c, "invalid_amount", "Amount must be positive.")
		return
	}

	expense := models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Could not create expense.")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Expense{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Could not delete expense.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "expense_not_found", "Expense not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted."})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/salonops/salon-manager/internal/domain/appointment"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type ReportsHandler struct {
	db *gorm.DB
}

func NewReportsHandler(db *gorm.DB) *ReportsHandler {
	return &ReportsHandler{db: db}
}

// --------- Responses ---------

type RevenueReport struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	SalesTotal   decimal.Decimal `json:"sales_total"`
	SalesCount   int64           `json:"sales_count"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Net          decimal.Decimal `json:"net"`
	ByDay        []RevenueDay    `json:"by_day"`
}

type RevenueDay struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

type ServiceShare struct {
	ServiceID uint            `json:"service_id"`
	NameFr    string          `json:"name_fr"`
	NameAr    string          `json:"name_ar"`
	Count     int64           `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type StaffPerformance struct {
	StaffID          uint            `json:"staff_id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	CompletedVisits  int64           `json:"completed_visits"`
	SalesTotal       decimal.Decimal `json:"sales_total"`
	CommissionEarned decimal.Decimal `json:"commission_earned"`
}

// dateRange reads from/to query params, defaulting to an open range.
func dateRange(c *gin.Context) (string, string) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = "0000-01-01"
	}
	if to == "" {
		to = "9999-12-31"
	}
	return from, to
}

// --------- Handlers ---------

// Revenue aggregates sales and expenses over a date range with a per-day
// breakdown. Dates compare as strings because both sides are YYYY-MM-DD.
func (h *ReportsHandler) Revenue(c *gin.Context) {
	from, to := dateRange(c)

	var byDay []RevenueDay
	if err := h.db.Model(&models.Transaction{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("to_char(created_at, 'YYYY-MM-DD') BETWEEN ? AND ?", from, to).
		Group("day").
		Order("day ASC").
		Scan(&byDay).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build revenue report.")
		return
	}

	salesTotal := decimal.Zero
	var salesCount int64
	for _, d := range byDay {
		salesTotal = salesTotal.Add(d.Total)
		salesCount += d.Count
	}

	var expenseTotal decimal.NullDecimal
	if err := h.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&expenseTotal).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build revenue report.")
		return
	}

	c.JSON(http.StatusOK, RevenueReport{
		From:         from,
		To:           to,
		SalesTotal:   salesTotal,
		SalesCount:   salesCount,
		ExpenseTotal: expenseTotal.Decimal,
		Net:          salesTotal.Sub(expenseTotal.Decimal),
		ByDay:        byDay,
	})
}

// ServiceDistribution ranks services by how often they were sold and the
// revenue they brought in, from POS line items.
func (h *ReportsHandler) ServiceDistribution(c *gin.Context) {
	from, to := dateRange(c)

	var shares []ServiceShare
	if err := h.db.Model(&models.TransactionItem{}).
		Select(`transaction_items.item_id AS service_id,
			MAX(transaction_items.name_fr) AS name_fr,
			MAX(transaction_items.name_ar) AS name_ar,
			SUM(transaction_items.quantity) AS count,
			COALESCE(SUM(transaction_items.total), 0) AS revenue`).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transaction_items.item_type = ?", models.ItemTypeService).
		Where("to_char(transactions.created_at, 'YYYY-MM-DD') BETWEEN ? AND ?", from, to).
		Group("transaction_items.item_id").
		Order("revenue DESC").
		Scan(&shares).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build service report.")
		return
	}

	c.JSON(http.StatusOK, shares)
}

// StaffReport combines completed appointments, attributed sales and
// commission ledger entries per staff member.
func (h *ReportsHandler) StaffReport(c *gin.Context) {
	from, to := dateRange(c)

	var staff []models.Staff
	if err := h.db.Where("is_active = ?", true).Order("first_name ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build staff report.")
		return
	}

	out := make([]StaffPerformance, 0, len(staff))
	for _, m := range staff {
		row := StaffPerformance{
			StaffID:   m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
		}

		if err := h.db.Model(&models.Appointment{}).
			Where("staff_id = ? AND status = ? AND date BETWEEN ? AND ?", m.ID, domain.StatusCompleted, from, to).
			Count(&row.CompletedVisits).Error; err != nil {
			httperr.Internal(c, "failed_to_build_report", "Could not build staff report.")
			return
		}

		var sales decimal.NullDecimal
		if err := h.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(total), 0)").
			Where("staff_id = ? AND to_char(created_at, 'YYYY-MM-DD') BETWEEN ? AND ?", m.ID, from, to).
			Scan(&sales).Error; err != nil {
			httperr.Internal(c, "failed_to_build_report", "Could not build staff report.")
			return
		}
		row.SalesTotal = sales.Decimal

		var commission decimal.NullDecimal
		if err := h.db.Model(&models.StaffPayment{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("staff_id = ? AND type = ? AND to_char(created_at, 'YYYY-MM-DD') BETWEEN ? AND ?",
				m.ID, models.StaffPaymentCommission, from, to).
			Scan(&commission).Error; err != nil {
			httperr.Internal(c, "failed_to_build_report", "Could not build staff report.")
			return
		}
		row.CommissionEarned = commission.Decimal

		out = append(out, row)
	}

	c.JSON(http.StatusOK, out)
}

// Inventory reports current stock levels with purchase value tied up.
func (h *ReportsHandler) Inventory(c *gin.Context) {
	var products []models.Product
	if err := h.db.Where("is_active = ?", true).Order("stock ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build inventory report.")
		return
	}

	stockValue := decimal.Zero
	low := 0
	for _, p := range products {
		stockValue = stockValue.Add(p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.LowStock() {
			low++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":       products,
		"stock_value":    stockValue,
		"low_stock_rows": low,
	})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/httpresp"
	"github.com/salonops/salon-manager/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	FirstName      string          `json:"first_name" binding:"required"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Specialties    string          `json:"specialties"`
	SalaryType     string          `json:"salary_type"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	HireDate       string          `json:"hire_date"`
}

type UpdateStaffRequest struct {
	FirstName      *string          `json:"first_name,omitempty"`
	LastName       *string          `json:"last_name,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Specialties    *string          `json:"specialties,omitempty"`
	SalaryType     *string          `json:"salary_type,omitempty"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	CommissionRate *decimal.Decimal `json:"commission_rate,omitempty"`
	HireDate       *string          `json:"hire_date,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

type RecordStaffPaymentRequest struct {
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

type StaffBalanceResponse struct {
	StaffID uint            `json:"staff_id"`
	Due     decimal.Decimal `json:"due"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

func validSalaryType(t string) bool {
	return t == models.SalaryTypeMonthly || t == models.SalaryTypeCommission
}

func validStaffPaymentType(t string) bool {
	switch t {
	case models.StaffPaymentSalary, models.StaffPaymentCommission,
		models.StaffPaymentAdvance, models.StaffPaymentBonus, models.StaffPaymentDeduction:
		return true
	}
	return false
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var staff []models.Staff
	if err := q.Order("first_name ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	salaryType := req.SalaryType
	if salaryType == "" {
		salaryType = models.SalaryTypeMonthly
	}
	if !validSalaryType(salaryType) {
		httperr.BadRequest(c, "invalid_salary_type", "Salary type must be monthly or commission.")
		return
	}

	member := models.Staff{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Specialties:    req.Specialties,
		SalaryType:     salaryType,
		BaseSalary:     req.BaseSalary,
		CommissionRate: req.CommissionRate,
		HireDate:       req.HireDate,
		IsActive:       true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.SalaryType != nil && !validSalaryType(*req.SalaryType) {
		httperr.BadRequest(c, "invalid_salary_type", "Salary type must be monthly or commission.")
		return
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Specialties != nil {
		member.Specialties = *req.Specialties
	}
	if req.SalaryType != nil {
		member.SalaryType = *req.SalaryType
	}
	if req.BaseSalary != nil {
		member.BaseSalary = *req.BaseSalary
	}
	if req.CommissionRate != nil {
		member.CommissionRate = *req.CommissionRate
	}
	if req.HireDate != nil {
		member.HireDate = *req.HireDate
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	c.JSON(http.StatusOK, member)
}

// Payments lists the staff member's compensation ledger.
func (h *StaffHandler) Payments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var entries []models.StaffPayment
	if err := h.db.
		Where("staff_id = ?", id).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff_payments", "Could not list payments.")
		return
	}

	httpresp.List(c, entries)
}

func (h *StaffHandler) RecordPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RecordStaffPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if !validStaffPaymentType(req.Type) {
		httperr.BadRequest(c, "invalid_payment_type", "Unknown payment type.")
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		httperr.BadRequest(c, "invalid_amount", "Amount must be positive.")
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	entry := models.StaffPayment{
		StaffID:     member.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Could not record payment.")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Balance sums the ledger: salary, commission and bonus accrue money due;
// advance and deduction count as money already disbursed.
func (h *StaffHandler) Balance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var member models.Staff
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var entries []models.StaffPayment
	if err := h.db.Where("staff_id = ?", id).Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_compute_balance", "Could not compute balance.")
		return
	}

	due, paid := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.AccruesDue() {
			due = due.Add(e.Amount)
		} else {
			paid = paid.Add(e.Amount)
		}
	}

	c.JSON(http.StatusOK, StaffBalanceResponse{
		StaffID: member.ID,
		Due:     due,
		Paid:    paid,
		Balance: due.Sub(paid),
	})
}

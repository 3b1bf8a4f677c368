package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SalaryTypeMonthly    = "monthly"
	SalaryTypeCommission = "commission"
)

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100" json:"last_name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Specialties string `gorm:"size:255" json:"specialties"`

	SalaryType     string          `gorm:"size:20;default:'monthly'" json:"salary_type"`
	BaseSalary     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"base_salary"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"commission_rate"`

	HireDate string `gorm:"size:10" json:"hire_date"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StaffPaymentSalary     = "salary"
	StaffPaymentCommission = "commission"
	StaffPaymentAdvance    = "advance"
	StaffPaymentBonus      = "bonus"
	StaffPaymentDeduction  = "deduction"
)

// StaffPayment entries accumulate into a balance: salary, commission and
// bonus increase the amount due; advance and deduction increase the amount
// already disbursed. balance = due - paid.
type StaffPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `gorm:"index;not null" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type        string          `gorm:"size:20;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	ReferenceID *uint           `gorm:"index" json:"reference_id"`

	CreatedAt time.Time `json:"created_at"`
}

// AccruesDue reports whether the entry type counts toward money owed to the
// staff member rather than money already handed out.
func (p StaffPayment) AccruesDue() bool {
	switch p.Type {
	case StaffPaymentSalary, StaffPaymentCommission, StaffPaymentBonus:
		return true
	}
	return false
}

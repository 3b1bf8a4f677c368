package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:150;not null" json:"name"`
	ContactPerson string `gorm:"size:100" json:"contact_person"`
	Phone         string `gorm:"size:20" json:"phone"`
	Email         string `gorm:"size:100" json:"email"`
	Address       string `gorm:"size:255" json:"address"`
	City          string `gorm:"size:100" json:"city"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`

	// Positive = salon owes the supplier.
	Balance decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupplierPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SupplierID uint     `gorm:"index;not null" json:"supplier_id"`
	Supplier   Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentDate   string          `gorm:"size:10" json:"payment_date"`
	PaymentMethod string          `gorm:"size:20" json:"payment_method"`
	Notes         string          `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

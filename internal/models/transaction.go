package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodCredit = "credit"
)

const (
	ItemTypeProduct = "product"
	ItemTypeService = "service"
)

// Transaction is a POS sale header. Immutable after creation.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:40;uniqueIndex" json:"reference"`

	ClientID *uint `gorm:"index" json:"client_id"`
	StaffID  *uint `gorm:"index" json:"staff_id"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Discount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'paid'" json:"payment_status"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type TransactionItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TransactionID uint `gorm:"index;not null" json:"transaction_id"`

	ItemType string `gorm:"size:10;not null" json:"item_type"`
	ItemID   uint   `gorm:"not null" json:"item_id"`

	NameAr string `gorm:"size:150" json:"name_ar"`
	NameFr string `gorm:"size:150" json:"name_fr"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
}

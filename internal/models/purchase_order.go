package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PurchaseStatusPaid    = "paid"
	PurchaseStatusPartial = "partial"
	PurchaseStatusCredit  = "credit"
)

type PurchaseOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:40;uniqueIndex" json:"reference"`

	SupplierID uint     `gorm:"index;not null" json:"supplier_id"`
	Supplier   Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OrderDate string `gorm:"size:10" json:"order_date"`
	Status    string `gorm:"size:20;default:'credit'" json:"status"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Notes string `gorm:"size:255" json:"notes"`

	Items []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PurchaseOrderID uint `gorm:"index;not null" json:"purchase_order_id"`
	ProductID       uint `gorm:"index;not null" json:"product_id"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the authoritative on-hand quantity. It is only ever mutated with
// relative, store-side increments; a CHECK constraint keeps it non-negative.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NameAr   string `gorm:"size:150;not null" json:"name_ar"`
	NameFr   string `gorm:"size:150;not null" json:"name_fr"`
	Category string `gorm:"size:50" json:"category"`

	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"purchase_price"`

	Stock    int `gorm:"default:0" json:"stock"`
	MinStock int `gorm:"default:0" json:"min_stock"`

	ExpiryDate string `gorm:"size:10" json:"expiry_date"`
	SupplierID *uint  `gorm:"index" json:"supplier_id"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

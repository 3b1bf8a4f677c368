package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string          `gorm:"size:50;not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date        string          `gorm:"size:10;index" json:"date"`
	Description string          `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

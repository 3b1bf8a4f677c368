package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry. Appointments and POS lines capture the price
// at time of use, so later edits here never rewrite history.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NameAr   string `gorm:"size:150;not null" json:"name_ar"`
	NameFr   string `gorm:"size:150;not null" json:"name_fr"`
	Category string `gorm:"size:50" json:"category"`

	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`

	DescriptionAr string `gorm:"size:255" json:"description_ar"`
	DescriptionFr string `gorm:"size:255" json:"description_fr"`
	Color         string `gorm:"size:20" json:"color"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

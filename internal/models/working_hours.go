package models

import "time"

// WorkingHours is salon-wide configuration, one row per weekday
// (time.Weekday numbering, Sunday = 0). Open/Close are "HH:MM".
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int `gorm:"uniqueIndex" json:"weekday"`

	Open   string `gorm:"size:5" json:"open"`
	Close  string `gorm:"size:5" json:"close"`
	IsOpen bool   `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

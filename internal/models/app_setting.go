package models

import "time"

type AppSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

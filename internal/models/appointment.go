package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Date is a naive "YYYY-MM-DD" calendar date; StartTime/EndTime are
// zero-padded "HH:MM" strings, so lexicographic order matches time order.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StaffID *uint  `gorm:"index" json:"staff_id"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	Date      string `gorm:"size:10;index:idx_appointments_staff_day;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_amount"`

	// Set when the visit was settled through a POS sale; the completion
	// path skips its own loyalty award in that case.
	SettledTransactionID *uint `json:"settled_transaction_id"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID" json:"services"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService links an appointment to a catalog service, freezing the
// price at booking time.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`
	ServiceID     uint `gorm:"index;not null" json:"service_id"`

	PriceAtBooking decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_at_booking"`
}

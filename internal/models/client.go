package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier is derived from TotalSpent, never written directly by callers.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20;index" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	BirthDate string `gorm:"size:10" json:"birth_date"`
	Notes     string `gorm:"size:255" json:"notes"`

	LoyaltyPoints int             `gorm:"default:0" json:"loyalty_points"`
	Tier          string          `gorm:"size:20;default:'bronze'" json:"tier"`
	TotalSpent    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_spent"`
	VisitCount    int             `gorm:"default:0" json:"visit_count"`
	LastVisit     *time.Time      `json:"last_visit"`

	// Positive = client owes the salon.
	CreditBalance decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"credit_balance"`

	PreferredStaffID *uint `json:"preferred_staff_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ClientPaymentPurchase = "purchase"
	ClientPaymentPayment  = "payment"
	ClientPaymentCredit   = "credit"
)

// ClientPayment is an immutable ledger entry. "credit" entries add to the
// client's credit balance, "payment" entries settle it, "purchase" entries
// record money received without touching the balance.
type ClientPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type        string          `gorm:"size:20;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	ReferenceID *uint           `gorm:"index" json:"reference_id"`

	CreatedAt time.Time `json:"created_at"`
}

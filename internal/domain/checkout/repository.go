package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/models"
)

type StockDecrement struct {
	ProductID uint
	Qty       int
}

// ClientAward is the loyalty/statistics delta applied to the attached
// client, computed on the amount actually paid.
type ClientAward struct {
	ClientID uint
	Spend    decimal.Decimal
	Points   int
}

// Effects are the side writes a sale carries beyond its own header and
// items. The repository executes everything in a single transaction and
// fills ledger ReferenceIDs from the created transaction id.
type Effects struct {
	Stock         []StockDecrement
	Commission    *models.StaffPayment
	ClientEntries []models.ClientPayment
	CreditDelta   decimal.Decimal
	Award         *ClientAward

	// SettleAppointmentID marks the referenced appointment completed in
	// the same transaction, so a visit is settled exactly once.
	SettleAppointmentID *uint
}

type Repository interface {
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	StaffByID(ctx context.Context, id uint) (*models.Staff, error)
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	// PostSale writes the header, its items, and every effect atomically.
	// A guarded stock decrement that would go negative fails the whole
	// sale with an insufficient_stock business error.
	PostSale(
		ctx context.Context,
		sale *models.Transaction,
		items []models.TransactionItem,
		eff Effects,
	) error
}

package purchasing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/purchasing"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

// PaySupplier records a debt repayment outside of any new order.
type PaySupplier struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPaySupplier(repo domain.Repository, audit *audit.Dispatcher) *PaySupplier {
	return &PaySupplier{repo: repo, audit: audit}
}

type PaySupplierInput struct {
	SupplierID    uint
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
}

func (uc *PaySupplier) Execute(
	ctx context.Context,
	in PaySupplierInput,
) (*models.SupplierPayment, error) {

	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	supplier, err := uc.repo.SupplierByID(ctx, in.SupplierID)
	if err != nil {
		return nil, httperr.ErrBusiness("supplier_not_found")
	}

	payment := &models.SupplierPayment{
		SupplierID:    supplier.ID,
		Amount:        in.Amount,
		PaymentDate:   time.Now().Format("2006-01-02"),
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}

	if err := uc.repo.PostPayment(ctx, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "supplier_payment_posted",
		Entity:   "supplier_payment",
		EntityID: &payment.ID,
		Metadata: map[string]any{"amount": in.Amount},
	})

	return payment, nil
}

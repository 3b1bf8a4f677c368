package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/purchasing"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type PostPurchaseInput struct {
	SupplierID uint
	Lines      []domain.Line

	// PaymentStatus: paid | partial | credit.
	PaymentStatus string
	PartialAmount decimal.Decimal
	PaymentMethod string
	Notes         string
}

type PostPurchase struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPostPurchase(repo domain.Repository, audit *audit.Dispatcher) *PostPurchase {
	return &PostPurchase{repo: repo, audit: audit}
}

func (uc *PostPurchase) Execute(
	ctx context.Context,
	in PostPurchaseInput,
) (*models.PurchaseOrder, error) {

	if len(in.Lines) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 || l.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, httperr.ErrBusiness("invalid_line")
		}
		if l.NewProduct() && l.NameFr == "" && l.NameAr == "" {
			return nil, httperr.ErrBusiness("product_name_required")
		}
	}

	supplier, err := uc.repo.SupplierByID(ctx, in.SupplierID)
	if err != nil {
		return nil, httperr.ErrBusiness("supplier_not_found")
	}

	totals := domain.ComputeTotals(in.Lines)

	var payment *models.SupplierPayment
	today := time.Now().Format("2006-01-02")

	switch in.PaymentStatus {
	case models.PurchaseStatusCredit:
		// full amount stays owed
	case models.PurchaseStatusPaid:
		payment = &models.SupplierPayment{
			SupplierID:    supplier.ID,
			Amount:        totals.Total,
			PaymentDate:   today,
			PaymentMethod: in.PaymentMethod,
		}
	case models.PurchaseStatusPartial:
		if in.PartialAmount.LessThanOrEqual(decimal.Zero) ||
			in.PartialAmount.GreaterThan(totals.Total) {
			return nil, httperr.ErrBusiness("invalid_partial_amount")
		}
		payment = &models.SupplierPayment{
			SupplierID:    supplier.ID,
			Amount:        in.PartialAmount,
			PaymentDate:   today,
			PaymentMethod: in.PaymentMethod,
		}
	default:
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	order := &models.PurchaseOrder{
		Reference:  "PO-" + uuid.NewString()[:8],
		SupplierID: supplier.ID,
		OrderDate:  today,
		Status:     in.PaymentStatus,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Total:      totals.Total,
		Notes:      in.Notes,
	}

	// The repository creates/restocks products, writes the order and its
	// items, and moves the supplier balance in one transaction.
	if err := uc.repo.PostPurchase(ctx, order, in.Lines, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "purchase_posted",
		Entity:   "purchase_order",
		EntityID: &order.ID,
		Metadata: map[string]any{
			"supplier_id": supplier.ID,
			"total":       totals.Total,
			"status":      in.PaymentStatus,
		},
	})

	return order, nil
}

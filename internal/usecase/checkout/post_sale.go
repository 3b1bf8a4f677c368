package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	apdomain "github.com/salonops/salon-manager/internal/domain/appointment"
	domain "github.com/salonops/salon-manager/internal/domain/checkout"
	"github.com/salonops/salon-manager/internal/domain/loyalty"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PostSaleInput struct {
	Lines []domain.Line

	PaymentMethod   string
	DiscountPercent decimal.Decimal

	ClientID *uint
	StaffID  *uint

	// AmountPaid applies to credit sales only; clamped to [0, total].
	AmountPaid decimal.Decimal

	// AppointmentID settles that visit through this sale: the appointment
	// is completed in the same transaction and its own completion path
	// awards nothing, so loyalty accrues exactly once.
	AppointmentID *uint
}

type PostSaleResult struct {
	Transaction *models.Transaction

	// CreditRemaining is the portion of a credit sale left owing.
	CreditRemaining decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

type PostSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPostSale(repo domain.Repository, audit *audit.Dispatcher) *PostSale {
	return &PostSale{repo: repo, audit: audit}
}

func (uc *PostSale) Execute(
	ctx context.Context,
	in PostSaleInput,
) (*PostSaleResult, error) {

	if len(in.Lines) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}
	for _, l := range in.Lines {
		if l.Qty() <= 0 || l.Price().LessThan(decimal.Zero) {
			return nil, httperr.ErrBusiness("invalid_line")
		}
	}

	switch in.PaymentMethod {
	case models.PaymentMethodCash, models.PaymentMethodCard, models.PaymentMethodCredit:
	default:
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	if in.DiscountPercent.LessThan(decimal.Zero) ||
		in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, httperr.ErrBusiness("invalid_discount")
	}

	if in.PaymentMethod == models.PaymentMethodCredit && in.ClientID == nil {
		return nil, httperr.ErrBusiness("credit_requires_client")
	}

	var client *models.Client
	if in.ClientID != nil {
		var err error
		client, err = uc.repo.ClientByID(ctx, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
	}

	var staff *models.Staff
	if in.StaffID != nil {
		var err error
		staff, err = uc.repo.StaffByID(ctx, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
	}

	totals := domain.ComputeTotals(in.Lines, in.DiscountPercent)

	sale := &models.Transaction{
		Reference:     "SALE-" + uuid.NewString()[:8],
		ClientID:      in.ClientID,
		StaffID:       in.StaffID,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: "paid",
	}

	items := make([]models.TransactionItem, 0, len(in.Lines))
	eff := domain.Effects{CreditDelta: decimal.Zero}

	for _, l := range in.Lines {
		switch line := l.(type) {
		case domain.ProductLine:
			items = append(items, models.TransactionItem{
				ItemType:  models.ItemTypeProduct,
				ItemID:    line.ProductID,
				NameAr:    line.NameAr,
				NameFr:    line.NameFr,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Total:     line.Total(),
			})
			eff.Stock = append(eff.Stock, domain.StockDecrement{
				ProductID: line.ProductID,
				Qty:       line.Quantity,
			})
		case domain.ServiceLine:
			items = append(items, models.TransactionItem{
				ItemType:  models.ItemTypeService,
				ItemID:    line.ServiceID,
				NameAr:    line.NameAr,
				NameFr:    line.NameFr,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Total:     line.Total(),
			})
		default:
			return nil, httperr.ErrBusiness("invalid_line")
		}
	}

	// Commission accrues on service revenue only, for commission staff.
	if staff != nil && staff.SalaryType == models.SalaryTypeCommission {
		commission := domain.Commission(in.Lines, staff.CommissionRate)
		if commission.GreaterThan(decimal.Zero) {
			eff.Commission = &models.StaffPayment{
				StaffID:     staff.ID,
				Type:        models.StaffPaymentCommission,
				Amount:      commission,
				Description: "Commission " + sale.Reference,
			}
		}
	}

	// Client-side ledger, branching on payment method.
	paid := totals.Total
	remaining := decimal.Zero
	if in.PaymentMethod == models.PaymentMethodCredit {
		paid = domain.ClampPaid(in.AmountPaid, totals.Total)
		remaining = totals.Total.Sub(paid)

		eff.ClientEntries = append(eff.ClientEntries, models.ClientPayment{
			ClientID:    client.ID,
			Type:        models.ClientPaymentCredit,
			Amount:      remaining,
			Description: "Credit " + sale.Reference,
		})
		eff.CreditDelta = remaining

		if paid.GreaterThan(decimal.Zero) {
			eff.ClientEntries = append(eff.ClientEntries, models.ClientPayment{
				ClientID:    client.ID,
				Type:        models.ClientPaymentPurchase,
				Amount:      paid,
				Description: "Partial payment " + sale.Reference,
			})
		}
		sale.PaymentStatus = "credit"
	} else if client != nil {
		eff.ClientEntries = append(eff.ClientEntries, models.ClientPayment{
			ClientID:    client.ID,
			Type:        models.ClientPaymentPurchase,
			Amount:      totals.Total,
			Description: "Purchase " + sale.Reference,
		})
	}

	// Loyalty accrues on the amount actually paid.
	if client != nil {
		eff.Award = &domain.ClientAward{
			ClientID: client.ID,
			Spend:    paid,
			Points:   loyalty.PointsForSale(paid),
		}
	}

	if in.AppointmentID != nil {
		ap, err := uc.repo.AppointmentByID(ctx, *in.AppointmentID)
		if err != nil {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		if err := apdomain.CanComplete(apdomain.Status(ap.Status)); err != nil {
			return nil, err
		}
		// The sale must belong to the visit's client, otherwise the visit
		// gets completed without its client ever receiving an award.
		if in.ClientID == nil || *in.ClientID != ap.ClientID {
			return nil, httperr.ErrBusiness("client_mismatch")
		}
		eff.SettleAppointmentID = in.AppointmentID
	}

	if err := uc.repo.PostSale(ctx, sale, items, eff); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "sale_posted",
		Entity:   "transaction",
		EntityID: &sale.ID,
		Metadata: map[string]any{
			"total":  totals.Total,
			"method": in.PaymentMethod,
		},
	})

	return &PostSaleResult{
		Transaction:     sale,
		CreditRemaining: remaining,
	}, nil
}

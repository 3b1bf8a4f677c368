package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/checkout"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type fakeRepo struct {
	clients      map[uint]*models.Client
	staff        map[uint]*models.Staff
	appointments map[uint]*models.Appointment

	postedSale  *models.Transaction
	postedItems []models.TransactionItem
	postedEff   domain.Effects
	postErr     error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[uint]*models.Client{1: {ID: 1, FirstName: "Amina"}},
		staff: map[uint]*models.Staff{
			2: {ID: 2, SalaryType: models.SalaryTypeCommission, CommissionRate: decimal.NewFromInt(15)},
			3: {ID: 3, SalaryType: models.SalaryTypeMonthly},
		},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) ClientByID(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return c, nil
}

func (f *fakeRepo) StaffByID(ctx context.Context, id uint) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	return s, nil
}

func (f *fakeRepo) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (f *fakeRepo) PostSale(
	ctx context.Context,
	sale *models.Transaction,
	items []models.TransactionItem,
	eff domain.Effects,
) error {
	if f.postErr != nil {
		return f.postErr
	}
	sale.ID = 900
	f.postedSale = sale
	f.postedItems = items
	f.postedEff = eff
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func uintPtr(v uint) *uint { return &v }

func mixedCart() []domain.Line {
	return []domain.Line{
		domain.ServiceLine{ServiceID: 10, NameFr: "Coupe", UnitPrice: dec("1500"), Quantity: 1},
		domain.ServiceLine{ServiceID: 11, NameFr: "Brushing", UnitPrice: dec("800"), Quantity: 1},
		domain.ProductLine{ProductID: 20, NameFr: "Shampoo", UnitPrice: dec("425"), Quantity: 2},
	}
}

// ------------------------------------------------------

func TestPostSaleCash(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostSale(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		ClientID:      uintPtr(1),
		StaffID:       uintPtr(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sale := repo.postedSale
	if !sale.Total.Equal(dec("3150")) {
		t.Errorf("total = %s, want 3150", sale.Total)
	}
	if len(repo.postedItems) != 3 {
		t.Errorf("items = %d, want 3", len(repo.postedItems))
	}

	// only the product line decrements stock
	if len(repo.postedEff.Stock) != 1 || repo.postedEff.Stock[0].ProductID != 20 || repo.postedEff.Stock[0].Qty != 2 {
		t.Errorf("stock effects = %+v", repo.postedEff.Stock)
	}

	// commission on the 2300 service base at 15%
	if repo.postedEff.Commission == nil {
		t.Fatal("expected a commission entry")
	}
	if !repo.postedEff.Commission.Amount.Equal(dec("345")) {
		t.Errorf("commission = %s, want 345", repo.postedEff.Commission.Amount)
	}

	// cash sale: full amount in the award, nothing owed
	if repo.postedEff.Award == nil || repo.postedEff.Award.Points != 315 {
		t.Errorf("award = %+v, want 315 points", repo.postedEff.Award)
	}
	if !repo.postedEff.CreditDelta.IsZero() {
		t.Errorf("credit delta = %s, want 0", repo.postedEff.CreditDelta)
	}
	if !res.CreditRemaining.IsZero() {
		t.Errorf("credit remaining = %s, want 0", res.CreditRemaining)
	}
}

func TestPostSaleCreditSplit(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostSale(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCredit,
		ClientID:      uintPtr(1),
		AmountPaid:    dec("1000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.CreditRemaining.Equal(dec("2150")) {
		t.Fatalf("credit remaining = %s, want 2150", res.CreditRemaining)
	}
	if !repo.postedEff.CreditDelta.Equal(dec("2150")) {
		t.Errorf("credit delta = %s, want 2150", repo.postedEff.CreditDelta)
	}

	// one credit entry for the owed part, one purchase entry for the paid part
	if len(repo.postedEff.ClientEntries) != 2 {
		t.Fatalf("client entries = %d, want 2", len(repo.postedEff.ClientEntries))
	}
	if repo.postedEff.ClientEntries[0].Type != models.ClientPaymentCredit ||
		!repo.postedEff.ClientEntries[0].Amount.Equal(dec("2150")) {
		t.Errorf("credit entry = %+v", repo.postedEff.ClientEntries[0])
	}
	if repo.postedEff.ClientEntries[1].Type != models.ClientPaymentPurchase ||
		!repo.postedEff.ClientEntries[1].Amount.Equal(dec("1000")) {
		t.Errorf("purchase entry = %+v", repo.postedEff.ClientEntries[1])
	}

	// loyalty accrues on the paid 1000 only
	if repo.postedEff.Award == nil || repo.postedEff.Award.Points != 100 {
		t.Errorf("award = %+v, want 100 points", repo.postedEff.Award)
	}
	if repo.postedSale.PaymentStatus != "credit" {
		t.Errorf("payment status = %s, want credit", repo.postedSale.PaymentStatus)
	}
}

func TestPostSaleValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostSale(repo, testDispatcher())
	ctx := context.Background()

	cases := []struct {
		name string
		in   PostSaleInput
		want string
	}{
		{
			"empty cart",
			PostSaleInput{PaymentMethod: models.PaymentMethodCash},
			"empty_cart",
		},
		{
			"zero quantity",
			PostSaleInput{
				Lines:         []domain.Line{domain.ProductLine{ProductID: 20, UnitPrice: dec("100"), Quantity: 0}},
				PaymentMethod: models.PaymentMethodCash,
			},
			"invalid_line",
		},
		{
			"unknown method",
			PostSaleInput{Lines: mixedCart(), PaymentMethod: "cheque"},
			"invalid_payment_method",
		},
		{
			"discount over 100",
			PostSaleInput{Lines: mixedCart(), PaymentMethod: models.PaymentMethodCash, DiscountPercent: dec("101")},
			"invalid_discount",
		},
		{
			"credit without client",
			PostSaleInput{Lines: mixedCart(), PaymentMethod: models.PaymentMethodCredit},
			"credit_requires_client",
		},
		{
			"unknown client",
			PostSaleInput{Lines: mixedCart(), PaymentMethod: models.PaymentMethodCash, ClientID: uintPtr(99)},
			"client_not_found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.in)
			if httperr.BusinessCode(err) != tc.want {
				t.Fatalf("error = %v, want %s", err, tc.want)
			}
		})
	}
}

func TestPostSaleMonthlyStaffNoCommission(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostSale(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		StaffID:       uintPtr(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.postedEff.Commission != nil {
		t.Fatal("monthly staff must not accrue commission")
	}
	// anonymous sale: no client ledger, no award
	if repo.postedEff.Award != nil || len(repo.postedEff.ClientEntries) != 0 {
		t.Errorf("anonymous sale produced client effects: %+v", repo.postedEff)
	}
}

func TestPostSaleSettlesAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[40] = &models.Appointment{ID: 40, ClientID: 1, Status: "confirmed"}
	uc := NewPostSale(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		ClientID:      uintPtr(1),
		AppointmentID: uintPtr(40),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.postedEff.SettleAppointmentID == nil || *repo.postedEff.SettleAppointmentID != 40 {
		t.Fatalf("settle id = %v, want 40", repo.postedEff.SettleAppointmentID)
	}
}

func TestPostSaleRejectsSettlingOtherClientsVisit(t *testing.T) {
	repo := newFakeRepo()
	repo.clients[5] = &models.Client{ID: 5, FirstName: "Lina"}
	repo.appointments[42] = &models.Appointment{ID: 42, ClientID: 5, Status: "confirmed"}
	uc := NewPostSale(repo, testDispatcher())

	// sale for client 1 must not complete client 5's visit
	_, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		ClientID:      uintPtr(1),
		AppointmentID: uintPtr(42),
	})
	if httperr.BusinessCode(err) != "client_mismatch" {
		t.Fatalf("error = %v, want client_mismatch", err)
	}

	// an anonymous sale cannot settle a visit either
	_, err = uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		AppointmentID: uintPtr(42),
	})
	if httperr.BusinessCode(err) != "client_mismatch" {
		t.Fatalf("error = %v, want client_mismatch", err)
	}
}

func TestPostSaleRejectsSettlingCompletedVisit(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[41] = &models.Appointment{ID: 41, Status: "completed"}
	uc := NewPostSale(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
		AppointmentID: uintPtr(41),
	})
	if httperr.BusinessCode(err) != "invalid_state" {
		t.Fatalf("error = %v, want invalid_state", err)
	}
}

func TestPostSalePropagatesStockFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.postErr = httperr.ErrBusiness("insufficient_stock")
	uc := NewPostSale(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), PostSaleInput{
		Lines:         mixedCart(),
		PaymentMethod: models.PaymentMethodCash,
	})
	if httperr.BusinessCode(err) != "insufficient_stock" {
		t.Fatalf("error = %v, want insufficient_stock", err)
	}
}

package purchasing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salonops/salon-manager/internal/audit"
	domain "github.com/salonops/salon-manager/internal/domain/purchasing"
	"github.com/salonops/salon-manager/internal/httperr"
	"github.com/salonops/salon-manager/internal/models"
)

type fakeRepo struct {
	suppliers map[uint]*models.Supplier
	products  map[uint]*models.Product

	postedOrder   *models.PurchaseOrder
	postedLines   []domain.Line
	postedPayment *models.SupplierPayment

	standalonePayment *models.SupplierPayment
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		suppliers: map[uint]*models.Supplier{1: {ID: 1, Name: "BeautyPro Distribution"}},
		products:  map[uint]*models.Product{5: {ID: 5, Stock: 3}},
	}
}

func (f *fakeRepo) SupplierByID(ctx context.Context, id uint) (*models.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, httperr.ErrBusiness("supplier_not_found")
	}
	return s, nil
}

func (f *fakeRepo) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, httperr.ErrBusiness("product_not_found")
	}
	return p, nil
}

func (f *fakeRepo) PostPurchase(
	ctx context.Context,
	order *models.PurchaseOrder,
	lines []domain.Line,
	payment *models.SupplierPayment,
) error {
	order.ID = 300
	f.postedOrder = order
	f.postedLines = lines
	f.postedPayment = payment
	return nil
}

func (f *fakeRepo) PostPayment(ctx context.Context, payment *models.SupplierPayment) error {
	payment.ID = 400
	f.standalonePayment = payment
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func restockLines() []domain.Line {
	return []domain.Line{
		{ProductID: 5, Quantity: 6, UnitPrice: dec("500")},
		{NameFr: "Masque argile", Category: "soin", Quantity: 4, UnitPrice: dec("500")},
	}
}

// ------------------------------------------------------

func TestPostPurchasePaid(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostPurchase(repo, testDispatcher())

	order, err := uc.Execute(context.Background(), PostPurchaseInput{
		SupplierID:    1,
		Lines:         restockLines(),
		PaymentStatus: models.PurchaseStatusPaid,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !order.Subtotal.Equal(dec("5000")) {
		t.Errorf("subtotal = %s, want 5000", order.Subtotal)
	}
	if !order.Tax.Equal(dec("950")) {
		t.Errorf("tax = %s, want 950", order.Tax)
	}
	if !order.Total.Equal(dec("5950")) {
		t.Errorf("total = %s, want 5950", order.Total)
	}

	if repo.postedPayment == nil {
		t.Fatal("paid order must carry a payment")
	}
	if !repo.postedPayment.Amount.Equal(dec("5950")) {
		t.Errorf("payment = %s, want 5950", repo.postedPayment.Amount)
	}
}

func TestPostPurchaseCredit(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostPurchase(repo, testDispatcher())

	order, err := uc.Execute(context.Background(), PostPurchaseInput{
		SupplierID:    1,
		Lines:         restockLines(),
		PaymentStatus: models.PurchaseStatusCredit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.postedPayment != nil {
		t.Fatal("credit order must not carry a payment")
	}
	if order.Status != models.PurchaseStatusCredit {
		t.Errorf("status = %s, want credit", order.Status)
	}
}

func TestPostPurchasePartial(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostPurchase(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), PostPurchaseInput{
		SupplierID:    1,
		Lines:         restockLines(),
		PaymentStatus: models.PurchaseStatusPartial,
		PartialAmount: dec("2000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.postedPayment == nil || !repo.postedPayment.Amount.Equal(dec("2000")) {
		t.Fatalf("payment = %+v, want 2000", repo.postedPayment)
	}
}

func TestPostPurchaseValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPostPurchase(repo, testDispatcher())
	ctx := context.Background()

	cases := []struct {
		name string
		in   PostPurchaseInput
		want string
	}{
		{
			"empty order",
			PostPurchaseInput{SupplierID: 1, PaymentStatus: models.PurchaseStatusPaid},
			"empty_order",
		},
		{
			"zero price line",
			PostPurchaseInput{
				SupplierID:    1,
				Lines:         []domain.Line{{ProductID: 5, Quantity: 2, UnitPrice: decimal.Zero}},
				PaymentStatus: models.PurchaseStatusPaid,
			},
			"invalid_line",
		},
		{
			"new product without name",
			PostPurchaseInput{
				SupplierID:    1,
				Lines:         []domain.Line{{Quantity: 2, UnitPrice: dec("100")}},
				PaymentStatus: models.PurchaseStatusPaid,
			},
			"product_name_required",
		},
		{
			"unknown supplier",
			PostPurchaseInput{SupplierID: 9, Lines: restockLines(), PaymentStatus: models.PurchaseStatusPaid},
			"supplier_not_found",
		},
		{
			"partial above total",
			PostPurchaseInput{
				SupplierID:    1,
				Lines:         restockLines(),
				PaymentStatus: models.PurchaseStatusPartial,
				PartialAmount: dec("6000"),
			},
			"invalid_partial_amount",
		},
		{
			"partial of zero",
			PostPurchaseInput{
				SupplierID:    1,
				Lines:         restockLines(),
				PaymentStatus: models.PurchaseStatusPartial,
			},
			"invalid_partial_amount",
		},
		{
			"unknown status",
			PostPurchaseInput{SupplierID: 1, Lines: restockLines(), PaymentStatus: "layaway"},
			"invalid_payment_status",
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

func TestPaySupplier(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPaySupplier(repo, testDispatcher())

	payment, err := uc.Execute(context.Background(), PaySupplierInput{
		SupplierID:    1,
		Amount:        dec("1500"),
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.standalonePayment == nil || !payment.Amount.Equal(dec("1500")) {
		t.Fatalf("payment = %+v", payment)
	}

	_, err = uc.Execute(context.Background(), PaySupplierInput{SupplierID: 1, Amount: decimal.Zero})
	if httperr.BusinessCode(err) != "invalid_amount" {
		t.Fatalf("error = %v, want invalid_amount", err)
	}

	_, err = uc.Execute(context.Background(), PaySupplierInput{SupplierID: 9, Amount: dec("100")})
	if httperr.BusinessCode(err) != "supplier_not_found" {
		t.Fatalf("error = %v, want supplier_not_found", err)
	}
}

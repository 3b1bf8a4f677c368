package purchasing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotals(t *testing.T) {
	lines := []Line{
		{ProductID: 1, Quantity: 6, UnitPrice: dec("500")},
		{NameFr: "Shampoo pro", Quantity: 4, UnitPrice: dec("500")},
	}

	got := ComputeTotals(lines)
	if !got.Subtotal.Equal(dec("5000")) {
		t.Fatalf("subtotal = %s, want 5000", got.Subtotal)
	}
	if !got.Tax.Equal(dec("950")) {
		t.Fatalf("tax = %s, want 950", got.Tax)
	}
	if !got.Total.Equal(dec("5950")) {
		t.Fatalf("total = %s, want 5950", got.Total)
	}
}

func TestRetailPrice(t *testing.T) {
	if got := RetailPrice(dec("500")); !got.Equal(dec("750")) {
		t.Fatalf("retail price = %s, want 750", got)
	}
}

func TestNewProduct(t *testing.T) {
	if (Line{ProductID: 7}).NewProduct() {
		t.Error("line with product id reported as new")
	}
	if !(Line{NameFr: "Wax"}).NewProduct() {
		t.Error("line without product id not reported as new")
	}
}

package purchasing

import "github.com/shopspring/decimal"

// VATRate is the fixed purchase tax rate.
var VATRate = decimal.NewFromFloat(0.19)

// RetailMarkup sets the default retail price of a newly stocked product.
var RetailMarkup = decimal.NewFromFloat(1.5)

type Line struct {
	// Zero ProductID means the line creates a new product.
	ProductID uint
	NameAr    string
	NameFr    string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) NewProduct() bool {
	return l.ProductID == 0
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func ComputeTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}

	tax := subtotal.Mul(VATRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// RetailPrice derives the shelf price of a product first seen on a
// purchase line.
func RetailPrice(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(RetailMarkup)
}

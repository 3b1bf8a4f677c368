package checkout

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals applies a percentage discount to the cart subtotal.
// Tax is carried at zero; the column exists for future use.
func ComputeTotals(lines []Line, discountPercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}

	discount := subtotal.Mul(discountPercent).Div(hundred)
	total := subtotal.Sub(discount)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      decimal.Zero,
		Total:    total,
	}
}

// ServiceRevenue sums service-line totals only: the commission base.
func ServiceRevenue(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		if _, ok := l.(ServiceLine); ok {
			sum = sum.Add(l.Total())
		}
	}
	return sum
}

// Commission is the service revenue share owed to a commission-based
// staff member.
func Commission(lines []Line, rate decimal.Decimal) decimal.Decimal {
	return ServiceRevenue(lines).Mul(rate).Div(hundred)
}

// ClampPaid bounds a caller-supplied paid amount to [0, total] for
// credit sales.
func ClampPaid(paid, total decimal.Decimal) decimal.Decimal {
	if paid.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if paid.GreaterThan(total) {
		return total
	}
	return paid
}

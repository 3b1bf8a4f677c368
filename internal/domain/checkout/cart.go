package checkout

import "github.com/shopspring/decimal"

// Line is a sealed cart line: either a ProductLine or a ServiceLine.
// Products decrement stock; services feed the commission base. Consumers
// switch on the concrete type so every step handles both shapes explicitly.
type Line interface {
	Qty() int
	Price() decimal.Decimal
	Total() decimal.Decimal
	line()
}

type ProductLine struct {
	ProductID uint
	NameAr    string
	NameFr    string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l ProductLine) Qty() int               { return l.Quantity }
func (l ProductLine) Price() decimal.Decimal { return l.UnitPrice }
func (l ProductLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
func (l ProductLine) line() {}

type ServiceLine struct {
	ServiceID uint
	NameAr    string
	NameFr    string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l ServiceLine) Qty() int               { return l.Quantity }
func (l ServiceLine) Price() decimal.Decimal { return l.UnitPrice }
func (l ServiceLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
func (l ServiceLine) line() {}

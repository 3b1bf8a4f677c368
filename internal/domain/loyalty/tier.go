package loyalty

import "github.com/shopspring/decimal"

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

var (
	silverAt   = decimal.NewFromInt(50000)
	goldAt     = decimal.NewFromInt(100000)
	platinumAt = decimal.NewFromInt(200000)
)

// TierFor maps cumulative spend to a loyalty tier. Lower bounds are
// inclusive; spend never decreases, so tiers never downgrade.
func TierFor(totalSpent decimal.Decimal) Tier {
	switch {
	case totalSpent.GreaterThanOrEqual(platinumAt):
		return TierPlatinum
	case totalSpent.GreaterThanOrEqual(goldAt):
		return TierGold
	case totalSpent.GreaterThanOrEqual(silverAt):
		return TierSilver
	default:
		return TierBronze
	}
}

// Rank orders tiers for comparisons (bronze < silver < gold < platinum).
func Rank(t Tier) int {
	switch t {
	case TierPlatinum:
		return 3
	case TierGold:
		return 2
	case TierSilver:
		return 1
	default:
		return 0
	}
}

// PointsForSale awards floor(paid/10) on the amount actually paid at POS.
func PointsForSale(paid decimal.Decimal) int {
	return int(paid.Div(decimal.NewFromInt(10)).Floor().IntPart())
}

// PointsForVisit awards floor(total/100) when an appointment is completed
// without a POS settlement.
func PointsForVisit(total decimal.Decimal) int {
	return int(total.Div(decimal.NewFromInt(100)).Floor().IntPart())
}

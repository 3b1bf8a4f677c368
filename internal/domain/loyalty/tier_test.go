package loyalty

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		spent int64
		want  Tier
	}{
		{0, TierBronze},
		{49999, TierBronze},
		{50000, TierSilver},
		{99999, TierSilver},
		{100000, TierGold},
		{199999, TierGold},
		{200000, TierPlatinum},
		{1000000, TierPlatinum},
	}

	for _, tc := range cases {
		if got := TierFor(decimal.NewFromInt(tc.spent)); got != tc.want {
			t.Errorf("TierFor(%d) = %s, want %s", tc.spent, got, tc.want)
		}
	}
}

// Tiers never downgrade: rank is monotone in cumulative spend.
func TestTierMonotone(t *testing.T) {
	prev := TierFor(decimal.Zero)
	for spent := int64(0); spent <= 250000; spent += 2500 {
		cur := TierFor(decimal.NewFromInt(spent))
		if Rank(cur) < Rank(prev) {
			t.Fatalf("tier downgraded at spend %d: %s -> %s", spent, prev, cur)
		}
		prev = cur
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		amount    string
		saleWant  int
		visitWant int
	}{
		{"0", 0, 0},
		{"9.99", 0, 0},
		{"10", 1, 0},
		{"99.50", 9, 0},
		{"100", 10, 1},
		{"2150", 215, 21},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		if got := PointsForSale(amount); got != tc.saleWant {
			t.Errorf("PointsForSale(%s) = %d, want %d", tc.amount, got, tc.saleWant)
		}
		if got := PointsForVisit(amount); got != tc.visitWant {
			t.Errorf("PointsForVisit(%s) = %d, want %d", tc.amount, got, tc.visitWant)
		}
	}
}

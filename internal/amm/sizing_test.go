package amm

import (
	"math"
	"testing"
)

func TestDepositAmountsSymmetricRange(t *testing.T) {
	// sqrt bounds 0.5 and 2 around price 1 with both tokens at $1
	// split the deposit evenly.
	split := DepositAmounts(1000, 1, 0.25, 4, 1, 1)

	if math.Abs(split.Amount0-500) > 1e-9 {
		t.Fatalf("amount0 = %g, want 500", split.Amount0)
	}
	if math.Abs(split.Amount1-500) > 1e-9 {
		t.Fatalf("amount1 = %g, want 500", split.Amount1)
	}
	if math.Abs(split.LiquidityDelta-1000) > 1e-9 {
		t.Fatalf("deltaL = %g, want 1000", split.LiquidityDelta)
	}
}

func TestDepositAmountsBounds(t *testing.T) {
	cases := []struct {
		name                         string
		deposit, price, lower, upper float64
		price0, price1               float64
	}{
		{"in range", 1000, 1, 0.5, 2, 1, 1},
		{"narrow range", 250, 1800, 1700, 1900, 1800, 1},
		{"wide range", 1e6, 0.0005, 0.0001, 0.01, 1, 2000},
		{"asymmetric prices", 500, 2, 1, 8, 3, 0.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			split := DepositAmounts(tc.deposit, tc.price, tc.lower, tc.upper, tc.price0, tc.price1)

			if split.Amount0 < 0 || split.Amount1 < 0 {
				t.Fatalf("negative amount: %+v", split)
			}
			if usd := split.Amount0 * tc.price0; usd > tc.deposit*(1+1e-9) {
				t.Fatalf("amount0 value %g exceeds deposit %g", usd, tc.deposit)
			}
			if usd := split.Amount1 * tc.price1; usd > tc.deposit*(1+1e-9) {
				t.Fatalf("amount1 value %g exceeds deposit %g", usd, tc.deposit)
			}
		})
	}
}

func TestDepositAmountsSingleSided(t *testing.T) {
	// Below range deposits are all token0, above range all token1.
	below := DepositAmounts(1000, 0.1, 0.5, 2, 1, 1)
	if below.Amount1 != 0 {
		t.Fatalf("below range amount1 = %g, want 0", below.Amount1)
	}
	if below.Amount0 <= 0 {
		t.Fatalf("below range amount0 = %g, want > 0", below.Amount0)
	}

	above := DepositAmounts(1000, 10, 0.5, 2, 1, 1)
	if above.Amount0 != 0 {
		t.Fatalf("above range amount0 = %g, want 0", above.Amount0)
	}
	if above.Amount1 <= 0 {
		t.Fatalf("above range amount1 = %g, want > 0", above.Amount1)
	}
}

func TestDepositAmountsInvalidInputs(t *testing.T) {
	for _, split := range []DepositSplit{
		DepositAmounts(0, 1, 0.5, 2, 1, 1),
		DepositAmounts(-5, 1, 0.5, 2, 1, 1),
		DepositAmounts(1000, 1, 0, 2, 1, 1),
		DepositAmounts(1000, 1, 2, 0.5, 1, 1),
	} {
		if split != (DepositSplit{}) {
			t.Fatalf("invalid input produced %+v", split)
		}
	}
}

func TestLiquidityForDeposit(t *testing.T) {
	if got := LiquidityForDeposit(2, 6, 18); got != 2*1e12 {
		t.Fatalf("LiquidityForDeposit = %g, want %g", got, 2*1e12)
	}
	if got := LiquidityForDeposit(0, 6, 18); got != 0 {
		t.Fatalf("LiquidityForDeposit(0) = %g, want 0", got)
	}
	if got := LiquidityForDeposit(-1, 6, 18); got != 0 {
		t.Fatalf("LiquidityForDeposit(-1) = %g, want 0", got)
	}
}

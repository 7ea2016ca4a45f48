package amm

import (
	"math"
	"testing"
)

func TestPriceFromTickReference(t *testing.T) {
	cases := []struct {
		name      string
		tick      int
		decimals0 uint8
		decimals1 uint8
		want      float64
		relTol    float64
	}{
		{"zero tick equal decimals", 0, 18, 18, 1.0, 1e-12},
		{"zero tick decimal gap", 0, 6, 18, 1e-12, 1e-9},
		{"one tick", 1, 18, 18, 1.0001, 1e-9},
		{"doubling tick", 6932, 18, 18, 2.0, 1e-3},
		{"usdc weth mainnet", 202500, 6, 18, 6.222e-4, 1e-2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PriceFromTick(tc.tick, tc.decimals0, tc.decimals1)
			if rel := math.Abs(got-tc.want) / tc.want; rel > tc.relTol {
				t.Fatalf("PriceFromTick(%d, %d, %d) = %g, want %g within %g",
					tc.tick, tc.decimals0, tc.decimals1, got, tc.want, tc.relTol)
			}
		})
	}
}

func TestTickPriceRoundTrip(t *testing.T) {
	ticks := []int{-887220, -100000, -1000, -1, 0, 1, 1000, 100000, 887220}
	decimalPairs := [][2]uint8{{18, 18}, {6, 18}, {18, 6}, {8, 18}, {0, 0}}

	for _, pair := range decimalPairs {
		for _, tick := range ticks {
			price := PriceFromTick(tick, pair[0], pair[1])
			got := TickFromPrice(price, pair[0], pair[1])
			if diff := got - tick; diff < -1 || diff > 1 {
				t.Fatalf("round trip tick %d decimals %d/%d: got %d", tick, pair[0], pair[1], got)
			}
		}
	}
}

func TestPriceFromTickMonotonic(t *testing.T) {
	prev := PriceFromTick(-500, 18, 18)
	for tick := -499; tick <= 500; tick++ {
		cur := PriceFromTick(tick, 18, 18)
		if cur <= prev {
			t.Fatalf("price not increasing at tick %d: %g <= %g", tick, cur, prev)
		}
		prev = cur
	}
}

func TestTickFromPriceNonPositive(t *testing.T) {
	if got := TickFromPrice(0, 18, 18); got != 0 {
		t.Fatalf("TickFromPrice(0) = %d, want 0", got)
	}
	if got := TickFromPrice(-1, 18, 18); got != 0 {
		t.Fatalf("TickFromPrice(-1) = %d, want 0", got)
	}
}

func TestInRangeClosedBounds(t *testing.T) {
	cases := []struct {
		lower, upper, current int32
		want                  bool
	}{
		{-100, 100, 0, true},
		{-100, 100, -100, true},
		{-100, 100, 100, true},
		{-100, 100, -101, false},
		{-100, 100, 101, false},
	}

	for _, tc := range cases {
		if got := InRange(tc.lower, tc.upper, tc.current); got != tc.want {
			t.Fatalf("InRange(%d, %d, %d) = %v, want %v", tc.lower, tc.upper, tc.current, got, tc.want)
		}
	}
}

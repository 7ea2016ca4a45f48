package model

import (
	"math/big"
	"testing"
	"time"
)

func TestHasLiquidity(t *testing.T) {
	cases := []struct {
		name      string
		liquidity *big.Int
		want      bool
	}{
		{"nil", nil, false},
		{"zero", big.NewInt(0), false},
		{"negative", big.NewInt(-1), false},
		{"positive", big.NewInt(1), true},
	}

	for _, tc := range cases {
		p := Position{Liquidity: tc.liquidity}
		if got := p.HasLiquidity(); got != tc.want {
			t.Fatalf("%s: HasLiquidity = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDaysActive(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	p := Position{CreatedAt: now.AddDate(0, 0, -10)}
	if got := p.DaysActive(now); got != 10 {
		t.Fatalf("days = %g, want 10", got)
	}

	p = Position{CreatedAt: now.Add(-12 * time.Hour)}
	if got := p.DaysActive(now); got != 0.5 {
		t.Fatalf("days = %g, want 0.5", got)
	}

	// Zero or future creation times guard to 0.
	p = Position{}
	if got := p.DaysActive(now); got != 0 {
		t.Fatalf("zero created at: days = %g, want 0", got)
	}
	p = Position{CreatedAt: now.Add(time.Hour)}
	if got := p.DaysActive(now); got != 0 {
		t.Fatalf("future created at: days = %g, want 0", got)
	}
}

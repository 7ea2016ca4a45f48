package metrics

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

func TestAllPositionMetricsPreservesOrder(t *testing.T) {
	positions := make([]model.Position, 20)
	for i := range positions {
		positions[i] = balancedPosition()
		positions[i].ID = fmt.Sprintf("%d", i)
	}

	engine := NewEngine(nil, nil)
	got := engine.AllPositionMetrics(context.Background(), positions)

	if len(got) != len(positions) {
		t.Fatalf("results = %d, want %d", len(got), len(positions))
	}
	for i, item := range got {
		if item.PositionID != positions[i].ID {
			t.Fatalf("result %d has position %q", i, item.PositionID)
		}
		if item.TotalValueUSD <= 0 {
			t.Fatalf("result %d not computed: %+v", i, item)
		}
	}
}

func TestAllPositionMetricsDegradedSimulator(t *testing.T) {
	// One failing simulation must not affect the others' results.
	spy := &simulatorSpy{err: fmt.Errorf("no contract code at address")}
	positions := []model.Position{balancedPosition(), balancedPosition()}
	positions[0].Liquidity = big.NewInt(0)

	engine := NewEngine(spy, nil)
	got := engine.AllPositionMetrics(context.Background(), positions)

	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	for i, item := range got {
		if item.Unclaimed.Token0 != "0" || item.Unclaimed.AmountUSD != 0 {
			t.Fatalf("result %d unclaimed = %+v, want zeros", i, item.Unclaimed)
		}
	}
	if spy.calls != 1 {
		t.Fatalf("simulator calls = %d, want 1 (empty position skipped)", spy.calls)
	}
}

func TestSummarizePortfolio(t *testing.T) {
	items := []model.DerivedPositionMetrics{
		{
			InRange:       true,
			TotalValueUSD: 100,
			FeesEarnedUSD: 5,
			Unclaimed:     model.UnclaimedFees{AmountUSD: 1},
			APR:           10,
		},
		{
			TotalValueUSD: 300,
			FeesEarnedUSD: 15,
			Unclaimed:     model.UnclaimedFees{AmountUSD: 3},
			APR:           20,
		},
	}

	got := SummarizePortfolio(items)
	if got.Positions != 2 || got.InRange != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", got.Positions, got.InRange)
	}
	if got.TotalValueUSD != 400 {
		t.Fatalf("total value = %g, want 400", got.TotalValueUSD)
	}
	if got.TotalFeesEarnedUSD != 20 || got.TotalUnclaimedUSD != 4 {
		t.Fatalf("fee totals = %g/%g, want 20/4", got.TotalFeesEarnedUSD, got.TotalUnclaimedUSD)
	}
	if got.WeightedAPR != 17.5 {
		t.Fatalf("weighted apr = %g, want 17.5", got.WeightedAPR)
	}
}

func TestSummarizePortfolioEmpty(t *testing.T) {
	got := SummarizePortfolio(nil)
	if got != (model.PortfolioSummary{}) {
		t.Fatalf("empty summary = %+v, want zero value", got)
	}
}

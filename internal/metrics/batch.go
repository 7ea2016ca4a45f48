package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// maxConcurrentPositions bounds the per-position fan-out; each task may
// perform one chain-simulation call.
const maxConcurrentPositions = 8

// AllPositionMetrics computes metrics for every position as independent
// concurrent tasks and gathers all results before returning. Each task
// writes only its own slot, so no accumulator is shared; a degraded
// external call affects only that position's fields.
func (e *Engine) AllPositionMetrics(ctx context.Context, positions []model.Position) []model.DerivedPositionMetrics {
	results := make([]model.DerivedPositionMetrics, len(positions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPositions)
	for i, position := range positions {
		i, position := i, position
		g.Go(func() error {
			results[i] = e.PositionMetrics(ctx, position)
			return nil
		})
	}
	// Tasks degrade internally and never return errors.
	_ = g.Wait()

	return results
}

// SummarizePortfolio aggregates settled per-position metrics. APR is
// weighted by each position's USD value.
func SummarizePortfolio(items []model.DerivedPositionMetrics) model.PortfolioSummary {
	summary := model.PortfolioSummary{Positions: len(items)}

	var weightedAPR float64
	for _, item := range items {
		if item.InRange {
			summary.InRange++
		}
		summary.TotalValueUSD += item.TotalValueUSD
		summary.TotalUnclaimedUSD += item.Unclaimed.AmountUSD
		summary.TotalFeesEarnedUSD += item.FeesEarnedUSD
		weightedAPR += item.APR * item.TotalValueUSD
	}
	if summary.TotalValueUSD > 0 {
		summary.WeightedAPR = weightedAPR / summary.TotalValueUSD
	}
	return summary
}

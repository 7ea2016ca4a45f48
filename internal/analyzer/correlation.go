package analyzer

import (
	"math"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// Correlation classifications and the impermanent-loss risk each maps to.
const (
	CorrelationUnknown        = "Unknown"
	CorrelationStrongInverse  = "Strong Inverse"
	CorrelationModInverse     = "Moderate Inverse"
	CorrelationWeak           = "Weak"
	CorrelationModPositive    = "Moderate Positive"
	CorrelationStrongPositive = "Strong Positive"
)

// Stable-pair heuristics. The correlation floors (0.95 / 0.90 / 0.85)
// are calibrated to the downstream IL-risk display; do not retune them
// without revalidating that display.
const (
	stablePairOwnVolPct   = 5    // own-return volatility below this marks a stable token
	stablePairGapPct      = 2    // mean relative price gap for pegged-pair shortcut
	noiseThresholdStable  = 0.001
	noiseThresholdDefault = 0.005
	minFilteredPairs      = 3
)

// PriceCorrelation computes the day-over-day return correlation of a
// pool's two token prices over the trailing windowDays. Pairs of
// low-volatility tokens trading near parity short-circuit to a fixed
// strong-positive result; otherwise returns are noise-filtered before
// Pearson.
func PriceCorrelation(days []model.PoolDayData, windowDays int) model.CorrelationResult {
	window := tail(days, windowDays)

	var returns0, returns1, gaps []float64
	for i := 1; i < len(window); i++ {
		prev, cur := window[i-1], window[i]
		if prev.Token0Price <= 0 || prev.Token1Price <= 0 || cur.Token0Price <= 0 || cur.Token1Price <= 0 {
			continue
		}
		returns0 = append(returns0, (cur.Token0Price-prev.Token0Price)/prev.Token0Price)
		returns1 = append(returns1, (cur.Token1Price-prev.Token1Price)/prev.Token1Price)

		mid := (cur.Token0Price + cur.Token1Price) / 2
		gaps = append(gaps, math.Abs(cur.Token0Price-cur.Token1Price)/mid*100)
	}

	if len(returns0) < 2 {
		return model.CorrelationResult{
			Classification:      CorrelationUnknown,
			ImpermanentLossRisk: CorrelationUnknown,
			SampleSize:          len(returns0),
		}
	}

	vol0 := sampleStdDev(returns0) * 100
	vol1 := sampleStdDev(returns1) * 100
	stablePair := vol0 < stablePairOwnVolPct && vol1 < stablePairOwnVolPct

	if stablePair && mean(gaps) < stablePairGapPct {
		// Pegged pair trading at parity: Pearson on residual noise is
		// meaningless, so force the strong-positive result.
		return model.CorrelationResult{
			Correlation:         0.95,
			Classification:      CorrelationStrongPositive,
			ImpermanentLossRisk: "Very Low",
			SampleSize:          len(returns0),
			StablePair:          true,
		}
	}

	threshold := noiseThresholdDefault
	if stablePair {
		threshold = noiseThresholdStable
	}

	var filtered0, filtered1 []float64
	for i := range returns0 {
		if math.Abs(returns0[i]) > threshold || math.Abs(returns1[i]) > threshold {
			filtered0 = append(filtered0, returns0[i])
			filtered1 = append(filtered1, returns1[i])
		}
	}

	var correlation float64
	sampleSize := len(filtered0)
	switch {
	case stablePair && len(filtered0) < minFilteredPairs:
		correlation = 0.90
		sampleSize = len(returns0)
	case len(filtered0) < minFilteredPairs:
		// Too few meaningful moves to trust Pearson on a non-stable
		// pair; report no correlation.
		correlation = 0
		sampleSize = len(returns0)
	default:
		correlation = pearson(filtered0, filtered1)
		if stablePair && math.Abs(correlation) < 0.3 {
			correlation = 0.85
		}
	}

	classification, ilRisk := classifyCorrelation(correlation)
	if stablePair {
		ilRisk = "Very Low"
	}

	return model.CorrelationResult{
		Correlation:         correlation,
		Classification:      classification,
		ImpermanentLossRisk: ilRisk,
		SampleSize:          sampleSize,
		StablePair:          stablePair,
	}
}

func classifyCorrelation(correlation float64) (classification, ilRisk string) {
	switch {
	case correlation <= -0.7:
		return CorrelationStrongInverse, "Very High"
	case correlation <= -0.3:
		return CorrelationModInverse, "High"
	case correlation < 0.3:
		return CorrelationWeak, "Medium"
	case correlation < 0.7:
		return CorrelationModPositive, "Low"
	default:
		return CorrelationStrongPositive, "Very Low"
	}
}

package analyzer

import (
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// Risk checklist thresholds.
const (
	lowTVLUSD            = 10_000_000
	lowDailyVolumePerTVL = 0.1
	highVolatilityPct    = 10
	lowTokenPoolCount    = 5

	// PriceVolatilityWindow is the trailing day count for the
	// high-price-volatility flag.
	PriceVolatilityWindow = 14
)

// PriceVolatility averages the daily (high-low)/high range percentage
// over the trailing windowDays. Days without a usable high are skipped.
func PriceVolatility(days []model.PoolDayData, windowDays int) float64 {
	window := tail(days, windowDays)

	ranges := make([]float64, 0, len(window))
	for _, d := range window {
		if d.High > 0 {
			ranges = append(ranges, (d.High-d.Low)/d.High*100)
		}
	}
	return mean(ranges)
}

// BuildRiskChecklist screens a pool against the seven-flag checklist.
func BuildRiskChecklist(tvlUSD, dailyVolumePerTVL, priceVolatility float64, token0, token1 model.Token) model.RiskChecklist {
	return model.RiskChecklist{
		LowPoolTVL:          tvlUSD < lowTVLUSD,
		LowPoolVolume:       dailyVolumePerTVL < lowDailyVolumePerTVL,
		HighPriceVolatility: priceVolatility > highVolatilityPct,
		LowToken0TVL:        token0.TotalValueLockedUSD < lowTVLUSD,
		LowToken1TVL:        token1.TotalValueLockedUSD < lowTVLUSD,
		LowToken0PoolCount:  token0.PoolCount < lowTokenPoolCount,
		LowToken1PoolCount:  token1.PoolCount < lowTokenPoolCount,
	}
}

// RiskTierFor buckets a flag count into a tier. Tiers are cumulative:
// any flagged pool is at least LOW_RISK, four or more flags HIGH_RISK.
func RiskTierFor(flagCount int) model.RiskTier {
	switch {
	case flagCount >= 4:
		return model.RiskTierHigh
	case flagCount >= 1:
		return model.RiskTierLow
	default:
		return model.RiskTierSafe
	}
}

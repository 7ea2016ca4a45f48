package amm

import "math"

// APY annualizes accrued fees against a position's USD value over its
// active days, as a percentage rounded to 2 decimals. Returns exactly 0
// when daysActive or totalLiquidityUSD is non-positive, which guards
// clock skew and liquidated-to-zero positions.
func APY(totalFeesUSD, totalLiquidityUSD, daysActive float64) float64 {
	if daysActive <= 0 || totalLiquidityUSD <= 0 {
		return 0
	}
	apy := (totalFeesUSD / totalLiquidityUSD) * (365 / daysActive) * 100
	return math.Round(apy*100) / 100
}

package analyzer

import (
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// Volume volatility classifications by coefficient of variation.
const (
	VolatilityInsufficient = "Insufficient Data"
	VolatilityStable       = "Stable"
	VolatilityModerate     = "Moderate"
	VolatilityHigh         = "High"
	VolatilityHighVolatile = "High Volatile"
)

// VolumeVolatility measures the dispersion of daily traded volume over
// the trailing windowDays. Zero-volume days are dropped; fewer than two
// usable points yields the "Insufficient Data" sentinel with zeroed
// stats, never NaN.
func VolumeVolatility(days []model.PoolDayData, windowDays int) model.VolatilityResult {
	window := tail(days, windowDays)

	volumes := make([]float64, 0, len(window))
	for _, d := range window {
		if d.VolumeUSD > 0 {
			volumes = append(volumes, d.VolumeUSD)
		}
	}

	if len(volumes) < 2 {
		return model.VolatilityResult{
			Classification: VolatilityInsufficient,
			DataPoints:     len(volumes),
		}
	}

	m := mean(volumes)
	sd := sampleStdDev(volumes)
	cv := sd / m * 100

	return model.VolatilityResult{
		MeanVolume:     m,
		StdDev:         sd,
		Coefficient:    cv,
		Classification: classifyVolatility(cv),
		DataPoints:     len(volumes),
	}
}

func classifyVolatility(cv float64) string {
	switch {
	case cv < 30:
		return VolatilityStable
	case cv < 60:
		return VolatilityModerate
	case cv < 100:
		return VolatilityHigh
	default:
		return VolatilityHighVolatile
	}
}

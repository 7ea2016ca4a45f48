package metrics

import (
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/amm"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/analyzer"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// PoolMetrics derives the risk-screened pool view from a pool snapshot
// and its daily aggregates.
func (e *Engine) PoolMetrics(pool model.Pool) model.PoolMetricsWithRisk {
	tvl := pool.TotalValueLockedUSD

	var volume24h, volume7d float64
	if n := len(pool.DayData); n > 0 {
		volume24h = pool.DayData[n-1].VolumeUSD
		for _, d := range pool.DayData[max(0, n-7):] {
			volume7d += d.VolumeUSD
		}
	}

	var volumePerTVL, feesPerTVL float64
	fee24h := amm.FeeTierPercent(pool.FeeTier) * volume24h
	if tvl > 0 {
		volumePerTVL = volume24h / tvl
		feesPerTVL = fee24h / tvl
	}

	volatility := analyzer.PriceVolatility(pool.DayData, analyzer.PriceVolatilityWindow)
	checklist := analyzer.BuildRiskChecklist(tvl, volumePerTVL, volatility, pool.Token0, pool.Token1)

	return model.PoolMetricsWithRisk{
		PoolID:             pool.ID,
		TVLUSD:             tvl,
		Volume24h:          volume24h,
		Volume7d:           volume7d,
		DailyVolumePerTVL:  volumePerTVL,
		Fee24h:             fee24h,
		DailyFeesPerTVL:    feesPerTVL,
		PriceVolatility24h: volatility,
		Checklist:          checklist,
		Tier:               analyzer.RiskTierFor(checklist.Count()),
	}
}

package metrics

import (
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/amm"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// EstimateDeposit sizes a hypothetical USD deposit into the price range
// [priceLower, priceUpper] and projects its 24h fee income against the
// pool's current liquidity and volume.
func (e *Engine) EstimateDeposit(depositUSD float64, pool model.Pool, priceLower, priceUpper float64) model.DepositEstimate {
	token0 := pool.Token0
	token1 := pool.Token1
	price := amm.PriceFromTick(int(pool.Tick), token0.Decimals, token1.Decimals)

	split := amm.DepositAmounts(depositUSD, price, priceLower, priceUpper, token0.PriceUSD, token1.PriceUSD)

	var volume24h float64
	if n := len(pool.DayData); n > 0 {
		volume24h = pool.DayData[n-1].VolumeUSD
	}

	liquidityDelta := amm.LiquidityForDeposit(split.LiquidityDelta, token0.Decimals, token1.Decimals)
	fee24h := amm.EstimateFee24h(
		liquidityDelta, pool.LiquidityFloat(), volume24h,
		pool.FeeTier, price, priceLower, priceUpper,
	)

	return model.DepositEstimate{
		Amount0:         split.Amount0,
		Amount1:         split.Amount1,
		LiquidityDelta:  liquidityDelta,
		EstimatedFee24h: fee24h,
	}
}

package metrics

import (
	"context"
	"math"
	"math/big"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/amm"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// PositionMetrics converts a live position snapshot into its derived
// view: USD valuation, range membership, accrued and pending fees,
// annualized yield, and cost-basis impermanent loss.
func (e *Engine) PositionMetrics(ctx context.Context, position model.Position) model.DerivedPositionMetrics {
	pool := position.Pool
	token0 := pool.Token0
	token1 := pool.Token1

	currentPrice := amm.PriceFromTick(int(pool.Tick), token0.Decimals, token1.Decimals)
	priceRange := model.PriceRange{
		Min: amm.PriceFromTick(int(position.TickLower), token0.Decimals, token1.Decimals),
		Max: amm.PriceFromTick(int(position.TickUpper), token0.Decimals, token1.Decimals),
	}

	amount0, amount1 := amm.AmountsForLiquidity(
		liquidityFloat(position.Liquidity),
		position.TickLower, position.TickUpper, pool.Tick,
		token0.Decimals, token1.Decimals,
	)

	value0 := amount0 * token0.PriceUSD
	value1 := amount1 * token1.PriceUSD
	totalValue := value0 + value1
	pct0, pct1 := balancePercents(value0, value1, totalValue)

	feesEarned := position.CollectedFeesToken0*token0.PriceUSD +
		position.CollectedFeesToken1*token1.PriceUSD

	unclaimed := e.resolver.Resolve(ctx, position)

	apr := amm.APY(feesEarned+unclaimed.AmountUSD, totalValue, position.DaysActive(e.now()))

	lossUSD, lossPct := amm.CostBasisLoss(
		position.DepositedToken0, position.DepositedToken1,
		token0.PriceUSD, token1.PriceUSD, totalValue,
	)

	return model.DerivedPositionMetrics{
		PositionID:           position.ID,
		CurrentPrice:         currentPrice,
		PriceRange:           priceRange,
		InRange:              amm.InRange(position.TickLower, position.TickUpper, pool.Tick),
		Amount0:              amount0,
		Amount1:              amount1,
		TotalValueUSD:        totalValue,
		FeesEarnedUSD:        feesEarned,
		Unclaimed:            unclaimed,
		APR:                  apr,
		Loss:                 model.ImpermanentLoss{AmountUSD: lossUSD, Percent: lossPct},
		Token0BalancePercent: pct0,
		Token1BalancePercent: pct1,
	}
}

// balancePercents splits total value into integer token percentages.
// A zero total yields 0/0 rather than dividing by zero.
func balancePercents(value0, value1, total float64) (int, int) {
	if total == 0 {
		return 0, 0
	}
	return int(math.Round(value0 / total * 100)), int(math.Round(value1 / total * 100))
}

func liquidityFloat(liquidity *big.Int) float64 {
	if liquidity == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(liquidity).Float64()
	return f
}

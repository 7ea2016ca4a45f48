package amm

import "math"

// AmountsForLiquidity converts protocol liquidity units into the
// constituent human-unit token amounts for a position range at the
// current tick. The sqrt price is clamped to the range bounds, so a
// position below range is all token0 and one above range all token1.
func AmountsForLiquidity(liquidity float64, tickLower, tickUpper, currentTick int32, decimals0, decimals1 uint8) (amount0, amount1 float64) {
	if liquidity <= 0 || tickLower >= tickUpper {
		return 0, 0
	}

	sqrtLower := sqrtRatio(tickLower)
	sqrtUpper := sqrtRatio(tickUpper)
	sqrtCurrent := sqrtRatio(currentTick)
	if sqrtCurrent < sqrtLower {
		sqrtCurrent = sqrtLower
	}
	if sqrtCurrent > sqrtUpper {
		sqrtCurrent = sqrtUpper
	}

	raw0 := liquidity * (sqrtUpper - sqrtCurrent) / (sqrtCurrent * sqrtUpper)
	raw1 := liquidity * (sqrtCurrent - sqrtLower)

	amount0 = raw0 / math.Pow(10, float64(decimals0))
	amount1 = raw1 / math.Pow(10, float64(decimals1))
	return amount0, amount1
}

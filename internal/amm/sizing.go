package amm

import "math"

// DepositSplit is the token-amount split for a hypothetical USD deposit
// into a price range. LiquidityDelta is in price-space units; see
// LiquidityForDeposit for the protocol-unit conversion.
type DepositSplit struct {
	Amount0        float64
	Amount1        float64
	LiquidityDelta float64
}

// DepositAmounts computes the token split for depositing depositUSD
// into the range [priceLower, priceUpper] at current price. Prices are
// human token1/token0 units; price0USD and price1USD are the USD
// prices of each token.
//
// Each leg is clamped to [0, depositUSD] in USD value, so a leg never
// goes negative and never exceeds the whole deposit.
func DepositAmounts(depositUSD, price, priceLower, priceUpper, price0USD, price1USD float64) DepositSplit {
	if depositUSD <= 0 || priceLower <= 0 || priceUpper <= priceLower {
		return DepositSplit{}
	}

	sqrtLower := math.Sqrt(priceLower)
	sqrtUpper := math.Sqrt(priceUpper)

	// Out-of-range deposits are single sided.
	sqrtPrice := math.Sqrt(price)
	if sqrtPrice < sqrtLower {
		sqrtPrice = sqrtLower
	}
	if sqrtPrice > sqrtUpper {
		sqrtPrice = sqrtUpper
	}

	denom := (sqrtPrice-sqrtLower)*price1USD + (1/sqrtPrice-1/sqrtUpper)*price0USD
	if denom <= 0 {
		return DepositSplit{}
	}

	deltaL := depositUSD / denom
	amount1 := deltaL * (sqrtPrice - sqrtLower)
	amount0 := deltaL * (1/sqrtPrice - 1/sqrtUpper)

	amount0 = clampLeg(amount0, price0USD, depositUSD)
	amount1 = clampLeg(amount1, price1USD, depositUSD)

	return DepositSplit{Amount0: amount0, Amount1: amount1, LiquidityDelta: deltaL}
}

// clampLeg forces a leg's USD value into [0, depositUSD].
func clampLeg(amount, priceUSD, depositUSD float64) float64 {
	if amount < 0 {
		return 0
	}
	if priceUSD > 0 && amount*priceUSD > depositUSD {
		return depositUSD / priceUSD
	}
	return amount
}

// LiquidityForDeposit rescales a price-space liquidity delta into
// protocol liquidity units so it can be compared against on-chain pool
// liquidity. The geometric-mean decimal factor reconciles the unit gap
// between human prices and raw reserves.
func LiquidityForDeposit(deltaL float64, decimals0, decimals1 uint8) float64 {
	if deltaL <= 0 {
		return 0
	}
	return deltaL * math.Pow(10, (float64(decimals0)+float64(decimals1))/2)
}

package amm

// FeeTierPercent maps a pool fee tier to its swap-fee fraction.
// Unknown tiers map to 0.
func FeeTierPercent(feeTier uint32) float64 {
	switch feeTier {
	case 100:
		return 0.0001
	case 500:
		return 0.0005
	case 3000:
		return 0.003
	case 10000:
		return 0.01
	default:
		return 0
	}
}

// EstimateFee24h projects daily fee income for a hypothetical liquidity
// share. The projection is zero when the current price sits outside
// [priceLower, priceUpper] (closed on both ends): out-of-range
// liquidity earns nothing.
func EstimateFee24h(liquidityDelta, existingLiquidity, volume24h float64, feeTier uint32, price, priceLower, priceUpper float64) float64 {
	if price < priceLower || price > priceUpper {
		return 0
	}
	if liquidityDelta <= 0 || volume24h <= 0 {
		return 0
	}
	total := existingLiquidity + liquidityDelta
	if total <= 0 {
		return 0
	}
	share := liquidityDelta / total
	return FeeTierPercent(feeTier) * volume24h * share
}

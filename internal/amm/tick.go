package amm

import "math"

// tickBase is the geometric ratio between adjacent ticks.
const tickBase = 1.0001

// PriceFromTick converts a discrete tick into the human-readable price
// of token0 in token1 units, rescaled by 10^(decimals0-decimals1).
func PriceFromTick(tick int, decimals0, decimals1 uint8) float64 {
	raw := math.Pow(tickBase, float64(tick))
	return raw * math.Pow(10, float64(decimals0)-float64(decimals1))
}

// TickFromPrice is the inverse of PriceFromTick, floored to the nearest
// integer. Arbitrary ticks are accepted; no tick-spacing clamp is
// applied. Returns 0 for non-positive prices.
func TickFromPrice(price float64, decimals0, decimals1 uint8) int {
	if price <= 0 {
		return 0
	}
	raw := price * math.Pow(10, float64(decimals1)-float64(decimals0))
	return int(math.Floor(math.Log(raw) / math.Log(tickBase)))
}

// InRange reports whether currentTick sits inside [tickLower, tickUpper],
// closed on both ends.
func InRange(tickLower, tickUpper, currentTick int32) bool {
	return tickLower <= currentTick && currentTick <= tickUpper
}

// sqrtRatio returns sqrt(1.0001^tick), the raw sqrt price at a tick.
func sqrtRatio(tick int32) float64 {
	return math.Pow(tickBase, float64(tick)/2)
}

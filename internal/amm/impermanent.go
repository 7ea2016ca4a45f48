package amm

// CostBasisLoss measures position-value drift against the USD value of
// the original deposit at today's prices. This is the cost-basis
// variant, not the hold-equivalent-portfolio formula; downstream
// numbers are calibrated to it.
func CostBasisLoss(deposited0, deposited1, price0USD, price1USD, currentValueUSD float64) (amountUSD, percent float64) {
	depositValue := deposited0*price0USD + deposited1*price1USD
	amountUSD = depositValue - currentValueUSD
	if currentValueUSD == 0 {
		return amountUSD, 0
	}
	percent = amountUSD / currentValueUSD * 100
	return amountUSD, percent
}

package amm

import "math/big"

// FormatBaseUnits renders a base-unit integer amount as a decimal
// string in human token units.
func FormatBaseUnits(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	if decimals == 0 {
		return value.String()
	}
	sign := value.Sign()
	abs := new(big.Int).Abs(value)
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	rat := new(big.Rat).SetFrac(abs, denom)
	text := rat.FloatString(int(decimals))
	if sign < 0 {
		return "-" + text
	}
	return text
}

// BaseUnitsToFloat converts a base-unit integer amount into a float64
// in human token units.
func BaseUnitsToFloat(value *big.Int, decimals uint8) float64 {
	if value == nil {
		return 0
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	rat := new(big.Rat).SetFrac(value, denom)
	f, _ := rat.Float64()
	return f
}

package model

// Token captures ERC20 metadata plus the market context used by the
// risk checklist.
type Token struct {
	Address             string  `json:"address"`
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	Decimals            uint8   `json:"decimals"`
	PriceUSD            float64 `json:"price_usd"`
	LogoURI             string  `json:"logo_uri,omitempty"`
	TotalValueLockedUSD float64 `json:"total_value_locked_usd"`
	PoolCount           int     `json:"pool_count"`
}

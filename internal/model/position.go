package model

import (
	"math/big"
	"time"
)

// Position is a raw concentrated-liquidity position snapshot as
// delivered by the data provider. Deposit, withdraw, and collected
// totals are in human token units.
type Position struct {
	ID                   string    `json:"id"`
	ChainID              uint64    `json:"chain_id"`
	Owner                string    `json:"owner"`
	Pool                 Pool      `json:"pool"`
	TickLower            int32     `json:"tick_lower"`
	TickUpper            int32     `json:"tick_upper"`
	Liquidity            *big.Int  `json:"-"`
	DepositedToken0      float64   `json:"deposited_token0"`
	DepositedToken1      float64   `json:"deposited_token1"`
	WithdrawnToken0      float64   `json:"withdrawn_token0"`
	WithdrawnToken1      float64   `json:"withdrawn_token1"`
	CollectedFeesToken0  float64   `json:"collected_fees_token0"`
	CollectedFeesToken1  float64   `json:"collected_fees_token1"`
	CreatedAt            time.Time `json:"created_at"`
}

// HasLiquidity reports whether the position still holds liquidity.
func (p Position) HasLiquidity() bool {
	return p.Liquidity != nil && p.Liquidity.Sign() > 0
}

// DaysActive returns elapsed whole-plus-fractional days since creation.
func (p Position) DaysActive(now time.Time) float64 {
	if p.CreatedAt.IsZero() || !now.After(p.CreatedAt) {
		return 0
	}
	return now.Sub(p.CreatedAt).Hours() / 24
}

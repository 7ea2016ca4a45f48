package model

import "math/big"

// PoolDayData is one daily aggregate row for a pool, ordered oldest first.
type PoolDayData struct {
	Date        int64   `json:"date"`
	VolumeUSD   float64 `json:"volume_usd"`
	FeesUSD     float64 `json:"fees_usd"`
	TVLUSD      float64 `json:"tvl_usd"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Open        float64 `json:"open"`
	Close       float64 `json:"close"`
	Token0Price float64 `json:"token0_price"`
	Token1Price float64 `json:"token1_price"`
}

// Pool represents a V3 pool snapshot with its 14-day daily aggregates.
type Pool struct {
	ID                  string        `json:"id"`
	ChainID             uint64        `json:"chain_id"`
	Token0              Token         `json:"token0"`
	Token1              Token         `json:"token1"`
	FeeTier             uint32        `json:"fee_tier"`
	Liquidity           *big.Int      `json:"-"`
	Tick                int32         `json:"tick"`
	SqrtPriceX96        string        `json:"sqrt_price_x96,omitempty"`
	TotalValueLockedUSD float64       `json:"total_value_locked_usd"`
	DayData             []PoolDayData `json:"day_data,omitempty"`
}

// LiquidityFloat returns pool liquidity as a float64, 0 when unset.
func (p Pool) LiquidityFloat() float64 {
	if p.Liquidity == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(p.Liquidity).Float64()
	return f
}

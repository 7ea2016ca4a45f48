package model

// PriceRange bounds a position's active price window in token1/token0
// human units.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UnclaimedFees holds pending fee amounts formatted as decimal strings
// in human token units, plus their combined USD value.
type UnclaimedFees struct {
	Token0    string  `json:"token0"`
	Token1    string  `json:"token1"`
	AmountUSD float64 `json:"amount_usd"`
}

// ImpermanentLoss reports cost-basis drift of a position against its
// deposit value.
type ImpermanentLoss struct {
	AmountUSD float64 `json:"amount_usd"`
	Percent   float64 `json:"percent"`
}

// DerivedPositionMetrics is the full computed view of one position.
// It is ephemeral: a refresh produces a new value wholesale.
type DerivedPositionMetrics struct {
	PositionID           string          `json:"position_id"`
	CurrentPrice         float64         `json:"current_price"`
	PriceRange           PriceRange      `json:"price_range"`
	InRange              bool            `json:"in_range"`
	Amount0              float64         `json:"amount0"`
	Amount1              float64         `json:"amount1"`
	TotalValueUSD        float64         `json:"total_value_usd"`
	FeesEarnedUSD        float64         `json:"fees_earned_usd"`
	Unclaimed            UnclaimedFees   `json:"unclaimed_fees"`
	APR                  float64         `json:"apr"`
	Loss                 ImpermanentLoss `json:"impermanent_loss"`
	Token0BalancePercent int             `json:"token0_balance_percent"`
	Token1BalancePercent int             `json:"token1_balance_percent"`
}

// RiskTier buckets a pool by how many checklist flags it trips.
// Higher tiers are supersets of lower ones, not exclusive buckets.
type RiskTier string

const (
	RiskTierSafe RiskTier = "SAFE"
	RiskTierLow  RiskTier = "LOW_RISK"
	RiskTierHigh RiskTier = "HIGH_RISK"
)

// RiskChecklist is the seven-flag pool risk screen.
type RiskChecklist struct {
	LowPoolTVL          bool `json:"low_pool_tvl"`
	LowPoolVolume       bool `json:"low_pool_volume"`
	HighPriceVolatility bool `json:"high_price_volatility"`
	LowToken0TVL        bool `json:"low_token0_tvl"`
	LowToken1TVL        bool `json:"low_token1_tvl"`
	LowToken0PoolCount  bool `json:"low_token0_pool_count"`
	LowToken1PoolCount  bool `json:"low_token1_pool_count"`
}

// Count returns the number of tripped flags.
func (c RiskChecklist) Count() int {
	n := 0
	for _, flag := range []bool{
		c.LowPoolTVL,
		c.LowPoolVolume,
		c.HighPriceVolatility,
		c.LowToken0TVL,
		c.LowToken1TVL,
		c.LowToken0PoolCount,
		c.LowToken1PoolCount,
	} {
		if flag {
			n++
		}
	}
	return n
}

// PoolMetricsWithRisk is the computed pool view with its risk screen.
type PoolMetricsWithRisk struct {
	PoolID             string        `json:"pool_id"`
	TVLUSD             float64       `json:"tvl_usd"`
	Volume24h          float64       `json:"volume_24h"`
	Volume7d           float64       `json:"volume_7d"`
	DailyVolumePerTVL  float64       `json:"daily_volume_per_tvl"`
	Fee24h             float64       `json:"fee_24h"`
	DailyFeesPerTVL    float64       `json:"daily_fees_per_tvl"`
	PriceVolatility24h float64       `json:"price_volatility_24h"`
	Checklist          RiskChecklist `json:"risk_checklist"`
	Tier               RiskTier      `json:"risk_tier"`
}

// DepositEstimate is the token split and projected fee income for a
// hypothetical USD deposit into a pool's range.
type DepositEstimate struct {
	Amount0         float64 `json:"amount0"`
	Amount1         float64 `json:"amount1"`
	LiquidityDelta  float64 `json:"liquidity_delta"`
	EstimatedFee24h float64 `json:"estimated_fee_24h"`
}

// PortfolioSummary aggregates settled per-position computations.
type PortfolioSummary struct {
	Positions          int     `json:"positions"`
	InRange            int     `json:"in_range"`
	TotalValueUSD      float64 `json:"total_value_usd"`
	TotalUnclaimedUSD  float64 `json:"total_unclaimed_usd"`
	TotalFeesEarnedUSD float64 `json:"total_fees_earned_usd"`
	WeightedAPR        float64 `json:"weighted_apr"`
}

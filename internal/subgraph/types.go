package subgraph

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type rawToken struct {
	ID                  string `json:"id"`
	Symbol              string `json:"symbol"`
	Name                string `json:"name"`
	Decimals            string `json:"decimals"`
	TotalValueLockedUSD string `json:"totalValueLockedUSD"`
	PoolCount           string `json:"poolCount"`
}

type rawDayData struct {
	Date        int64  `json:"date"`
	VolumeUSD   string `json:"volumeUSD"`
	FeesUSD     string `json:"feesUSD"`
	TVLUSD      string `json:"tvlUSD"`
	High        string `json:"high"`
	Low         string `json:"low"`
	Open        string `json:"open"`
	Close       string `json:"close"`
	Token0Price string `json:"token0Price"`
	Token1Price string `json:"token1Price"`
}

type rawPool struct {
	ID                  string       `json:"id"`
	FeeTier             string       `json:"feeTier"`
	Liquidity           string       `json:"liquidity"`
	Tick                string       `json:"tick"`
	SqrtPrice           string       `json:"sqrtPrice"`
	TotalValueLockedUSD string       `json:"totalValueLockedUSD"`
	Token0              rawToken     `json:"token0"`
	Token1              rawToken     `json:"token1"`
	PoolDayData         []rawDayData `json:"poolDayData"`
}

type tickRef struct {
	TickIdx string `json:"tickIdx"`
}

type rawPosition struct {
	ID                  string  `json:"id"`
	Owner               string  `json:"owner"`
	Liquidity           string  `json:"liquidity"`
	TickLower           tickRef `json:"tickLower"`
	TickUpper           tickRef `json:"tickUpper"`
	DepositedToken0     string  `json:"depositedToken0"`
	DepositedToken1     string  `json:"depositedToken1"`
	WithdrawnToken0     string  `json:"withdrawnToken0"`
	WithdrawnToken1     string  `json:"withdrawnToken1"`
	CollectedFeesToken0 string  `json:"collectedFeesToken0"`
	CollectedFeesToken1 string  `json:"collectedFeesToken1"`
	Transaction         struct {
		Timestamp string `json:"timestamp"`
	} `json:"transaction"`
	Pool rawPool `json:"pool"`
}

func (t rawToken) toModel() (model.Token, error) {
	decimals, err := strconv.ParseUint(zeroIfEmpty(t.Decimals), 10, 8)
	if err != nil {
		return model.Token{}, fmt.Errorf("token %s decimals: %w", t.ID, err)
	}
	tvl, err := parseFloat(t.TotalValueLockedUSD, "token tvl")
	if err != nil {
		return model.Token{}, err
	}
	poolCount, err := strconv.Atoi(zeroIfEmpty(t.PoolCount))
	if err != nil {
		return model.Token{}, fmt.Errorf("token %s pool count: %w", t.ID, err)
	}

	return model.Token{
		Address:             t.ID,
		Symbol:              t.Symbol,
		Name:                t.Name,
		Decimals:            uint8(decimals),
		TotalValueLockedUSD: tvl,
		PoolCount:           poolCount,
	}, nil
}

func (p rawPool) toModel(chainID uint64) (model.Pool, error) {
	token0, err := p.Token0.toModel()
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: %w", p.ID, err)
	}
	token1, err := p.Token1.toModel()
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: %w", p.ID, err)
	}

	feeTier, err := strconv.ParseUint(zeroIfEmpty(p.FeeTier), 10, 32)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s fee tier: %w", p.ID, err)
	}
	tick, err := strconv.ParseInt(zeroIfEmpty(p.Tick), 10, 32)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s tick: %w", p.ID, err)
	}
	tvl, err := parseFloat(p.TotalValueLockedUSD, "pool tvl")
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: %w", p.ID, err)
	}

	liquidity, ok := new(big.Int).SetString(zeroIfEmpty(p.Liquidity), 10)
	if !ok {
		return model.Pool{}, fmt.Errorf("pool %s liquidity: %q", p.ID, p.Liquidity)
	}

	// The provider delivers day data newest first; keep it oldest first.
	dayData := make([]model.PoolDayData, 0, len(p.PoolDayData))
	for i := len(p.PoolDayData) - 1; i >= 0; i-- {
		d, err := p.PoolDayData[i].toModel()
		if err != nil {
			return model.Pool{}, fmt.Errorf("pool %s: %w", p.ID, err)
		}
		dayData = append(dayData, d)
	}

	return model.Pool{
		ID:                  p.ID,
		ChainID:             chainID,
		Token0:              token0,
		Token1:              token1,
		FeeTier:             uint32(feeTier),
		Liquidity:           liquidity,
		Tick:                int32(tick),
		SqrtPriceX96:        p.SqrtPrice,
		TotalValueLockedUSD: tvl,
		DayData:             dayData,
	}, nil
}

func (d rawDayData) toModel() (model.PoolDayData, error) {
	out := model.PoolDayData{Date: d.Date}
	for _, field := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"volumeUSD", d.VolumeUSD, &out.VolumeUSD},
		{"feesUSD", d.FeesUSD, &out.FeesUSD},
		{"tvlUSD", d.TVLUSD, &out.TVLUSD},
		{"high", d.High, &out.High},
		{"low", d.Low, &out.Low},
		{"open", d.Open, &out.Open},
		{"close", d.Close, &out.Close},
		{"token0Price", d.Token0Price, &out.Token0Price},
		{"token1Price", d.Token1Price, &out.Token1Price},
	} {
		val, err := parseFloat(field.raw, "day data "+field.name)
		if err != nil {
			return model.PoolDayData{}, err
		}
		*field.dst = val
	}
	return out, nil
}

func (p rawPosition) toModel(chainID uint64) (model.Position, error) {
	pool, err := p.Pool.toModel(chainID)
	if err != nil {
		return model.Position{}, err
	}

	liquidity, ok := new(big.Int).SetString(zeroIfEmpty(p.Liquidity), 10)
	if !ok {
		return model.Position{}, fmt.Errorf("position %s liquidity: %q", p.ID, p.Liquidity)
	}
	tickLower, err := strconv.ParseInt(zeroIfEmpty(p.TickLower.TickIdx), 10, 32)
	if err != nil {
		return model.Position{}, fmt.Errorf("position %s tick lower: %w", p.ID, err)
	}
	tickUpper, err := strconv.ParseInt(zeroIfEmpty(p.TickUpper.TickIdx), 10, 32)
	if err != nil {
		return model.Position{}, fmt.Errorf("position %s tick upper: %w", p.ID, err)
	}
	if tickLower >= tickUpper {
		return model.Position{}, fmt.Errorf("position %s tick range [%d, %d] is invalid", p.ID, tickLower, tickUpper)
	}

	var createdAt time.Time
	if ts, err := strconv.ParseInt(zeroIfEmpty(p.Transaction.Timestamp), 10, 64); err == nil && ts > 0 {
		createdAt = time.Unix(ts, 0).UTC()
	}

	position := model.Position{
		ID:        p.ID,
		ChainID:   chainID,
		Owner:     p.Owner,
		Pool:      pool,
		TickLower: int32(tickLower),
		TickUpper: int32(tickUpper),
		Liquidity: liquidity,
		CreatedAt: createdAt,
	}

	for _, field := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"depositedToken0", p.DepositedToken0, &position.DepositedToken0},
		{"depositedToken1", p.DepositedToken1, &position.DepositedToken1},
		{"withdrawnToken0", p.WithdrawnToken0, &position.WithdrawnToken0},
		{"withdrawnToken1", p.WithdrawnToken1, &position.WithdrawnToken1},
		{"collectedFeesToken0", p.CollectedFeesToken0, &position.CollectedFeesToken0},
		{"collectedFeesToken1", p.CollectedFeesToken1, &position.CollectedFeesToken1},
	} {
		val, err := parseFloat(field.raw, "position "+field.name)
		if err != nil {
			return model.Position{}, fmt.Errorf("position %s: %w", p.ID, err)
		}
		*field.dst = val
	}

	return position, nil
}

func parseFloat(raw, field string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return val, nil
}

func zeroIfEmpty(raw string) string {
	if raw == "" {
		return "0"
	}
	return raw
}

package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/cache"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// DefaultEndpoints maps supported chain ids to their V3 subgraph URLs.
var DefaultEndpoints = map[uint64]string{
	1:     "https://api.thegraph.com/subgraphs/name/uniswap/uniswap-v3",
	10:    "https://api.thegraph.com/subgraphs/name/ianlapham/optimism-post-regenesis",
	137:   "https://api.thegraph.com/subgraphs/name/ianlapham/uniswap-v3-polygon",
	8453:  "https://api.studio.thegraph.com/query/48211/uniswap-v3-base/version/latest",
	42161: "https://api.thegraph.com/subgraphs/name/ianlapham/arbitrum-minimal",
}

const poolFields = `
	id
	feeTier
	liquidity
	tick
	sqrtPrice
	totalValueLockedUSD
	token0 { id symbol name decimals totalValueLockedUSD poolCount }
	token1 { id symbol name decimals totalValueLockedUSD poolCount }
	poolDayData(first: 14, orderBy: date, orderDirection: desc) {
		date volumeUSD feesUSD tvlUSD high low open close token0Price token1Price
	}`

const positionFields = `
	id
	owner
	liquidity
	tickLower { tickIdx }
	tickUpper { tickIdx }
	depositedToken0
	depositedToken1
	withdrawnToken0
	withdrawnToken1
	collectedFeesToken0
	collectedFeesToken1
	transaction { timestamp }`

// Config controls the subgraph client.
type Config struct {
	Endpoints    map[uint64]string
	HTTPTimeout  time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	CacheTTL     time.Duration
}

// Client is the position/pool data provider, backed by GraphQL-over-HTTP
// subgraph endpoints with a read-through TTL cache per query key.
type Client struct {
	cfg            Config
	httpClient     *http.Client
	logger         *zap.Logger
	positionsCache *cache.TTL[string, []model.Position]
	poolsCache     *cache.TTL[string, []model.Pool]
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Endpoints == nil {
		cfg.Endpoints = DefaultEndpoints
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}

	return &Client{
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: cfg.HTTPTimeout},
		logger:         logger,
		positionsCache: cache.NewTTL[string, []model.Position](cfg.CacheTTL),
		poolsCache:     cache.NewTTL[string, []model.Pool](cfg.CacheTTL),
	}
}

// PositionsByOwner fetches the raw position set for an owner address.
func (c *Client) PositionsByOwner(ctx context.Context, chainID uint64, owner string) ([]model.Position, error) {
	if !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("invalid owner address: %s", owner)
	}
	owner = strings.ToLower(owner)

	cacheKey := fmt.Sprintf("%d:%s", chainID, owner)
	if cached, ok := c.positionsCache.Get(cacheKey); ok {
		return cached, nil
	}

	query := fmt.Sprintf(`query ($owner: String!) {
		positions(where: {owner: $owner}, first: 1000) {%s
			pool {%s}
		}
	}`, positionFields, poolFields)

	var payload struct {
		Positions []rawPosition `json:"positions"`
	}
	if err := c.query(ctx, chainID, query, map[string]any{"owner": owner}, &payload); err != nil {
		return nil, fmt.Errorf("fetch positions: %w", err)
	}

	positions := make([]model.Position, 0, len(payload.Positions))
	for _, raw := range payload.Positions {
		position, err := raw.toModel(chainID)
		if err != nil {
			// One malformed row degrades itself, not the set.
			c.logger.Warn("skip position", zap.String("position", raw.ID), zap.Error(err))
			continue
		}
		positions = append(positions, position)
	}

	c.positionsCache.Set(cacheKey, positions)
	return positions, nil
}

// Pools fetches pools above a TVL floor with their 14-day aggregates,
// ordered by TVL descending.
func (c *Client) Pools(ctx context.Context, chainID uint64, minTVLUSD float64, limit int) ([]model.Pool, error) {
	if limit <= 0 {
		limit = 50
	}

	cacheKey := fmt.Sprintf("%d:%f:%d", chainID, minTVLUSD, limit)
	if cached, ok := c.poolsCache.Get(cacheKey); ok {
		return cached, nil
	}

	query := fmt.Sprintf(`query ($minTVL: BigDecimal!, $first: Int!) {
		pools(where: {totalValueLockedUSD_gte: $minTVL}, orderBy: totalValueLockedUSD, orderDirection: desc, first: $first) {%s}
	}`, poolFields)

	var payload struct {
		Pools []rawPool `json:"pools"`
	}
	variables := map[string]any{"minTVL": fmt.Sprintf("%f", minTVLUSD), "first": limit}
	if err := c.query(ctx, chainID, query, variables, &payload); err != nil {
		return nil, fmt.Errorf("fetch pools: %w", err)
	}

	pools := make([]model.Pool, 0, len(payload.Pools))
	for _, raw := range payload.Pools {
		pool, err := raw.toModel(chainID)
		if err != nil {
			c.logger.Warn("skip pool", zap.String("pool", raw.ID), zap.Error(err))
			continue
		}
		pools = append(pools, pool)
	}

	c.poolsCache.Set(cacheKey, pools)
	return pools, nil
}

// PoolByID fetches a single pool snapshot.
func (c *Client) PoolByID(ctx context.Context, chainID uint64, id string) (model.Pool, error) {
	query := fmt.Sprintf(`query ($id: ID!) {
		pool(id: $id) {%s}
	}`, poolFields)

	var payload struct {
		Pool *rawPool `json:"pool"`
	}
	if err := c.query(ctx, chainID, query, map[string]any{"id": strings.ToLower(id)}, &payload); err != nil {
		return model.Pool{}, fmt.Errorf("fetch pool %s: %w", id, err)
	}
	if payload.Pool == nil {
		return model.Pool{}, fmt.Errorf("pool %s not found", id)
	}

	return payload.Pool.toModel(chainID)
}

func (c *Client) endpoint(chainID uint64) (string, error) {
	url, ok := c.cfg.Endpoints[chainID]
	if !ok || url == "" {
		return "", fmt.Errorf("chain %d: %w", chainID, model.ErrUnknownChain)
	}
	return url, nil
}

func (c *Client) query(ctx context.Context, chainID uint64, query string, variables map[string]any, out any) error {
	url, err := c.endpoint(chainID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	var data json.RawMessage
	err = withRetry(ctx, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context) error {
		var attemptErr error
		data, attemptErr = c.post(ctx, url, body)
		if attemptErr != nil {
			c.logger.Warn("subgraph query failed", zap.Uint64("chain_id", chainID), zap.Error(attemptErr))
		}
		return attemptErr
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subgraph status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var gql gqlResponse
	if err := json.Unmarshal(raw, &gql); err != nil {
		return nil, fmt.Errorf("decode graphql envelope: %w", err)
	}
	if len(gql.Errors) > 0 {
		return nil, fmt.Errorf("graphql: %s", gql.Errors[0].Message)
	}
	if len(gql.Data) == 0 {
		return nil, fmt.Errorf("graphql: empty data")
	}
	return gql.Data, nil
}

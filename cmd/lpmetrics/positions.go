package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/chain"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/config"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/metrics"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/prices"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/storage"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/subgraph"
)

type positionsReport struct {
	Owner     string                         `json:"owner"`
	ChainID   uint64                         `json:"chain_id"`
	Summary   model.PortfolioSummary         `json:"summary"`
	Positions []model.DerivedPositionMetrics `json:"positions"`
}

func runPositions(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Owner == "" {
		return fmt.Errorf("owner address is required")
	}
	if !common.IsHexAddress(cfg.PositionManager) {
		return fmt.Errorf("invalid position manager address: %s", cfg.PositionManager)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := newProvider(cfg, logger)
	priceService := newPriceService(cfg, logger)

	var sim metrics.FeeSimulator
	if cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()
		sim = chain.NewCollectSimulator(chainClient, common.HexToAddress(cfg.PositionManager), logger)
	} else {
		logger.Info("no rpc url configured, unclaimed fees report as zero")
	}

	positions, err := provider.PositionsByOwner(ctx, cfg.ChainID, cfg.Owner)
	if err != nil {
		return err
	}

	for i := range positions {
		fillTokenPrices(ctx, priceService, &positions[i].Pool, logger)
	}

	engine := metrics.NewEngine(sim, logger)
	results := engine.AllPositionMetrics(ctx, positions)
	summary := metrics.SummarizePortfolio(results)

	logger.Info("positions computed",
		zap.Uint64("chain_id", cfg.ChainID),
		zap.Int("positions", summary.Positions),
		zap.Int("in_range", summary.InRange),
		zap.Float64("total_value_usd", summary.TotalValueUSD),
	)

	report := positionsReport{
		Owner:     cfg.Owner,
		ChainID:   cfg.ChainID,
		Summary:   summary,
		Positions: results,
	}

	if cfg.Out != "" {
		if err := storage.NewJsonlWriter(cfg.Out).Append(report); err != nil {
			return err
		}
	}

	return printJSON(report)
}

func newProvider(cfg config.Config, logger *zap.Logger) *subgraph.Client {
	endpoints := subgraph.DefaultEndpoints
	if cfg.SubgraphURL != "" {
		endpoints = make(map[uint64]string, len(subgraph.DefaultEndpoints)+1)
		for id, url := range subgraph.DefaultEndpoints {
			endpoints[id] = url
		}
		endpoints[cfg.ChainID] = cfg.SubgraphURL
	}

	return subgraph.NewClient(subgraph.Config{
		Endpoints:    endpoints,
		HTTPTimeout:  cfg.HTTPTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		CacheTTL:     cfg.CacheTTL,
	}, logger)
}

func newPriceService(cfg config.Config, logger *zap.Logger) prices.Service {
	return prices.NewCached(prices.NewHTTPService(cfg.PriceAPIURL, cfg.HTTPTimeout, logger), cfg.CacheTTL)
}

// fillTokenPrices resolves USD prices for both pool tokens, degrading
// to zero on lookup failure.
func fillTokenPrices(ctx context.Context, svc prices.Service, pool *model.Pool, logger *zap.Logger) {
	price0 := prices.LookupOrZero(ctx, svc, pool.ChainID, pool.Token0.Address, logger)
	pool.Token0.PriceUSD = price0.PriceUSD
	pool.Token0.LogoURI = price0.LogoURI

	price1 := prices.LookupOrZero(ctx, svc, pool.ChainID, pool.Token1.Address, logger)
	pool.Token1.PriceUSD = price1.PriceUSD
	pool.Token1.LogoURI = price1.LogoURI
}

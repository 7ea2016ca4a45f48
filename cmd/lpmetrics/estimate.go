package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/amm"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/config"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/metrics"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

type estimateReport struct {
	PoolID       string                `json:"pool_id"`
	Pair         string                `json:"pair"`
	CurrentPrice float64               `json:"current_price"`
	PriceRange   model.PriceRange      `json:"price_range"`
	DepositUSD   float64               `json:"deposit_usd"`
	Estimate     model.DepositEstimate `json:"estimate"`
}

func runEstimate(cmd *cobra.Command, _ []string) error {
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

	if cfg.PoolID == "" {
		return fmt.Errorf("pool id is required")
	}
	if cfg.DepositUSD <= 0 {
		return fmt.Errorf("deposit amount must be greater than zero")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := newProvider(cfg, logger)
	priceService := newPriceService(cfg, logger)

	pool, err := provider.PoolByID(ctx, cfg.ChainID, cfg.PoolID)
	if err != nil {
		return err
	}
	fillTokenPrices(ctx, priceService, &pool, logger)

	currentPrice := amm.PriceFromTick(int(pool.Tick), pool.Token0.Decimals, pool.Token1.Decimals)

	priceLower := cfg.PriceLower
	priceUpper := cfg.PriceUpper
	if priceLower <= 0 || priceUpper <= priceLower {
		priceLower = currentPrice * (1 - cfg.RangePercent/100)
		priceUpper = currentPrice * (1 + cfg.RangePercent/100)
	}

	engine := metrics.NewEngine(nil, logger)
	estimate := engine.EstimateDeposit(cfg.DepositUSD, pool, priceLower, priceUpper)

	logger.Info("deposit estimated",
		zap.String("pool", pool.ID),
		zap.Float64("deposit_usd", cfg.DepositUSD),
		zap.Float64("fee_24h", estimate.EstimatedFee24h),
	)

	return printJSON(estimateReport{
		PoolID:       pool.ID,
		Pair:         pool.Token0.Symbol + "/" + pool.Token1.Symbol,
		CurrentPrice: currentPrice,
		PriceRange:   model.PriceRange{Min: priceLower, Max: priceUpper},
		DepositUSD:   cfg.DepositUSD,
		Estimate:     estimate,
	})
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/analyzer"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/config"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/metrics"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/storage"
)

type poolReport struct {
	Pair        string                    `json:"pair"`
	Metrics     model.PoolMetricsWithRisk `json:"metrics"`
	Volatility  model.VolatilityResult    `json:"volume_volatility"`
	Correlation model.CorrelationResult   `json:"price_correlation"`
}

func runPools(cmd *cobra.Command, _ []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := newProvider(cfg, logger)

	pools, err := provider.Pools(ctx, cfg.ChainID, cfg.MinTVLUSD, cfg.Limit)
	if err != nil {
		return err
	}

	engine := metrics.NewEngine(nil, logger)

	reports := make([]poolReport, 0, len(pools))
	for _, pool := range pools {
		reports = append(reports, poolReport{
			Pair:        pool.Token0.Symbol + "/" + pool.Token1.Symbol,
			Metrics:     engine.PoolMetrics(pool),
			Volatility:  analyzer.VolumeVolatility(pool.DayData, cfg.WindowDays),
			Correlation: analyzer.PriceCorrelation(pool.DayData, cfg.WindowDays),
		})
	}

	logger.Info("pools computed", zap.Uint64("chain_id", cfg.ChainID), zap.Int("pools", len(reports)))

	if cfg.Out != "" {
		records := make([]any, len(reports))
		for i, report := range reports {
			records[i] = report
		}
		if err := storage.NewJsonlWriter(cfg.Out).Append(records...); err != nil {
			return err
		}
	}

	return printJSON(reports)
}

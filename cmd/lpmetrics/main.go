package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "lpmetrics",
		Short:        "Concentrated-liquidity position and pool metrics",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	positionsCmd := &cobra.Command{
		Use:   "positions",
		Short: "Compute metrics for an owner's positions",
		RunE:  runPositions,
	}

	positionsCmd.Flags().String("owner", "", "position owner address")
	positionsCmd.Flags().Uint64("chain-id", 1, "chain id")
	positionsCmd.Flags().String("rpc", "", "RPC URL for unclaimed-fee simulation (optional)")
	positionsCmd.Flags().String("subgraph-url", "", "subgraph endpoint override for the chain")
	positionsCmd.Flags().String("price-api", "", "price API base URL")
	positionsCmd.Flags().String("position-manager", "0xC36442b4a4522E871399CD717aBDD847Ab11FE88", "position manager contract address")
	positionsCmd.Flags().String("out", "", "append snapshot JSONL to this path")
	addCommonFlags(positionsCmd)

	root.AddCommand(positionsCmd)

	poolsCmd := &cobra.Command{
		Use:   "pools",
		Short: "Compute risk-screened pool metrics",
		RunE:  runPools,
	}

	poolsCmd.Flags().Uint64("chain-id", 1, "chain id")
	poolsCmd.Flags().Float64("min-tvl", 0, "minimum pool TVL in USD")
	poolsCmd.Flags().Int("limit", 50, "maximum pools to fetch")
	poolsCmd.Flags().Int("window", 14, "analysis window in days")
	poolsCmd.Flags().String("subgraph-url", "", "subgraph endpoint override for the chain")
	poolsCmd.Flags().String("out", "", "append snapshot JSONL to this path")
	addCommonFlags(poolsCmd)

	root.AddCommand(poolsCmd)

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Size a hypothetical deposit and project its daily fees",
		RunE:  runEstimate,
	}

	estimateCmd.Flags().String("pool", "", "pool id")
	estimateCmd.Flags().Uint64("chain-id", 1, "chain id")
	estimateCmd.Flags().Float64("amount", 0, "deposit amount in USD")
	estimateCmd.Flags().Float64("price-lower", 0, "lower price bound (0 derives from range-percent)")
	estimateCmd.Flags().Float64("price-upper", 0, "upper price bound (0 derives from range-percent)")
	estimateCmd.Flags().Float64("range-percent", 10, "symmetric range around current price, percent")
	estimateCmd.Flags().String("subgraph-url", "", "subgraph endpoint override for the chain")
	estimateCmd.Flags().String("price-api", "", "price API base URL")
	addCommonFlags(estimateCmd)

	root.AddCommand(estimateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("cache-ttl", 5*time.Minute, "read-through cache entry lifetime")
	cmd.Flags().Duration("http-timeout", 15*time.Second, "HTTP request timeout")
	cmd.Flags().Int("max-retries", 3, "maximum retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func printJSON(value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

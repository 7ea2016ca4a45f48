package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ChainID != 1 {
		t.Fatalf("chain id = %d, want 1", cfg.ChainID)
	}
	if cfg.PositionManager != "0xC36442b4a4522E871399CD717aBDD847Ab11FE88" {
		t.Fatalf("position manager = %q", cfg.PositionManager)
	}
	if cfg.Limit != 50 || cfg.WindowDays != 14 {
		t.Fatalf("limit/window = %d/%d, want 50/14", cfg.Limit, cfg.WindowDays)
	}
	if cfg.RangePercent != 10 {
		t.Fatalf("range percent = %g, want 10", cfg.RangePercent)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("cache ttl = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("http timeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.MaxRetries != 3 || cfg.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("retries = %d/%v", cfg.MaxRetries, cfg.RetryBackoff)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64("chain-id", 1, "")
	flags.String("owner", "", "")
	flags.Int("limit", 50, "")
	if err := flags.Parse([]string{"--chain-id=137", "--owner=0xabc", "--limit=10"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChainID != 137 {
		t.Fatalf("chain id = %d, want 137", cfg.ChainID)
	}
	if cfg.Owner != "0xabc" {
		t.Fatalf("owner = %q, want 0xabc", cfg.Owner)
	}
	if cfg.Limit != 10 {
		t.Fatalf("limit = %d, want 10", cfg.Limit)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LPMETRICS_CHAIN_ID", "42161")
	t.Setenv("LPMETRICS_LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChainID != 42161 {
		t.Fatalf("chain id = %d, want 42161", cfg.ChainID)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml", nil); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	ChainID         uint64
	Owner           string
	RPCURL          string
	SubgraphURL     string
	PriceAPIURL     string
	PositionManager string
	PoolID          string
	MinTVLUSD       float64
	Limit           int
	WindowDays      int
	DepositUSD      float64
	PriceLower      float64
	PriceUpper      float64
	RangePercent    float64
	Out             string
	CacheTTL        time.Duration
	HTTPTimeout     time.Duration
	MaxRetries      int
	RetryBackoff    time.Duration
	LogLevel        string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LPMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain-id", uint64(1))
	v.SetDefault("position-manager", "0xC36442b4a4522E871399CD717aBDD847Ab11FE88")
	v.SetDefault("min-tvl", float64(0))
	v.SetDefault("limit", 50)
	v.SetDefault("window", 14)
	v.SetDefault("range-percent", 10.0)
	v.SetDefault("cache-ttl", 5*time.Minute)
	v.SetDefault("http-timeout", 15*time.Second)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		ChainID:         v.GetUint64("chain-id"),
		Owner:           v.GetString("owner"),
		RPCURL:          v.GetString("rpc"),
		SubgraphURL:     v.GetString("subgraph-url"),
		PriceAPIURL:     v.GetString("price-api"),
		PositionManager: v.GetString("position-manager"),
		PoolID:          v.GetString("pool"),
		MinTVLUSD:       v.GetFloat64("min-tvl"),
		Limit:           v.GetInt("limit"),
		WindowDays:      v.GetInt("window"),
		DepositUSD:      v.GetFloat64("amount"),
		PriceLower:      v.GetFloat64("price-lower"),
		PriceUpper:      v.GetFloat64("price-upper"),
		RangePercent:    v.GetFloat64("range-percent"),
		Out:             v.GetString("out"),
		CacheTTL:        v.GetDuration("cache-ttl"),
		HTTPTimeout:     v.GetDuration("http-timeout"),
		MaxRetries:      v.GetInt("max-retries"),
		RetryBackoff:    v.GetDuration("retry-backoff"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}

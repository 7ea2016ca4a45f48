package prices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/cache"
)

// Cached wraps a Service with an injected read-through TTL cache.
type Cached struct {
	inner Service
	cache *cache.TTL[string, TokenPrice]
}

func NewCached(inner Service, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: cache.NewTTL[string, TokenPrice](ttl),
	}
}

func (c *Cached) Lookup(ctx context.Context, chainID uint64, addressOrSymbol string) (TokenPrice, error) {
	key := fmt.Sprintf("%d:%s", chainID, strings.ToLower(addressOrSymbol))
	if price, ok := c.cache.Get(key); ok {
		return price, nil
	}

	price, err := c.inner.Lookup(ctx, chainID, addressOrSymbol)
	if err != nil {
		return TokenPrice{}, err
	}

	c.cache.Set(key, price)
	return price, nil
}

// LookupOrZero degrades a failed lookup to the documented zero-valued
// fallback: the caller keeps rendering with a zero price while the
// failure is logged.
func LookupOrZero(ctx context.Context, svc Service, chainID uint64, addressOrSymbol string, logger *zap.Logger) TokenPrice {
	if svc == nil {
		return TokenPrice{}
	}
	price, err := svc.Lookup(ctx, chainID, addressOrSymbol)
	if err != nil {
		if logger != nil {
			logger.Warn("price lookup failed",
				zap.Uint64("chain_id", chainID),
				zap.String("token", addressOrSymbol),
				zap.Error(err),
			)
		}
		return TokenPrice{}
	}
	return price
}

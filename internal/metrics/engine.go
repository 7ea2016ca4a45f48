package metrics

import (
	"time"

	"go.uber.org/zap"
)

// Engine derives investor-facing metrics from raw position and pool
// snapshots. All computation is pure per invocation; the only external
// touchpoint is the fee simulator behind the unclaimed-fee resolver.
type Engine struct {
	resolver *UnclaimedFeeResolver
	logger   *zap.Logger
	now      func() time.Time
}

func NewEngine(sim FeeSimulator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		resolver: NewUnclaimedFeeResolver(sim, logger),
		logger:   logger,
		now:      time.Now,
	}
}

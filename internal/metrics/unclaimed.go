package metrics

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/amm"
	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// FeeSimulator simulates a full-balance fee collection for a position
// and returns the owed amounts in base units.
type FeeSimulator interface {
	SimulateCollect(ctx context.Context, position model.Position) (amount0, amount1 *big.Int, err error)
}

// UnclaimedFeeResolver turns pending fee amounts from the chain
// simulator into formatted human-unit values.
type UnclaimedFeeResolver struct {
	sim    FeeSimulator
	logger *zap.Logger
}

func NewUnclaimedFeeResolver(sim FeeSimulator, logger *zap.Logger) *UnclaimedFeeResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnclaimedFeeResolver{sim: sim, logger: logger}
}

// Resolve returns the position's pending fees. Positions without
// liquidity owe nothing and skip the simulator round trip entirely.
// A simulator failure degrades this one position to zero fees; it is
// logged and never propagated.
func (r *UnclaimedFeeResolver) Resolve(ctx context.Context, position model.Position) model.UnclaimedFees {
	if !position.HasLiquidity() {
		return zeroUnclaimed()
	}
	if r.sim == nil {
		return zeroUnclaimed()
	}

	amount0, amount1, err := r.sim.SimulateCollect(ctx, position)
	if err != nil {
		r.logger.Warn("fee collection simulation failed",
			zap.String("position", position.ID),
			zap.Uint64("chain_id", position.ChainID),
			zap.Error(err),
		)
		return zeroUnclaimed()
	}

	token0 := position.Pool.Token0
	token1 := position.Pool.Token1
	usd := amm.BaseUnitsToFloat(amount0, token0.Decimals)*token0.PriceUSD +
		amm.BaseUnitsToFloat(amount1, token1.Decimals)*token1.PriceUSD

	return model.UnclaimedFees{
		Token0:    amm.FormatBaseUnits(amount0, token0.Decimals),
		Token1:    amm.FormatBaseUnits(amount1, token1.Decimals),
		AmountUSD: usd,
	}
}

func zeroUnclaimed() model.UnclaimedFees {
	return model.UnclaimedFees{Token0: "0", Token1: "0"}
}

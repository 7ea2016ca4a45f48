package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

const collectABIJSON = `[
  {"inputs": [{"components": [
      {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
      {"internalType": "address", "name": "recipient", "type": "address"},
      {"internalType": "uint128", "name": "amount0Max", "type": "uint128"},
      {"internalType": "uint128", "name": "amount1Max", "type": "uint128"}
    ], "internalType": "struct INonfungiblePositionManager.CollectParams", "name": "params", "type": "tuple"}],
   "name": "collect",
   "outputs": [
      {"internalType": "uint256", "name": "amount0", "type": "uint256"},
      {"internalType": "uint256", "name": "amount1", "type": "uint256"}
   ],
   "stateMutability": "payable", "type": "function"}
]`

var (
	collectABI    abi.ABI
	collectOnce   sync.Once
	collectABIErr error

	// maxUint128 requests the full pending balance for both tokens.
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

func getCollectABI() (abi.ABI, error) {
	collectOnce.Do(func() {
		collectABI, collectABIErr = abi.JSON(strings.NewReader(collectABIJSON))
	})
	return collectABI, collectABIErr
}

// CollectSimulator statically simulates a full-balance fee collection
// against the position manager contract. Nothing is signed or
// broadcast; the eth_call runs as the position owner so the collect
// authorization check passes.
type CollectSimulator struct {
	client  *Client
	manager common.Address
	logger  *zap.Logger
}

func NewCollectSimulator(client *Client, manager common.Address, logger *zap.Logger) *CollectSimulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectSimulator{client: client, manager: manager, logger: logger}
}

// SimulateCollect returns the pending fee amounts for a position in
// base units.
func (s *CollectSimulator) SimulateCollect(ctx context.Context, position model.Position) (*big.Int, *big.Int, error) {
	if s.client == nil {
		return nil, nil, fmt.Errorf("chain client is nil")
	}
	if !common.IsHexAddress(position.Owner) {
		return nil, nil, fmt.Errorf("invalid owner address: %s", position.Owner)
	}

	tokenID, ok := new(big.Int).SetString(position.ID, 10)
	if !ok {
		return nil, nil, fmt.Errorf("position id is not a token id: %s", position.ID)
	}

	parsed, err := getCollectABI()
	if err != nil {
		return nil, nil, fmt.Errorf("parse collect abi: %w", err)
	}

	owner := common.HexToAddress(position.Owner)
	data, err := parsed.Pack("collect", struct {
		TokenId    *big.Int
		Recipient  common.Address
		Amount0Max *big.Int
		Amount1Max *big.Int
	}{
		TokenId:    tokenID,
		Recipient:  owner,
		Amount0Max: maxUint128,
		Amount1Max: maxUint128,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("pack collect: %w", err)
	}

	msg := ethereum.CallMsg{From: owner, To: &s.manager, Data: data}
	resp, err := s.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("call collect: %w", err)
	}

	values, err := parsed.Unpack("collect", resp)
	if err != nil {
		return nil, nil, fmt.Errorf("unpack collect: %w", err)
	}
	if len(values) != 2 {
		return nil, nil, fmt.Errorf("collect return size %d", len(values))
	}

	amount0, ok := values[0].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("collect amount0 unexpected type %T", values[0])
	}
	amount1, ok := values[1].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("collect amount1 unexpected type %T", values[1])
	}

	return amount0, amount1, nil
}

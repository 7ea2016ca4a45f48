package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

// TokenPrice is the price/metadata pair served per token.
type TokenPrice struct {
	PriceUSD float64 `json:"price_usd"`
	LogoURI  string  `json:"logo_uri,omitempty"`
}

// Service resolves a token's USD price and logo by address or symbol.
type Service interface {
	Lookup(ctx context.Context, chainID uint64, addressOrSymbol string) (TokenPrice, error)
}

// chainSlugs maps chain ids to the price API's chain identifiers.
var chainSlugs = map[uint64]string{
	1:     "ethereum",
	10:    "optimism",
	137:   "polygon",
	8453:  "base",
	42161: "arbitrum",
}

// DefaultAPIBaseURL is the llama.fi-compatible current-price endpoint.
const DefaultAPIBaseURL = "https://coins.llama.fi"

// HTTPService queries a llama.fi-compatible price API.
type HTTPService struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPService(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPService {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Lookup resolves the current USD price of a token by address.
func (s *HTTPService) Lookup(ctx context.Context, chainID uint64, addressOrSymbol string) (TokenPrice, error) {
	slug, ok := chainSlugs[chainID]
	if !ok {
		return TokenPrice{}, fmt.Errorf("chain %d: %w", chainID, model.ErrUnknownChain)
	}
	if addressOrSymbol == "" {
		return TokenPrice{}, model.ErrUnknownToken
	}

	coinKey := fmt.Sprintf("%s:%s", slug, strings.ToLower(addressOrSymbol))
	url := fmt.Sprintf("%s/prices/current/%s", s.baseURL, coinKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return TokenPrice{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return TokenPrice{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TokenPrice{}, fmt.Errorf("price api status %d", resp.StatusCode)
	}

	var payload struct {
		Coins map[string]struct {
			Price float64 `json:"price"`
		} `json:"coins"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return TokenPrice{}, fmt.Errorf("decode price response: %w", err)
	}

	coin, ok := payload.Coins[coinKey]
	if !ok {
		return TokenPrice{}, fmt.Errorf("token %s on chain %d: %w", addressOrSymbol, chainID, model.ErrUnknownToken)
	}
	return TokenPrice{PriceUSD: coin.Price}, nil
}

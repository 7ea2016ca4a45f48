package subgraph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hexaonelabs/uniswap-lp-dashboard-sub000/internal/model"
)

const testOwner = "0x1111111111111111111111111111111111111111"

func testClient(url string, cacheTTL time.Duration) *Client {
	return NewClient(Config{
		Endpoints: map[uint64]string{1: url},
		CacheTTL:  cacheTTL,
	}, nil)
}

func TestPositionsByOwner(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprintf(w, `{"data": {"positions": [%s]}}`, positionFixture)
	}))
	defer server.Close()

	client := testClient(server.URL, time.Minute)
	positions, err := client.PositionsByOwner(context.Background(), 1, testOwner)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(positions))
	}
	if positions[0].ID != "7" || positions[0].Pool.ID != "0xabc" {
		t.Fatalf("position = %+v", positions[0])
	}

	// Second fetch must be served from cache.
	if _, err := client.PositionsByOwner(context.Background(), 1, testOwner); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if requests != 1 {
		t.Fatalf("requests = %d, want 1", requests)
	}
}

func TestPositionsByOwnerSkipsMalformedRows(t *testing.T) {
	// Second row has an inverted tick range and must be dropped without
	// failing the whole fetch.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		broken := `{"id": "8", "liquidity": "1", "tickLower": {"tickIdx": "100"}, "tickUpper": {"tickIdx": "-100"}}`
		fmt.Fprintf(w, `{"data": {"positions": [%s, %s]}}`, positionFixture, broken)
	}))
	defer server.Close()

	client := testClient(server.URL, 0)
	positions, err := client.PositionsByOwner(context.Background(), 1, testOwner)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(positions) != 1 || positions[0].ID != "7" {
		t.Fatalf("positions = %+v, want only id 7", positions)
	}
}

func TestPositionsByOwnerInvalidAddress(t *testing.T) {
	client := testClient("http://unused", 0)
	if _, err := client.PositionsByOwner(context.Background(), 1, "not-an-address"); err == nil {
		t.Fatal("expected invalid address error")
	}
}

func TestQueryUnknownChain(t *testing.T) {
	client := testClient("http://unused", 0)
	_, err := client.PositionsByOwner(context.Background(), 999, testOwner)
	if !errors.Is(err, model.ErrUnknownChain) {
		t.Fatalf("err = %v, want ErrUnknownChain", err)
	}
}

func TestQueryRetriesServerErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"data": {"positions": []}}`)
	}))
	defer server.Close()

	client := NewClient(Config{
		Endpoints:    map[uint64]string{1: server.URL},
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}, nil)

	positions, err := client.PositionsByOwner(context.Background(), 1, testOwner)
	if err != nil {
		t.Fatalf("fetch after retry: %v", err)
	}
	if len(positions) != 0 {
		t.Fatalf("positions = %d, want 0", len(positions))
	}
	if requests != 2 {
		t.Fatalf("requests = %d, want 2", requests)
	}
}

func TestQueryGraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"errors": [{"message": "rate limited"}]}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 0)
	_, err := client.PositionsByOwner(context.Background(), 1, testOwner)
	if err == nil {
		t.Fatal("expected graphql error")
	}
}

func TestPoolByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data": {"pool": {
			"id": "0xabc",
			"feeTier": "500",
			"liquidity": "12345",
			"tick": "-5",
			"totalValueLockedUSD": "2000000",
			"token0": {"id": "0x1", "symbol": "USDC", "decimals": "6", "totalValueLockedUSD": "1", "poolCount": "1"},
			"token1": {"id": "0x2", "symbol": "WETH", "decimals": "18", "totalValueLockedUSD": "1", "poolCount": "1"}
		}}}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 0)
	pool, err := client.PoolByID(context.Background(), 1, "0xABC")
	if err != nil {
		t.Fatalf("fetch pool: %v", err)
	}
	if pool.FeeTier != 500 || pool.Tick != -5 {
		t.Fatalf("pool = %+v", pool)
	}
}

func TestPoolByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data": {"pool": null}}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 0)
	if _, err := client.PoolByID(context.Background(), 1, "0xmissing"); err == nil {
		t.Fatal("expected not-found error")
	}
}

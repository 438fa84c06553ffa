package etherscan

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at an httptest server; the server is torn
// down with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

// ---------------------------------------------------------------------------
// NewClient
// ---------------------------------------------------------------------------

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

// ---------------------------------------------------------------------------
// request — envelope normalization
// ---------------------------------------------------------------------------

func TestRequestV1Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"status":"1","message":"OK","result":"1000000000000000000"}`))
	})

	res := c.AccountBalance(context.Background(), "1", "0xabc")
	require.True(t, res.Success)
	assert.Equal(t, "1000000000000000000", res.BalanceWei.String())
	assert.Equal(t, "1.000000000000000000", res.BalanceETH)
	assert.Equal(t, "Ethereum Mainnet", res.Network)
}

func TestRequestV1ErrorStringInResult(t *testing.T) {
	// Failed V1 calls carry the real reason as a string result.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
	})

	res := c.AccountBalance(context.Background(), "1", "0xabc")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "NOTOK")
	assert.Contains(t, res.Error, "Max rate limit reached")
}

func TestRequestV2ErrorObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("chainid"))
		w.Write([]byte(`{"error":{"code":-32602,"message":"invalid argument"}}`))
	})

	res := c.TokenBalance(context.Background(), "1", "0xtoken", "0xabc")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "invalid argument")
	assert.Contains(t, res.Error, "-32602")
}

func TestRequestV2BareResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x10"}`))
	})

	res := c.BlockNumber(context.Background(), "1")
	require.True(t, res.Success)
	assert.Equal(t, uint64(16), res.BlockNumber)
	assert.Equal(t, "0x10", res.BlockNumberHex)
}

func TestRequestHTTPErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	res := c.BlockNumber(context.Background(), "1")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "HTTP error")
}

func TestRequestInvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	})

	res := c.BlockNumber(context.Background(), "1")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "invalid JSON")
}

func TestRequestUnknownChainNetworkFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","message":"OK","result":"0"}`))
	})

	res := c.AccountBalance(context.Background(), "424242", "0xabc")
	assert.Equal(t, "Chain ID: 424242", res.Network)
}

// ---------------------------------------------------------------------------
// value helpers
// ---------------------------------------------------------------------------

func TestWeiToEtherWholeUnit(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.500000000000000000", weiToEther(wei))
}

func TestWeiToEtherZero(t *testing.T) {
	assert.Equal(t, "0.000000000000000000", weiToEther(big.NewInt(0)))
}

func TestParseQuantityHex(t *testing.T) {
	n, ok := parseQuantity("0x121eac0")
	require.True(t, ok)
	assert.Equal(t, int64(19000000), n.Int64())
}

func TestParseQuantityDecimal(t *testing.T) {
	n, ok := parseQuantity("42")
	require.True(t, ok)
	assert.Equal(t, int64(42), n.Int64())
}

func TestParseQuantityGarbage(t *testing.T) {
	_, ok := parseQuantity("0xzz")
	assert.False(t, ok)
}

package etherscan

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TransactionReceipts — batch arity
// ---------------------------------------------------------------------------

func TestTransactionReceiptsEmptyList(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	res := c.TransactionReceipts(context.Background(), "1", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Transaction hashes list cannot be empty", res.Error)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestTransactionReceiptsTooMany(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	hashes := make([]string, MaxReceiptHashes+1)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("0x%064x", i)
	}

	res := c.TransactionReceipts(context.Background(), "1", hashes)
	assert.False(t, res.Success)
	assert.Equal(t, "Maximum 20 transaction hashes allowed", res.Error)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestTransactionReceiptsAtLimit(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"status":"0x1"}}`))
	})

	hashes := make([]string, MaxReceiptHashes)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("0x%064x", i)
	}

	res := c.TransactionReceipts(context.Background(), "1", hashes)
	require.True(t, res.Success)
	assert.Equal(t, MaxReceiptHashes, res.SuccessfulCount)
	assert.Equal(t, MaxReceiptHashes, res.TotalRequested)
	assert.Equal(t, int32(MaxReceiptHashes), atomic.LoadInt32(&hits))
}

func TestTransactionReceiptsPartialFailureKeepsOrder(t *testing.T) {
	// The middle hash fails; the batch still succeeds with a tally.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("txhash") == "0xbad" {
			w.Write([]byte(`{"error":{"code":-32000,"message":"not found"}}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"status":"0x1"}}`))
	})

	res := c.TransactionReceipts(context.Background(), "1", []string{"0xaaa", "0xbad", "0xccc"})
	require.True(t, res.Success)
	assert.Equal(t, 2, res.SuccessfulCount)
	assert.Equal(t, 3, res.TotalRequested)
	require.Len(t, res.Receipts, 3)
	assert.Equal(t, "0xaaa", res.Receipts[0].TxHash)
	assert.Equal(t, "0xbad", res.Receipts[1].TxHash)
	assert.Equal(t, "0xccc", res.Receipts[2].TxHash)
	assert.True(t, res.Receipts[0].Success)
	assert.False(t, res.Receipts[1].Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "0xbad")
	assert.Contains(t, res.Errors[0], "not found")
}

// ---------------------------------------------------------------------------
// single lookups
// ---------------------------------------------------------------------------

func TestTransactionReceiptPassthrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eth_getTransactionReceipt", r.URL.Query().Get("action"))
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"status":"0x1","gasUsed":"0x5208"}}`))
	})

	res := c.TransactionReceipt(context.Background(), "1", "0xdead")
	require.True(t, res.Success)
	assert.JSONEq(t, `{"status":"0x1","gasUsed":"0x5208"}`, string(res.Receipt))
}

func TestTransactionStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getstatus", r.URL.Query().Get("action"))
		w.Write([]byte(`{"status":"1","message":"OK","result":{"isError":"0","errDescription":""}}`))
	})

	res := c.TransactionStatus(context.Background(), "1", "0xdead")
	require.True(t, res.Success)
	assert.JSONEq(t, `{"isError":"0","errDescription":""}`, string(res.Status))
}

func TestTransactionCountNormalizesTag(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0x121eac0", r.URL.Query().Get("tag"))
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x2a"}`))
	})

	res := c.TransactionCount(context.Background(), "1", "0xabc", "19000000")
	require.True(t, res.Success)
	assert.Equal(t, uint64(42), res.Nonce)
	assert.Equal(t, "0x2a", res.NonceHex)
}

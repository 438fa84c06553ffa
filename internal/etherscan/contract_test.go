package etherscan

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ContractABI
// ---------------------------------------------------------------------------

func TestContractABISummaries(t *testing.T) {
	abiJSON := `[{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},{"type":"event","name":"Transfer","inputs":[]}]`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getabi", r.URL.Query().Get("action"))
		resp := `{"status":"1","message":"OK","result":` + jsonQuote(abiJSON) + `}`
		w.Write([]byte(resp))
	})

	res := c.ContractABI(context.Background(), "1", "0xtoken")
	require.True(t, res.Success)
	assert.Equal(t, abiJSON, res.ABI)
	require.Len(t, res.Functions, 1)
	assert.Equal(t, "transfer", res.Functions[0].Name)
	assert.Equal(t, "nonpayable", res.Functions[0].StateMutability)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Transfer", res.Events[0].Name)
}

func TestContractABIUnverified(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`))
	})

	res := c.ContractABI(context.Background(), "1", "0xtoken")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not verified")
}

func TestSummarizeABIUnparseable(t *testing.T) {
	fns, evs := summarizeABI("not json at all")
	assert.Nil(t, fns)
	assert.Nil(t, evs)
}

// ---------------------------------------------------------------------------
// ContractSource
// ---------------------------------------------------------------------------

func TestContractSourceArrayShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","message":"OK","result":[{"SourceCode":"contract Foo {}","ContractName":"Foo","CompilerVersion":"v0.8.19","Proxy":"0"}]}`))
	})

	res := c.ContractSource(context.Background(), "1", "0xfoo")
	require.True(t, res.Success)
	assert.Equal(t, "contract Foo {}", res.SourceCode)
	assert.Equal(t, "Foo", res.ContractName)
	assert.Equal(t, "v0.8.19", res.CompilerVersion)
	assert.Equal(t, "0", res.Proxy)
}

func TestContractSourceObjectShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","message":"OK","result":{"SourceCode":"contract Bar {}","ContractName":"Bar"}}`))
	})

	res := c.ContractSource(context.Background(), "1", "0xbar")
	require.True(t, res.Success)
	assert.Equal(t, "Bar", res.ContractName)
}

// ---------------------------------------------------------------------------
// ContractCreation — batch arity
// ---------------------------------------------------------------------------

func TestContractCreationEmptyList(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	res := c.ContractCreation(context.Background(), "1", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Contract addresses list cannot be empty", res.Error)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestContractCreationTooMany(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	res := c.ContractCreation(context.Background(), "1", []string{"a", "b", "c", "d", "e", "f"})
	assert.False(t, res.Success)
	assert.Equal(t, "Maximum 5 contract addresses allowed", res.Error)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestContractCreationAtLimit(t *testing.T) {
	// Exactly MaxCreationAddresses is allowed and issues one request.
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "0x1,0x2,0x3,0x4,0x5", r.URL.Query().Get("contractaddresses"))
		w.Write([]byte(`{"status":"1","message":"OK","result":[` +
			`{"contractAddress":"0x1","contractCreator":"0xc1","txHash":"0xt1"},` +
			`{"contractAddress":"0x2","contractCreator":"0xc2","txHash":"0xt2"},` +
			`{"contractAddress":"0x3","contractCreator":"0xc3","txHash":"0xt3"},` +
			`{"contractAddress":"0x4","contractCreator":"0xc4","txHash":"0xt4"},` +
			`{"contractAddress":"0x5","contractCreator":"0xc5","txHash":"0xt5"}]}`))
	})

	addresses := []string{"0x1", "0x2", "0x3", "0x4", "0x5"}
	require.Len(t, addresses, MaxCreationAddresses)

	res := c.ContractCreation(context.Background(), "1", addresses)
	require.True(t, res.Success)
	assert.Len(t, res.CreationInfo, MaxCreationAddresses)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestContractCreationJoinsAddresses(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0xaaa,0xbbb", r.URL.Query().Get("contractaddresses"))
		w.Write([]byte(`{"status":"1","message":"OK","result":[{"contractAddress":"0xaaa","contractCreator":"0xc1","txHash":"0xt1"},{"contractAddress":"0xbbb","contractCreator":"0xc2","txHash":"0xt2"}]}`))
	})

	res := c.ContractCreation(context.Background(), "1", []string{"0xaaa", "0xbbb"})
	require.True(t, res.Success)
	require.Len(t, res.CreationInfo, 2)
	assert.Equal(t, "0xc1", res.CreationInfo[0].ContractCreator)
	assert.Equal(t, "0xt2", res.CreationInfo[1].TxHash)
	assert.Equal(t, []string{"0xaaa", "0xbbb"}, res.RequestedAddresses)
}

// jsonQuote JSON-escapes a string for embedding in a handwritten response.
func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

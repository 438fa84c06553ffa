package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
)

const (
	// MaxReceiptHashes caps one batch receipt lookup.
	MaxReceiptHashes = 20
	// receiptWorkers bounds batch fan-out concurrency.
	receiptWorkers = 5
)

// TransactionResult wraps a proxy transaction lookup; the node's
// transaction object passes through unmodified.
type TransactionResult struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	TxHash      string          `json:"tx_hash"`
	Transaction json.RawMessage `json:"transaction,omitempty"`
	Network     string          `json:"network"`
}

// TransactionByHash returns full transaction details.
func (c *Client) TransactionByHash(ctx context.Context, chainID, txHash string) *TransactionResult {
	out := &TransactionResult{TxHash: txHash, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_getTransactionByHash")
	params.Set("txhash", txHash)

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Transaction = raw
	return out
}

// ReceiptResult wraps a single transaction receipt lookup.
type ReceiptResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	TxHash  string          `json:"tx_hash"`
	Receipt json.RawMessage `json:"receipt,omitempty"`
	Network string          `json:"network"`
}

// TransactionReceipt returns the receipt (status, gas used, logs) for a
// transaction hash.
func (c *Client) TransactionReceipt(ctx context.Context, chainID, txHash string) *ReceiptResult {
	out := &ReceiptResult{TxHash: txHash, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_getTransactionReceipt")
	params.Set("txhash", txHash)

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Receipt = raw
	return out
}

// ReceiptItem is one entry of a batch receipt lookup, in input order.
type ReceiptItem struct {
	TxHash  string          `json:"tx_hash"`
	Receipt json.RawMessage `json:"receipt"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
}

// ReceiptBatchResult aggregates a batch receipt lookup. A failed item does
// not fail the batch: Success reports that the batch executed, with the
// per-item tally in SuccessfulCount and individual failures in Errors.
type ReceiptBatchResult struct {
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
	RequestedHashes []string      `json:"requested_hashes,omitempty"`
	Receipts        []ReceiptItem `json:"receipts_info,omitempty"`
	SuccessfulCount int           `json:"successful_count"`
	TotalRequested  int           `json:"total_requested"`
	Errors          []string      `json:"errors,omitempty"`
	Network         string        `json:"network,omitempty"`
}

// TransactionReceipts fetches receipts for up to MaxReceiptHashes hashes.
// Sub-requests run with bounded concurrency; results keep input order.
// Arity violations fail before any sub-request is issued.
func (c *Client) TransactionReceipts(ctx context.Context, chainID string, txHashes []string) *ReceiptBatchResult {
	if len(txHashes) == 0 {
		return &ReceiptBatchResult{Error: "Transaction hashes list cannot be empty"}
	}
	if len(txHashes) > MaxReceiptHashes {
		return &ReceiptBatchResult{Error: "Maximum 20 transaction hashes allowed"}
	}

	out := &ReceiptBatchResult{
		Success:         true,
		RequestedHashes: txHashes,
		Receipts:        make([]ReceiptItem, len(txHashes)),
		TotalRequested:  len(txHashes),
		Network:         c.network(chainID),
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, receiptWorkers)
	for i, h := range txHashes {
		wg.Add(1)
		go func(i int, hash string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r := c.TransactionReceipt(ctx, chainID, hash)
			out.Receipts[i] = ReceiptItem{
				TxHash:  hash,
				Receipt: r.Receipt,
				Success: r.Success,
				Error:   r.Error,
			}
		}(i, h)
	}
	wg.Wait()

	for _, item := range out.Receipts {
		if item.Success {
			out.SuccessfulCount++
		} else {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", item.TxHash, item.Error))
		}
	}
	return out
}

// StatusResult wraps a contract-execution status check.
type StatusResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	TxHash  string          `json:"tx_hash"`
	Status  json.RawMessage `json:"status,omitempty"`
	Network string          `json:"network"`
}

// TransactionStatus checks the contract execution status of a transaction.
func (c *Client) TransactionStatus(ctx context.Context, chainID, txHash string) *StatusResult {
	out := &StatusResult{TxHash: txHash, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "transaction")
	params.Set("action", "getstatus")
	params.Set("txhash", txHash)

	raw, err := c.request(ctx, chainID, params, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Status = raw
	return out
}

// NonceResult wraps a transaction-count lookup.
type NonceResult struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Address  string `json:"address"`
	Nonce    uint64 `json:"nonce"`
	NonceHex string `json:"nonce_hex,omitempty"`
	Network  string `json:"network"`
}

// TransactionCount returns the number of transactions sent from an
// address at the given block tag.
func (c *Client) TransactionCount(ctx context.Context, chainID, address, tag string) *NonceResult {
	out := &NonceResult{Address: address, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_getTransactionCount")
	params.Set("address", address)
	params.Set("tag", NormalizeBlockTag(tag))

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	s, err := resultString(raw)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	n, ok := parseQuantity(s)
	if !ok {
		out.Error = "could not parse nonce: " + s
		return out
	}

	out.Success = true
	out.Nonce = n.Uint64()
	out.NonceHex = s
	return out
}

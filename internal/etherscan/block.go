package etherscan

import (
	"context"
	"encoding/json"
	"net/url"
)

// BlockNumberResult wraps the latest block number lookup.
type BlockNumberResult struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	BlockNumber    uint64 `json:"block_number"`
	BlockNumberHex string `json:"block_number_hex,omitempty"`
	Network        string `json:"network"`
}

// BlockNumber returns the chain head block number.
func (c *Client) BlockNumber(ctx context.Context, chainID string) *BlockNumberResult {
	out := &BlockNumberResult{Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_blockNumber")

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
		out.Error = "could not parse block number: " + s
		return out
	}

	out.Success = true
	out.BlockNumber = n.Uint64()
	out.BlockNumberHex = s
	return out
}

// BlockResult wraps a full block lookup; the node's block object passes
// through unmodified.
type BlockResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Block   json.RawMessage `json:"block,omitempty"`
	Network string          `json:"network"`
}

// BlockByNumber returns a block (with full transactions) by number or tag.
func (c *Client) BlockByNumber(ctx context.Context, chainID, blockNumber string) *BlockResult {
	out := &BlockResult{Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_getBlockByNumber")
	params.Set("tag", NormalizeBlockTag(blockNumber))
	params.Set("boolean", "true")

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Block = raw
	return out
}

// BlockByTimestampResult wraps a timestamp → block-number lookup.
type BlockByTimestampResult struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Timestamp   string `json:"timestamp"`
	Closest     string `json:"closest"`
	BlockNumber string `json:"block_number,omitempty"`
	Network     string `json:"network"`
}

// BlockNumberByTimestamp returns the block mined closest to a Unix
// timestamp. closest is "before" or "after"; anything else defaults to
// "before".
func (c *Client) BlockNumberByTimestamp(ctx context.Context, chainID, timestamp, closest string) *BlockByTimestampResult {
	if closest != "after" {
		closest = "before"
	}
	out := &BlockByTimestampResult{
		Timestamp: timestamp,
		Closest:   closest,
		Network:   c.network(chainID),
	}

	params := url.Values{}
	params.Set("module", "block")
	params.Set("action", "getblocknobytime")
	params.Set("timestamp", timestamp)
	params.Set("closest", closest)

	raw, err := c.request(ctx, chainID, params, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	s, err := resultString(raw)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.BlockNumber = s
	return out
}

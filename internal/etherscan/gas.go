package etherscan

import (
	"context"
	"encoding/json"
	"net/url"
)

// GasOracleResult wraps the gas tracker oracle output (safe/proposed/fast
// gas prices plus base fee where the chain supports it).
type GasOracleResult struct {
	Success  bool            `json:"success"`
	Error    string          `json:"error,omitempty"`
	GasPrice json.RawMessage `json:"gas_price,omitempty"`
	Network  string          `json:"network"`
}

// GasOracle returns current gas price recommendations.
func (c *Client) GasOracle(ctx context.Context, chainID string) *GasOracleResult {
	out := &GasOracleResult{Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "gastracker")
	params.Set("action", "gasoracle")

	raw, err := c.request(ctx, chainID, params, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.GasPrice = raw
	return out
}

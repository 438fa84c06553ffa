package etherscan

import (
	"context"
)

// Standard ERC-20 read fragments used by TokenDetails.
const (
	nameABI        = `{"inputs":[],"name":"name","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"}`
	symbolABI      = `{"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"}`
	decimalsABI    = `{"inputs":[],"name":"decimals","outputs":[{"internalType":"uint8","name":"","type":"uint8"}],"stateMutability":"view","type":"function"}`
	totalSupplyABI = `{"inputs":[],"name":"totalSupply","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}`
)

// TokenDetails aggregates the common ERC-20 metadata reads.
type TokenDetails struct {
	Name        interface{} `json:"name"`
	Symbol      interface{} `json:"symbol"`
	Decimals    interface{} `json:"decimals"`
	TotalSupply interface{} `json:"total_supply"`
}

// TokenDetailsResult wraps a composite token inspection.
type TokenDetailsResult struct {
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
	ContractAddress string        `json:"contract_address"`
	Details         *TokenDetails `json:"token_details,omitempty"`
	Network         string        `json:"network"`
}

// TokenDetailsFor reads name, symbol, decimals and totalSupply from a
// token contract via eth_call. A field whose call fails falls back to a
// sane default instead of failing the whole lookup; the contract must at
// least have a retrievable ABI (i.e. be verified) to proceed.
func (c *Client) TokenDetailsFor(ctx context.Context, chainID, contractAddress string) *TokenDetailsResult {
	out := &TokenDetailsResult{ContractAddress: contractAddress, Network: c.network(chainID)}

	abiRes := c.ContractABI(ctx, chainID, contractAddress)
	if !abiRes.Success {
		out.Error = "Could not retrieve contract ABI"
		return out
	}

	details := &TokenDetails{
		Name:        "Unknown",
		Symbol:      "Unknown",
		Decimals:    18,
		TotalSupply: 0,
	}
	if v, ok := c.readTokenField(ctx, chainID, contractAddress, nameABI); ok {
		details.Name = v
	}
	if v, ok := c.readTokenField(ctx, chainID, contractAddress, symbolABI); ok {
		details.Symbol = v
	}
	if v, ok := c.readTokenField(ctx, chainID, contractAddress, decimalsABI); ok {
		details.Decimals = v
	}
	if v, ok := c.readTokenField(ctx, chainID, contractAddress, totalSupplyABI); ok {
		details.TotalSupply = v
	}

	out.Success = true
	out.Details = details
	return out
}

func (c *Client) readTokenField(ctx context.Context, chainID, contractAddress, methodABI string) (interface{}, bool) {
	res := c.ExecuteMethod(ctx, chainID, contractAddress, methodABI, "", "latest")
	if !res.Success || res.DecodedResult == nil || res.DecodedResult.DecodedData == nil {
		return nil, false
	}
	return res.DecodedResult.DecodedData, true
}

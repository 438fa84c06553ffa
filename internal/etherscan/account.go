package etherscan

import (
	"context"
	"encoding/json"
	"math/big"
	"net/url"
)

// PageOpts controls list pagination. Zero values fall back to the API
// defaults: full block range, first page, 10 records.
type PageOpts struct {
	StartBlock string
	EndBlock   string
	Page       string
	Offset     string
}

func (p PageOpts) apply(params url.Values) {
	startBlock := p.StartBlock
	if startBlock == "" {
		startBlock = "0"
	}
	endBlock := p.EndBlock
	if endBlock == "" {
		endBlock = "99999999"
	}
	page := p.Page
	if page == "" {
		page = "1"
	}
	offset := p.Offset
	if offset == "" {
		offset = "10"
	}
	params.Set("startblock", startBlock)
	params.Set("endblock", endBlock)
	params.Set("page", page)
	params.Set("offset", offset)
	params.Set("sort", "desc")
}

// BalanceResult is the payload for a native balance lookup.
type BalanceResult struct {
	Success    bool     `json:"success"`
	Error      string   `json:"error,omitempty"`
	Address    string   `json:"address"`
	BalanceWei *big.Int `json:"balance_wei,omitempty"`
	BalanceETH string   `json:"balance_eth,omitempty"`
	Network    string   `json:"network"`
}

// AccountBalance returns the native balance for an address.
func (c *Client) AccountBalance(ctx context.Context, chainID, address string) *BalanceResult {
	out := &BalanceResult{Address: address, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")

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
	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		out.Error = "could not parse balance: " + s
		return out
	}

	out.Success = true
	out.BalanceWei = wei
	out.BalanceETH = weiToEther(wei)
	return out
}

// TxListResult is the payload for transaction-list lookups. Items stays
// raw: the explorer's per-transaction shape is passed through unchanged.
type TxListResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Address string          `json:"address"`
	Items   json.RawMessage `json:"transactions,omitempty"`
	Network string          `json:"network"`
}

// Transactions returns recent normal transactions for an address.
func (c *Client) Transactions(ctx context.Context, chainID, address string, page PageOpts) *TxListResult {
	return c.txList(ctx, chainID, address, "txlist", "", page)
}

// InternalTransactions returns recent internal transactions for an address.
func (c *Client) InternalTransactions(ctx context.Context, chainID, address string, page PageOpts) *TxListResult {
	return c.txList(ctx, chainID, address, "txlistinternal", "", page)
}

// TokenTransfers returns ERC-20 transfers for an address, optionally
// narrowed to one token contract.
func (c *Client) TokenTransfers(ctx context.Context, chainID, address, contractAddress string, page PageOpts) *TxListResult {
	return c.txList(ctx, chainID, address, "tokentx", contractAddress, page)
}

// ERC721Transfers returns NFT transfers for an address, optionally
// narrowed to one collection contract.
func (c *Client) ERC721Transfers(ctx context.Context, chainID, address, contractAddress string, page PageOpts) *TxListResult {
	return c.txList(ctx, chainID, address, "tokennfttx", contractAddress, page)
}

func (c *Client) txList(ctx context.Context, chainID, address, action, contractAddress string, page PageOpts) *TxListResult {
	out := &TxListResult{Address: address, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", action)
	params.Set("address", address)
	if contractAddress != "" {
		params.Set("contractaddress", contractAddress)
	}
	page.apply(params)

	raw, err := c.request(ctx, chainID, params, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Items = raw
	return out
}

// TokenBalanceResult is the payload for an ERC-20 balance lookup.
type TokenBalanceResult struct {
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	Address         string `json:"address"`
	ContractAddress string `json:"contract_address"`
	Balance         string `json:"balance,omitempty"`
	Network         string `json:"network"`
}

// TokenBalance returns the raw token balance of address for one token
// contract, in base units.
func (c *Client) TokenBalance(ctx context.Context, chainID, contractAddress, address string) *TokenBalanceResult {
	out := &TokenBalanceResult{
		Address:         address,
		ContractAddress: contractAddress,
		Network:         c.network(chainID),
	}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokenbalance")
	params.Set("contractaddress", contractAddress)
	params.Set("address", address)
	params.Set("tag", "latest")

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

	out.Success = true
	out.Balance = s
	return out
}

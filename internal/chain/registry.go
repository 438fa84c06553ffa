// Package chain holds the static registry of EVM networks reachable
// through the Etherscan V2 unified API.
package chain

import (
	"fmt"
	"sort"
)

// Network holds display metadata for a single chain.
type Network struct {
	ChainID     string `json:"chain_id"`
	DisplayName string `json:"display_name"`
	Testnet     bool   `json:"testnet"`
}

// Registry maps numeric chain IDs (as strings, the way they arrive over
// the tool interface) to network metadata. Static and read-only for the
// process lifetime.
type Registry struct {
	networks []Network
	byID     map[string]*Network
}

// NewRegistry creates the registry of known networks.
func NewRegistry() *Registry {
	networks := allNetworks()
	r := &Registry{
		networks: networks,
		byID:     make(map[string]*Network, len(networks)),
	}
	for i := range r.networks {
		n := &r.networks[i]
		r.byID[n.ChainID] = n
	}
	return r
}

// Lookup returns the network for a chain ID. ok is false if unknown.
func (r *Registry) Lookup(chainID string) (Network, bool) {
	n, ok := r.byID[chainID]
	if !ok {
		return Network{}, false
	}
	return *n, true
}

// Name returns the display name for a chain ID, falling back to
// "Chain ID: <id>" for chains outside the table. Any chain ID is usable
// with the unified API; the table only improves readability.
func (r *Registry) Name(chainID string) string {
	if n, ok := r.byID[chainID]; ok {
		return n.DisplayName
	}
	return fmt.Sprintf("Chain ID: %s", chainID)
}

// All returns every known network sorted by chain ID.
func (r *Registry) All() []Network {
	out := make([]Network, len(r.networks))
	copy(out, r.networks)
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

var defaultRegistry = NewRegistry()

// NetworkName resolves a chain ID against the process-wide registry.
func NetworkName(chainID string) string {
	return defaultRegistry.Name(chainID)
}

func allNetworks() []Network {
	return []Network{
		{ChainID: "1", DisplayName: "Ethereum Mainnet"},
		{ChainID: "56", DisplayName: "BSC Mainnet"},
		{ChainID: "137", DisplayName: "Polygon Mainnet"},
		{ChainID: "42161", DisplayName: "Arbitrum One"},
		{ChainID: "10", DisplayName: "Optimism"},
		{ChainID: "43114", DisplayName: "Avalanche C-Chain"},
		{ChainID: "250", DisplayName: "Fantom Opera"},
		{ChainID: "8453", DisplayName: "Base"},
		{ChainID: "59144", DisplayName: "Linea"},
		{ChainID: "534352", DisplayName: "Scroll"},
		{ChainID: "1101", DisplayName: "Polygon zkEVM"},
		{ChainID: "7777777", DisplayName: "Zora"},
		{ChainID: "100", DisplayName: "Gnosis"},
		{ChainID: "5000", DisplayName: "Mantle"},
		{ChainID: "42220", DisplayName: "Celo"},
		{ChainID: "324", DisplayName: "zkSync Era"},
		{ChainID: "11155111", DisplayName: "Sepolia Testnet", Testnet: true},
		{ChainID: "5", DisplayName: "Goerli Testnet", Testnet: true},
		{ChainID: "11155420", DisplayName: "Optimism Sepolia", Testnet: true},
		{ChainID: "421614", DisplayName: "Arbitrum Sepolia", Testnet: true},
		{ChainID: "80001", DisplayName: "Mumbai Testnet", Testnet: true},
		{ChainID: "97", DisplayName: "BSC Testnet", Testnet: true},
		{ChainID: "43113", DisplayName: "Avalanche Fuji Testnet", Testnet: true},
		{ChainID: "4002", DisplayName: "Fantom Testnet", Testnet: true},
	}
}

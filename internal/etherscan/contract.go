package etherscan

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// MaxCreationAddresses caps one getcontractcreation lookup.
const MaxCreationAddresses = 5

// ABIFunction is a function summary extracted from a verified contract ABI.
type ABIFunction struct {
	Name            string          `json:"name"`
	Inputs          json.RawMessage `json:"inputs"`
	Outputs         json.RawMessage `json:"outputs"`
	StateMutability string          `json:"stateMutability,omitempty"`
}

// ABIEvent is an event summary extracted from a verified contract ABI.
type ABIEvent struct {
	Name   string          `json:"name"`
	Inputs json.RawMessage `json:"inputs"`
}

// ContractABIResult is the payload for a verified-contract ABI lookup.
// ABI is the raw JSON string as published; Functions and Events are parsed
// summaries, empty when the ABI string does not parse.
type ContractABIResult struct {
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
	ContractAddress string        `json:"contract_address"`
	ABI             string        `json:"abi,omitempty"`
	Functions       []ABIFunction `json:"functions,omitempty"`
	Events          []ABIEvent    `json:"events,omitempty"`
	Network         string        `json:"network"`
}

// ContractABI fetches the ABI of a verified contract.
func (c *Client) ContractABI(ctx context.Context, chainID, contractAddress string) *ContractABIResult {
	out := &ContractABIResult{ContractAddress: contractAddress, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getabi")
	params.Set("address", contractAddress)

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	abiJSON, err := resultString(raw)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.ABI = abiJSON
	out.Functions, out.Events = summarizeABI(abiJSON)
	return out
}

// summarizeABI extracts function and event entries from a full contract
// ABI. An unparseable ABI yields empty summaries, not an error; the raw
// string is still returned to the caller.
func summarizeABI(abiJSON string) ([]ABIFunction, []ABIEvent) {
	var entries []struct {
		Type            string          `json:"type"`
		Name            string          `json:"name"`
		Inputs          json.RawMessage `json:"inputs"`
		Outputs         json.RawMessage `json:"outputs"`
		StateMutability string          `json:"stateMutability"`
	}
	if err := json.Unmarshal([]byte(abiJSON), &entries); err != nil {
		return nil, nil
	}

	var fns []ABIFunction
	var evs []ABIEvent
	for _, e := range entries {
		switch e.Type {
		case "function":
			fns = append(fns, ABIFunction{
				Name:            e.Name,
				Inputs:          e.Inputs,
				Outputs:         e.Outputs,
				StateMutability: e.StateMutability,
			})
		case "event":
			evs = append(evs, ABIEvent{Name: e.Name, Inputs: e.Inputs})
		}
	}
	return fns, evs
}

// ContractSourceResult is the payload for a verified source-code lookup.
type ContractSourceResult struct {
	Success              bool   `json:"success"`
	Error                string `json:"error,omitempty"`
	ContractAddress      string `json:"contract_address"`
	SourceCode           string `json:"source_code,omitempty"`
	ContractName         string `json:"contract_name,omitempty"`
	CompilerVersion      string `json:"compiler_version,omitempty"`
	OptimizationUsed     string `json:"optimization_used,omitempty"`
	Runs                 string `json:"runs,omitempty"`
	ConstructorArguments string `json:"constructor_arguments,omitempty"`
	Library              string `json:"library,omitempty"`
	LicenseType          string `json:"license_type,omitempty"`
	Proxy                string `json:"proxy,omitempty"`
	Implementation       string `json:"implementation,omitempty"`
	SwarmSource          string `json:"swarm_source,omitempty"`
	Network              string `json:"network"`
}

type sourceInfo struct {
	SourceCode           string `json:"SourceCode"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	Library              string `json:"Library"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
	SwarmSource          string `json:"SwarmSource"`
}

// ContractSource fetches the verified source of a contract. The API
// returns either a one-element array or a bare object; both are accepted.
func (c *Client) ContractSource(ctx context.Context, chainID, contractAddress string) *ContractSourceResult {
	out := &ContractSourceResult{ContractAddress: contractAddress, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getsourcecode")
	params.Set("address", contractAddress)

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	var info sourceInfo
	var list []sourceInfo
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		info = list[0]
	} else if err := json.Unmarshal(raw, &info); err != nil {
		out.Error = "unexpected source result shape: " + err.Error()
		return out
	}

	out.Success = true
	out.SourceCode = info.SourceCode
	out.ContractName = info.ContractName
	out.CompilerVersion = info.CompilerVersion
	out.OptimizationUsed = info.OptimizationUsed
	out.Runs = info.Runs
	out.ConstructorArguments = info.ConstructorArguments
	out.Library = info.Library
	out.LicenseType = info.LicenseType
	out.Proxy = info.Proxy
	out.Implementation = info.Implementation
	out.SwarmSource = info.SwarmSource
	return out
}

// CreationInfo is one contract's deployment record.
type CreationInfo struct {
	ContractAddress string `json:"contract_address"`
	ContractCreator string `json:"contract_creator"`
	TxHash          string `json:"tx_hash"`
}

// ContractCreationResult is the payload for a deployment lookup.
type ContractCreationResult struct {
	Success            bool           `json:"success"`
	Error              string         `json:"error,omitempty"`
	RequestedAddresses []string       `json:"requested_addresses,omitempty"`
	CreationInfo       []CreationInfo `json:"creation_info,omitempty"`
	Network            string         `json:"network,omitempty"`
}

// ContractCreation returns deployer and creation tx for up to
// MaxCreationAddresses contracts. Arity violations fail before any
// request is issued.
func (c *Client) ContractCreation(ctx context.Context, chainID string, contractAddresses []string) *ContractCreationResult {
	if len(contractAddresses) == 0 {
		return &ContractCreationResult{Error: "Contract addresses list cannot be empty"}
	}
	if len(contractAddresses) > MaxCreationAddresses {
		return &ContractCreationResult{Error: "Maximum 5 contract addresses allowed"}
	}

	out := &ContractCreationResult{
		RequestedAddresses: contractAddresses,
		Network:            c.network(chainID),
	}

	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getcontractcreation")
	params.Set("contractaddresses", strings.Join(contractAddresses, ","))

	raw, err := c.request(ctx, chainID, params, true)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	type creationItem struct {
		ContractAddress string `json:"contractAddress"`
		ContractCreator string `json:"contractCreator"`
		TxHash          string `json:"txHash"`
	}

	var items []creationItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Single-result shape.
		var one creationItem
		if err := json.Unmarshal(raw, &one); err != nil {
			out.Error = "unexpected creation result shape: " + err.Error()
			return out
		}
		items = []creationItem{one}
	}

	for _, it := range items {
		out.CreationInfo = append(out.CreationInfo, CreationInfo{
			ContractAddress: it.ContractAddress,
			ContractCreator: it.ContractCreator,
			TxHash:          it.TxHash,
		})
	}

	out.Success = true
	return out
}

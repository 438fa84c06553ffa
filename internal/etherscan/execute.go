package etherscan

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/Mohsinsiddi/escan-mcp/internal/codec"
)

var decimalTag = regexp.MustCompile(`^[0-9]+$`)

// NormalizeBlockTag converts a caller-supplied block parameter into the
// JSON-RPC block-tag convention: absent means "latest", the named tags
// pass through, decimal numbers become minimal 0x hex, and hex strings
// pass through unchanged.
func NormalizeBlockTag(tag string) string {
	tag = strings.TrimSpace(tag)
	switch tag {
	case "":
		return "latest"
	case "latest", "earliest", "pending":
		return tag
	}
	if decimalTag.MatchString(tag) {
		if n, ok := parseQuantity(tag); ok {
			return "0x" + n.Text(16)
		}
	}
	return tag
}

// CallResult is the payload of a raw eth_call.
type CallResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Result  string `json:"result,omitempty"`
	Network string `json:"network"`
}

// EthCall executes a read-only contract call with pre-encoded call data.
func (c *Client) EthCall(ctx context.Context, chainID, toAddress, data, tag string) *CallResult {
	out := &CallResult{Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_call")
	params.Set("to", toAddress)
	params.Set("data", data)
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

	out.Success = true
	out.Result = s
	return out
}

// ExecuteResult is the payload of a full encode → eth_call → decode round.
type ExecuteResult struct {
	Success           bool                 `json:"success"`
	Error             string               `json:"error,omitempty"`
	Result            string               `json:"result,omitempty"`
	FunctionSignature string               `json:"function_signature"`
	EncodedCallData   string               `json:"encoded_call_data,omitempty"`
	InputParams       string               `json:"input_params"`
	DecodedResult     *codec.DecodedResult `json:"decoded_result,omitempty"`
	ContractAddress   string               `json:"contract_address"`
	Network           string               `json:"network"`
}

// ExecuteMethod encodes a method call from its ABI fragment and flat
// parameter string, dispatches it via eth_call, and decodes the returned
// data against the same fragment. Encoding failures stop before the
// network round trip; the signature is still reconstructed best-effort
// for diagnostics.
func (c *Client) ExecuteMethod(ctx context.Context, chainID, contractAddress, methodABI, methodParams, tag string) *ExecuteResult {
	out := &ExecuteResult{
		ContractAddress:   contractAddress,
		InputParams:       methodParams,
		FunctionSignature: signatureOrUnknown(methodABI),
		Network:           c.network(chainID),
	}

	callData, err := codec.EncodeCall(methodABI, methodParams)
	if err != nil {
		out.Error = "Error executing contract method: " + err.Error()
		return out
	}
	if !strings.HasPrefix(callData, "0x") {
		callData = "0x" + callData
	}
	out.EncodedCallData = callData

	c.log.Info("executing contract method",
		"chain", chainID,
		"contract", contractAddress,
		"signature", out.FunctionSignature,
	)

	call := c.EthCall(ctx, chainID, contractAddress, callData, tag)
	out.Success = call.Success
	out.Error = call.Error
	out.Result = call.Result

	if call.Success && call.Result != "" {
		out.DecodedResult = codec.DecodeResult(call.Result, methodABI)
	}
	return out
}

// signatureOrUnknown reconstructs the canonical signature for diagnostics,
// tolerating a fragment that no longer parses.
func signatureOrUnknown(methodABI string) string {
	fn, err := codec.ParseFunction(methodABI)
	if err != nil {
		return "unknown"
	}
	return fn.Signature()
}

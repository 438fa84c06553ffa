// Package codec encodes ABI function calls into eth_call payloads and
// decodes raw call results back into typed values. It handles the flat
// primitive types (uintN/intN/address/bool/string/bytesN/bytes); composite
// types (arrays, tuples) pass through best-effort and are not guaranteed.
package codec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Param is a single named, typed ABI input or output.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Function is a single-function ABI fragment as supplied by the caller,
// e.g. {"name":"balanceOf","inputs":[{"name":"owner","type":"address"}],...}.
type Function struct {
	Name            string  `json:"name"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
	StateMutability string  `json:"stateMutability"`
}

// EncodingError wraps any failure inside the codec so callers never see a
// raw JSON or ABI library error.
type EncodingError struct {
	msg   string
	cause error
}

func (e *EncodingError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *EncodingError) Unwrap() error { return e.cause }

func encodingErr(msg string, cause error) *EncodingError {
	return &EncodingError{msg: msg, cause: cause}
}

// ParseFunction parses a JSON single-function ABI fragment.
// A fragment without a name is rejected: the selector cannot be derived.
func ParseFunction(methodABI string) (*Function, error) {
	var fn Function
	if err := json.Unmarshal([]byte(methodABI), &fn); err != nil {
		return nil, encodingErr("parsing method ABI", err)
	}
	if fn.Name == "" {
		return nil, encodingErr("method ABI has no name", nil)
	}
	return &fn, nil
}

// Signature returns the canonical signature, e.g. "transfer(address,uint256)".
func (f *Function) Signature() string {
	types := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		types[i] = in.Type
	}
	return f.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the 4-byte function selector for a canonical signature:
// the first 4 bytes of the Keccak-256 hash of the signature string.
func Selector(signature string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return h.Sum(nil)[:4]
}

// SelectorHex returns the selector as 8 lowercase hex chars (no 0x prefix).
func SelectorHex(signature string) string {
	return hex.EncodeToString(Selector(signature))
}

// outputTypes returns the declared output type strings in order.
func (f *Function) outputTypes() []string {
	types := make([]string, len(f.Outputs))
	for i, out := range f.Outputs {
		types[i] = out.Type
	}
	return types
}

// outputNames returns declared output names in order, synthesizing
// "output_{i}" where the ABI omits a name.
func (f *Function) outputNames() []string {
	names := make([]string, len(f.Outputs))
	for i, out := range f.Outputs {
		if out.Name != "" {
			names[i] = out.Name
		} else {
			names[i] = fmt.Sprintf("output_%d", i)
		}
	}
	return names
}

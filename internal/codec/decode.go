package codec

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DecodedResult carries a decoded eth_call result plus enough metadata for
// the caller to diagnose a failed or partial decode. Decode failures are
// soft: DecodedData is nil and Error is set, but RawData and the declared
// output types/names are always present.
type DecodedResult struct {
	RawData     string      `json:"raw_data"`
	DecodedData interface{} `json:"decoded_data"`
	OutputTypes []string    `json:"output_types"`
	OutputNames []string    `json:"output_names"`
	ValuesCount int         `json:"values_count,omitempty"`
	Note        string      `json:"note,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// DecodeResult decodes a raw eth_call hex result against the outputs of a
// single-function ABI fragment. It never returns an error to the caller:
// every failure mode is reported inside the result.
//
// With exactly one declared output DecodedData is the formatted scalar;
// with several it is a map keyed by output name (or "output_{i}" for
// unnamed outputs), with OutputNames preserving declaration order.
func DecodeResult(resultHex, methodABI string) *DecodedResult {
	fn, err := ParseFunction(methodABI)
	if err != nil {
		return &DecodedResult{
			RawData: resultHex,
			Error:   fmt.Sprintf("Error decoding result: %v", err),
		}
	}

	res := &DecodedResult{
		RawData:     resultHex,
		OutputTypes: fn.outputTypes(),
		OutputNames: fn.outputNames(),
	}

	// Empty-result markers, checked before anything else.
	switch resultHex {
	case "0x":
		res.Error = "Empty result"
		return res
	case "", "0x0":
		res.Error = "No data to decode"
		return res
	}

	hexData := strings.TrimPrefix(resultHex, "0x")
	if hexData == "" {
		res.Error = "No data to decode"
		return res
	}

	// Nothing declared: hand back the raw hex untouched.
	if len(fn.Outputs) == 0 {
		res.DecodedData = resultHex
		res.Note = "No outputs defined in ABI"
		return res
	}

	data, err := hex.DecodeString(hexData)
	if err != nil {
		res.Error = fmt.Sprintf("Decode error: %v", err)
		return res
	}

	args := make(abi.Arguments, len(fn.Outputs))
	for i, out := range fn.Outputs {
		typ, err := abi.NewType(out.Type, "", nil)
		if err != nil {
			res.Error = fmt.Sprintf("Decode error: unsupported output type %q: %v", out.Type, err)
			return res
		}
		args[i] = abi.Argument{Name: out.Name, Type: typ}
	}

	values, err := args.Unpack(data)
	if err != nil {
		res.Error = fmt.Sprintf("Decode error: %v", err)
		return res
	}
	res.ValuesCount = len(values)

	if len(values) == 1 {
		res.DecodedData = formatValue(values[0], args[0].Type)
		return res
	}

	decoded := make(map[string]interface{}, len(values))
	for i, v := range values {
		if i >= len(res.OutputNames) {
			break
		}
		decoded[res.OutputNames[i]] = formatValue(v, args[i].Type)
	}
	res.DecodedData = decoded
	return res
}

// formatValue normalizes a decoded value by type family: addresses and
// bytes become 0x-prefixed lowercase hex, integers stay arbitrary
// precision, strings are sanitized UTF-8. Anything that does not match its
// expected shape is returned unchanged rather than aborting the decode.
func formatValue(v interface{}, typ abi.Type) interface{} {
	switch typ.T {
	case abi.AddressTy:
		if addr, ok := v.(common.Address); ok {
			return "0x" + hex.EncodeToString(addr[:])
		}
		return v
	case abi.UintTy, abi.IntTy:
		return v
	case abi.BoolTy:
		if b, ok := v.(bool); ok {
			return b
		}
		return v
	case abi.StringTy:
		if s, ok := v.(string); ok {
			return strings.ToValidUTF8(s, "")
		}
		return v
	case abi.BytesTy:
		if b, ok := v.([]byte); ok {
			return "0x" + hex.EncodeToString(b)
		}
		return v
	case abi.FixedBytesTy:
		if b := fixedBytes(v); b != nil {
			return "0x" + hex.EncodeToString(b)
		}
		return v
	default:
		return v
	}
}

// fixedBytes flattens a decoded [N]byte array into a slice, or nil when
// the value has an unexpected shape.
func fixedBytes(v interface{}) []byte {
	if b, ok := v.([]byte); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out
	}
	return nil
}

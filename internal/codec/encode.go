package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// EncodeCall builds hex call data (no 0x prefix) for a method: 4-byte
// selector followed by the ABI-encoded arguments.
//
// methodParams is a comma-separated list of values matched positionally to
// the declared inputs. Splitting is on bare commas; values containing
// literal commas (array literals, strings with commas) cannot be expressed.
// That is a known limitation of the flat parameter contract, kept on
// purpose rather than silently re-parsed.
func EncodeCall(methodABI, methodParams string) (string, error) {
	fn, err := ParseFunction(methodABI)
	if err != nil {
		return "", err
	}

	tokens := splitParams(methodParams)
	if len(tokens) < len(fn.Inputs) {
		return "", encodingErr(
			fmt.Sprintf("method %s expects %d parameters, got %d", fn.Name, len(fn.Inputs), len(tokens)), nil)
	}

	args := make(abi.Arguments, len(fn.Inputs))
	values := make([]interface{}, len(fn.Inputs))
	for i, in := range fn.Inputs {
		typ, err := abi.NewType(in.Type, "", nil)
		if err != nil {
			return "", encodingErr(fmt.Sprintf("unsupported input type %q", in.Type), err)
		}
		args[i] = abi.Argument{Name: in.Name, Type: typ}
		// Tokens beyond the declared input count are ignored.
		values[i] = coerce(tokens[i], typ)
	}

	packed, err := args.Pack(values...)
	if err != nil {
		return "", encodingErr("encoding parameters", err)
	}

	return SelectorHex(fn.Signature()) + hex.EncodeToString(packed), nil
}

// splitParams splits a comma-separated parameter string into trimmed
// tokens. An empty or blank string is zero parameters.
func splitParams(params string) []string {
	if strings.TrimSpace(params) == "" {
		return nil
	}
	parts := strings.Split(params, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// coerce converts a string token into the Go value the ABI encoder expects
// for the given type. The switch over abi.Type.T is the single place type
// families are dispatched; unknown families fall through as the raw token
// and surface as a pack error. Coercion itself never fails: a token that
// cannot be parsed, or whose value does not fit the declared width, is
// passed through as the raw string so the encoder reports the mismatch.
func coerce(token string, typ abi.Type) interface{} {
	switch typ.T {
	case abi.UintTy:
		n, ok := parseInteger(token)
		if !ok || n.Sign() < 0 || n.BitLen() > typ.Size {
			return token
		}
		switch typ.Size {
		case 8:
			return uint8(n.Uint64())
		case 16:
			return uint16(n.Uint64())
		case 32:
			return uint32(n.Uint64())
		case 64:
			return n.Uint64()
		default:
			return n
		}
	case abi.IntTy:
		n, ok := parseInteger(token)
		if !ok || !fitsSigned(n, typ.Size) {
			return token
		}
		switch typ.Size {
		case 8:
			return int8(n.Int64())
		case 16:
			return int16(n.Int64())
		case 32:
			return int32(n.Int64())
		case 64:
			return n.Int64()
		default:
			return n
		}
	case abi.AddressTy:
		return common.HexToAddress(token)
	case abi.BoolTy:
		switch strings.ToLower(token) {
		case "true", "1", "yes":
			return true
		default:
			return false
		}
	case abi.StringTy:
		return token
	case abi.BytesTy:
		return bytesValue(token)
	case abi.FixedBytesTy:
		// abi expects a fixed-size [N]byte array, not a slice.
		b := bytesValue(token)
		arr := reflect.New(typ.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface()
	default:
		return token
	}
}

// parseInteger accepts base-10 or 0x-prefixed hex. Base is dispatched on
// the prefix explicitly so leading zeros are not read as octal.
func parseInteger(token string) (*big.Int, bool) {
	if strings.HasPrefix(token, "0x") {
		return new(big.Int).SetString(token[2:], 16)
	}
	return new(big.Int).SetString(token, 10)
}

// fitsSigned reports whether n is representable in a two's-complement
// integer of the given bit width.
func fitsSigned(n *big.Int, bits int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if n.Sign() < 0 {
		return n.CmpAbs(limit) <= 0
	}
	return n.Cmp(limit) < 0
}

// bytesValue decodes a 0x-prefixed token as hex, anything else as raw UTF-8.
func bytesValue(token string) []byte {
	if strings.HasPrefix(token, "0x") {
		if b, err := hex.DecodeString(token[2:]); err == nil {
			return b
		}
	}
	return []byte(token)
}

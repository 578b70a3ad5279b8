package abi

import (
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// typeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// coerceBig converts any supported numeric representation to a signed big
// integer. *uint256.Int is treated as unsigned, matching the decoder's
// output conventions.
func coerceBig(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return v, true
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return v.ToBig(), true
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	default:
		return nil, false
	}
}

// coerceUint64 narrows a numeric value to uint64, rejecting negatives.
func coerceUint64(value any) (uint64, bool) {
	b, ok := coerceBig(value)
	if !ok || b.Sign() < 0 || !b.IsUint64() {
		return 0, false
	}
	return b.Uint64(), true
}

// coerceBytes accepts []byte or string.
func coerceBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}

// coerceAddress accepts Address, [20]byte, or a 20-byte slice.
func coerceAddress(value any) (Address, bool) {
	switch v := value.(type) {
	case Address:
		return v, true
	case [AddressLength]byte:
		return Address(v), true
	case []byte:
		if len(v) == AddressLength {
			var a Address
			copy(a[:], v)
			return a, true
		}
	}
	return Address{}, false
}

// coerceList accepts the []any container shape produced by the decoder.
func coerceList(value any) ([]any, bool) {
	v, ok := value.([]any)
	return v, ok
}

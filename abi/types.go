package abi

import (
	"encoding/hex"

	"github.com/wippyai/evm-abi/abi/internal/types"
)

type TypeKind = types.Kind

const (
	KindUint       = types.KindUint
	KindInt        = types.KindInt
	KindAddress    = types.KindAddress
	KindBool       = types.KindBool
	KindFixedBytes = types.KindFixedBytes
	KindEnum       = types.KindEnum
	KindBytes      = types.KindBytes
	KindString     = types.KindString
	KindArray      = types.KindArray
	KindSlice      = types.KindSlice
	KindTuple      = types.KindTuple
)

type Type = types.Type
type Field = types.Field

// AddressLength is the byte width of an account address.
const AddressLength = 20

// Address is a 160-bit account identifier, stored right-aligned in a
// 256-bit slot.
type Address [AddressLength]byte

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// String renders the address as 0x-prefixed hex.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Mode selects decode-side strictness. Encoding is always canonical.
type Mode uint8

const (
	// ModeStrict rejects out-of-range scalars, malformed padding, and any
	// out-of-bounds reference. New code should use this mode.
	ModeStrict Mode = iota
	// ModeLenient masks malformed scalars instead of rejecting them,
	// matching the legacy decoder generation. Bounds violations still fail.
	ModeLenient
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

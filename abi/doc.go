// Package abi provides contract ABI encoding and decoding.
//
// This package handles bidirectional conversion between Go values and the
// ABI's 32-byte-word binary representation used in contract call data and
// return data.
//
// # Wire Format Overview
//
// Every value occupies one or more 32-byte slots. A sequence of values is
// laid out as a head region followed by a tail region:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ head[0] head[1] ... head[n-1] │ tail bytes (dynamic data)│
//	└──────────────────────────────────────────────────────────┘
//
// Static types (integers, addresses, booleans, fixed byte strings and
// compounds built only from them) are encoded inline in the head. Dynamic
// types (bytes, string, dynamic arrays and compounds containing them) put a
// byte offset in the head; the offset is relative to the start of the
// enclosing region and points at the value's payload in the tail.
//
// # Head Sizes
//
//	Type            Head size
//	─────────────────────────────────
//	scalar          32
//	T[n] static     n * headSize(T)
//	tuple static    sum of fields
//	any dynamic     32 (offset slot)
//
// # Key Types
//
//	Type     - Structural type descriptor
//	Coder    - Schema bound to a parameter list, prevalidated
//	Encoder  - Writes Go values to ABI words
//	Decoder  - Reads ABI words into Go values
//	Mode     - Strict or lenient decode discipline
//
// # Decode Modes
//
// ModeStrict rejects encodings that a correct encoder would never produce:
// integer slots whose unused high bits are not a proper zero or sign
// extension, booleans other than 0 or 1, enum values at or above the member
// count, and byte strings whose padded extent exceeds the buffer.
//
// ModeLenient accepts such data the way legacy decoders did: integers are
// masked to their declared width, booleans collapse to zero/non-zero,
// enums keep their low byte. Out-of-bounds reads and offset or length
// arithmetic that overflows fail in both modes.
//
// # Value Mapping
//
//	uint8..uint64    uint8, uint16, uint32, uint64
//	int8..int64      int8, int16, int32, int64
//	other widths     *big.Int
//	address          Address ([20]byte)
//	bool             bool
//	bytesN, bytes    []byte
//	string           string
//	arrays, tuples   []any
//
// # Thread Safety
//
// Coder is safe for concurrent use: layout computation is memoized at
// construction time. Bare Encoder and Decoder instances maintain a layout
// cache and are NOT thread-safe; use separate instances per goroutine.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] out_of_bounds at arg0[3]: need 64 bytes, have 32
//	[encode] type_mismatch at arg1.f0: Go type string, ABI type uint256
package abi

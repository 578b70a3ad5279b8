package abi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/evm-abi/errors"
)

// Bounds and arithmetic failures are not mode-dependent: lenient mode
// tolerates dirty values, never unsafe reads.

func TestSafety_ShortValueSlot(t *testing.T) {
	data := make([]byte, 16)
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("uint256"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_EmptyBuffer(t *testing.T) {
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bool"), mode, nil)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_OffsetPastEnd(t *testing.T) {
	// A bytes head pointing a full buffer length past the end.
	data := slots(t, "40")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bytes"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_OffsetBeyondUint64(t *testing.T) {
	// An offset that cannot fit any address space must fail before any
	// arithmetic, not wrap.
	data := slots(t, strings.Repeat("f", 64))
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bytes"), mode, data)
		wantKind(t, err, errors.KindOverflow)
	}
}

func TestSafety_ByteLengthOverflow(t *testing.T) {
	// Length word of 2^64-1: padding and prefix arithmetic would wrap.
	data := slots(t, "20", "ffffffffffffffff")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bytes"), mode, data)
		if err == nil {
			t.Fatalf("%s: expected failure for huge byte length", mode)
		}
		e := err.(*errors.Error)
		if e.Kind != errors.KindOverflow && e.Kind != errors.KindOutOfBounds {
			t.Errorf("%s: expected overflow or out_of_bounds, got %s", mode, e.Kind)
		}
	}
}

func TestSafety_ElementCountOverflow(t *testing.T) {
	// Count * stride would overflow 64-bit arithmetic.
	data := slots(t, "20", "4000000000000000")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("uint256[]"), mode, data)
		wantKind(t, err, errors.KindOverflow)
	}
}

func TestSafety_ElementCountPastEnd(t *testing.T) {
	// Claimed count larger than the remaining buffer could ever hold.
	data := slots(t, "20", "3", "1")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("uint256[]"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_TruncatedTail(t *testing.T) {
	// Offset is in bounds but the tail has no room for its length word.
	data := slots(t, "20")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bytes"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_UnpaddedBytesTail(t *testing.T) {
	// 5 payload bytes present without zero padding to a full slot. Strict
	// requires the padded extent; lenient reads exactly the raw bytes.
	data := append(slots(t, "20", "5"), []byte("hello")...)

	_, err := decodeOne(t, MustType("bytes"), ModeStrict, data)
	wantKind(t, err, errors.KindOutOfBounds)

	got, err := decodeOne(t, MustType("bytes"), ModeLenient, data)
	if err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}
	if !bytes.Equal(got.([]byte), []byte("hello")) {
		t.Errorf("expected 'hello', got %q", got)
	}
}

func TestSafety_ZeroStrideSchemaRejected(t *testing.T) {
	// A zero-length inner array would give the outer slice a zero element
	// stride, letting any declared count through the size check. Such
	// descriptors never reach the decode loop.
	zero := &Type{
		Kind: KindSlice,
		Elem: &Type{Kind: KindArray, Size: 0, Elem: MustType("uint8")},
	}

	// count 2^60 with no element data behind it
	data := slots(t, "20", "1000000000000000")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, zero, mode, data)
		wantKind(t, err, errors.KindInvalidType)
	}

	if _, err := NewCoder(zero); err == nil {
		t.Error("NewCoder accepted a zero-length array element")
	}
}

func TestSafety_HugeDeclaredCount(t *testing.T) {
	// A count in the 2^40 range passes multiplication but can never fit
	// the buffer; the failure must come before any per-element allocation.
	data := slots(t, "20", "10000000000")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("uint8[]"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_HugeStaticArray(t *testing.T) {
	// Schema-declared lengths are as untrusted as wire counts when the
	// schema comes from user input. 2^60 elements overflow the region
	// arithmetic outright.
	huge := MustType("uint8[1152921504606846976]")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, huge, mode, slots(t, "0"))
		wantKind(t, err, errors.KindOverflow)
	}

	// A length that multiplies cleanly but exceeds the buffer fails as
	// out of bounds, still without allocating.
	large := MustType("uint8[1000000]")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, large, mode, slots(t, "0"))
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_HugeDynamicArray(t *testing.T) {
	// Fixed-length array of dynamic elements: the inner head area is
	// checked against the tail before elements are walked.
	data := slots(t, "20")
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("bytes[1000000]"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_NestedOffsetEscape(t *testing.T) {
	// An inner array whose offset points outside the outer element region.
	data := slots(t,
		"20",  // outer offset
		"1",   // outer count
		"200", // inner offset, far past the end
	)
	for _, mode := range []Mode{ModeStrict, ModeLenient} {
		_, err := decodeOne(t, MustType("uint8[][]"), mode, data)
		wantKind(t, err, errors.KindOutOfBounds)
	}
}

func TestSafety_DecodeAtBeyondBuffer(t *testing.T) {
	_, err := NewDecoder(ModeStrict).Decode(MustType("uint8"), slots(t, "1"), 32)
	wantKind(t, err, errors.KindOutOfBounds)
}

package abi

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/wippyai/evm-abi/errors"
)

func encodeOne(t *testing.T, typ *Type, value any) ([]byte, error) {
	t.Helper()
	return NewEncoder().EncodeValue(typ, value)
}

func TestEncoder_New(t *testing.T) {
	if NewEncoder() == nil {
		t.Fatal("NewEncoder returned nil")
	}
}

func TestEncoder_ScalarSlots(t *testing.T) {
	tests := []struct {
		name  string
		typ   *Type
		value any
		want  string // hex word
	}{
		{"uint8", MustType("uint8"), uint8(255), "ff"},
		{"uint256 int input", MustType("uint256"), 42, "2a"},
		{"uint256 big input", MustType("uint256"), big.NewInt(42), "2a"},
		{"int8 -1", MustType("int8"), int8(-1), strings.Repeat("f", 64)},
		{"int16 min", MustType("int16"), int16(-32768), strings.Repeat("f", 60) + "8000"},
		{"int256 positive", MustType("int256"), big.NewInt(7), "7"},
		{"bool true", MustType("bool"), true, "1"},
		{"bool false", MustType("bool"), false, "0"},
		{"bytes3", MustType("bytes3"), []byte("abc"), "616263" + strings.Repeat("0", 58)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeOne(t, tt.typ, tt.value)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			want := slots(t, tt.want)
			if !bytes.Equal(got, want) {
				t.Errorf("expected %x, got %x", want, got)
			}
		})
	}
}

func TestEncoder_Address(t *testing.T) {
	var a Address
	for i := range a {
		a[i] = byte(i + 1)
	}
	got, err := encodeOne(t, MustType("address"), a)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t, "0102030405060708090a0b0c0d0e0f1011121314")
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_Bytes(t *testing.T) {
	got, err := encodeOne(t, MustType("bytes"), []byte("hello"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t,
		"20",
		"5",
		"68656c6c6f"+strings.Repeat("0", 54),
	)
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_String(t *testing.T) {
	got, err := encodeOne(t, MustType("string"), "abcdefgh")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t,
		"20",
		"8",
		"6162636465666768"+strings.Repeat("0", 48),
	)
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_MixedStaticDynamic(t *testing.T) {
	// Static head slot, then the offset slot, then the tail.
	enc := NewEncoder()
	got, err := enc.Encode(
		[]*Type{MustType("uint16"), MustType("bytes")},
		[]any{uint16(42), []byte("hi")},
	)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t,
		"2a",
		"40", // tail starts after the two head slots
		"2",
		"6869"+strings.Repeat("0", 60),
	)
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_StaticArray(t *testing.T) {
	got, err := encodeOne(t, MustType("uint8[3]"), []any{uint8(1), uint8(2), uint8(3)})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t, "1", "2", "3")
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_DynamicSlice(t *testing.T) {
	got, err := encodeOne(t, MustType("uint16[]"), []any{uint16(10), uint16(11)})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := slots(t, "20", "2", "a", "b")
	if !bytes.Equal(got, want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestEncoder_UnsignedOverflow(t *testing.T) {
	_, err := encodeOne(t, MustType("uint8"), 256)
	wantKind(t, err, errors.KindOverflow)

	_, err = encodeOne(t, MustType("uint8"), -1)
	wantKind(t, err, errors.KindOverflow)
}

func TestEncoder_SignedRange(t *testing.T) {
	if _, err := encodeOne(t, MustType("int8"), -128); err != nil {
		t.Fatalf("int8 -128 should encode: %v", err)
	}
	if _, err := encodeOne(t, MustType("int8"), 127); err != nil {
		t.Fatalf("int8 127 should encode: %v", err)
	}

	_, err := encodeOne(t, MustType("int8"), 128)
	wantKind(t, err, errors.KindOverflow)

	_, err = encodeOne(t, MustType("int8"), -129)
	wantKind(t, err, errors.KindOverflow)
}

func TestEncoder_EnumRange(t *testing.T) {
	typ := &Type{Kind: KindEnum, Size: 3}

	got, err := encodeOne(t, typ, uint8(2))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(got, slots(t, "2")) {
		t.Errorf("expected slot value 2, got %x", got)
	}

	_, err = encodeOne(t, typ, uint8(3))
	wantKind(t, err, errors.KindInvalidEnum)
}

func TestEncoder_TypeMismatch(t *testing.T) {
	_, err := encodeOne(t, MustType("uint256"), "not a number")
	wantKind(t, err, errors.KindTypeMismatch)

	_, err = encodeOne(t, MustType("bool"), 1)
	wantKind(t, err, errors.KindTypeMismatch)
}

func TestEncoder_FixedBytesTooLong(t *testing.T) {
	_, err := encodeOne(t, MustType("bytes3"), []byte("abcd"))
	wantKind(t, err, errors.KindTypeMismatch)
}

func TestEncoder_CountMismatch(t *testing.T) {
	enc := NewEncoder()
	_, err := enc.Encode([]*Type{MustType("uint8")}, []any{uint8(1), uint8(2)})
	wantKind(t, err, errors.KindCountMismatch)

	_, err = encodeOne(t, MustType("uint8[3]"), []any{uint8(1)})
	wantKind(t, err, errors.KindCountMismatch)
}

func TestEncoder_HugeSchemaFailsCleanly(t *testing.T) {
	// A schema whose head size saturates must surface a structured error
	// instead of sizing a buffer from it.
	huge := MustType("(uint8[1152921504606846976],bool)")
	_, err := NewEncoder().EncodeValue(huge, []any{[]any{}, true})
	wantKind(t, err, errors.KindCountMismatch)
}

func TestEncoder_ErrorPath(t *testing.T) {
	enc := NewEncoder()
	_, err := enc.Encode(
		[]*Type{MustType("uint8"), MustType("uint8[2]")},
		[]any{uint8(1), []any{uint8(2), 300}},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "arg1") || !strings.Contains(err.Error(), "[1]") {
		t.Errorf("expected path arg1.[1] in error, got: %v", err)
	}
}

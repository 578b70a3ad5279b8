package types

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUint, "uint"},
		{KindInt, "int"},
		{KindAddress, "address"},
		{KindBool, "bool"},
		{KindBytes, "bytes"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindSlice, "slice"},
		{KindTuple, "tuple"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_IsScalar(t *testing.T) {
	scalars := []Kind{KindUint, KindInt, KindAddress, KindBool, KindFixedBytes, KindEnum}
	for _, k := range scalars {
		if !k.IsScalar() {
			t.Errorf("%v should be scalar", k)
		}
	}
	nonScalars := []Kind{KindBytes, KindString, KindArray, KindSlice, KindTuple}
	for _, k := range nonScalars {
		if k.IsScalar() {
			t.Errorf("%v should not be scalar", k)
		}
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"uint256", &Type{Kind: KindUint, Bits: 256}, "uint256"},
		{"int16", &Type{Kind: KindInt, Bits: 16}, "int16"},
		{"address", &Type{Kind: KindAddress}, "address"},
		{"bytes3", &Type{Kind: KindFixedBytes, Size: 3}, "bytes3"},
		{"enum as uint8", &Type{Kind: KindEnum, Size: 4}, "uint8"},
		{"bytes", &Type{Kind: KindBytes}, "bytes"},
		{
			"nested array",
			&Type{Kind: KindSlice, Elem: &Type{Kind: KindArray, Size: 2, Elem: &Type{Kind: KindUint, Bits: 16}}},
			"uint16[2][]",
		},
		{
			"tuple",
			&Type{Kind: KindTuple, Fields: []Field{
				{Type: &Type{Kind: KindUint, Bits: 256}},
				{Type: &Type{Kind: KindBytes}},
			}},
			"(uint256,bytes)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestType_Validate(t *testing.T) {
	valid := []*Type{
		{Kind: KindUint, Bits: 8},
		{Kind: KindUint, Bits: 256},
		{Kind: KindInt, Bits: 24},
		{Kind: KindFixedBytes, Size: 32},
		{Kind: KindEnum, Size: 1},
		{Kind: KindArray, Size: 1, Elem: &Type{Kind: KindBool}},
		{Kind: KindTuple, Fields: []Field{{Type: &Type{Kind: KindBool}}}},
	}
	for _, typ := range valid {
		if err := typ.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", typ, err)
		}
	}

	invalid := []*Type{
		nil,
		{Kind: KindUint, Bits: 0},
		{Kind: KindUint, Bits: 12},
		{Kind: KindInt, Bits: 264},
		{Kind: KindFixedBytes, Size: 0},
		{Kind: KindFixedBytes, Size: 33},
		{Kind: KindEnum, Size: 0},
		{Kind: KindArray, Size: 3},
		{Kind: KindArray, Size: 0, Elem: &Type{Kind: KindBool}},
		{Kind: KindSlice},
		{Kind: KindSlice, Elem: &Type{Kind: KindUint, Bits: 7}},
		{Kind: KindTuple},
		{Kind: KindTuple, Fields: []Field{{Name: "x"}}},
	}
	for _, typ := range invalid {
		if err := typ.Validate(); err == nil {
			t.Errorf("Validate(%v) = nil, want error", typ)
		}
	}
}

package abi

import (
	"testing"
)

func TestParseType_Canonical(t *testing.T) {
	// Parsing then rendering must reproduce the canonical spelling.
	tests := []struct {
		in   string
		want string
	}{
		{"uint256", "uint256"},
		{"uint", "uint256"},
		{"int", "int256"},
		{"int8", "int8"},
		{"address", "address"},
		{"bool", "bool"},
		{"bytes", "bytes"},
		{"bytes32", "bytes32"},
		{"string", "string"},
		{"uint16[2]", "uint16[2]"},
		{"uint16[2][]", "uint16[2][]"},
		{"uint16[][3]", "uint16[][3]"},
		{"(uint256,bytes)", "(uint256,bytes)"},
		{"(uint8,(bool,string))", "(uint8,(bool,string))"},
		{"(uint256,bytes)[3]", "(uint256,bytes)[3]"},
		{" uint8 ", "uint8"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := ParseType(tt.in)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseType_Structure(t *testing.T) {
	typ := MustType("uint16[2][]")
	if typ.Kind != KindSlice {
		t.Fatalf("expected outer slice, got %s", typ.Kind)
	}
	if typ.Elem.Kind != KindArray || typ.Elem.Size != 2 {
		t.Fatalf("expected inner uint16[2], got %s", typ.Elem)
	}
	if typ.Elem.Elem.Kind != KindUint || typ.Elem.Elem.Bits != 16 {
		t.Fatalf("expected element uint16, got %s", typ.Elem.Elem)
	}
}

func TestParseType_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"foo",
		"uint7",
		"uint264",
		"bytes0",
		"bytes33",
		"()",
		"uint8[0]",
		"uint8[0][]",
		"uint256[",
		"uint256[2",
		"uint256[x]",
		"uint256]",
		"(uint256",
		"uint256)",
		"uint256 bytes",
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseType(in); err == nil {
				t.Errorf("expected parse failure for %q", in)
			}
		})
	}
}

func TestParseSignature(t *testing.T) {
	name, coder, err := ParseSignature("transfer(address,uint256)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "transfer" {
		t.Errorf("expected name transfer, got %q", name)
	}
	if got := coder.String(); got != "(address,uint256)" {
		t.Errorf("expected (address,uint256), got %q", got)
	}
}

func TestParseSignature_NoParams(t *testing.T) {
	name, coder, err := ParseSignature("totalSupply()")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "totalSupply" {
		t.Errorf("expected name totalSupply, got %q", name)
	}
	if len(coder.Types()) != 0 {
		t.Errorf("expected no parameters, got %d", len(coder.Types()))
	}
}

func TestParseSignature_NestedTuple(t *testing.T) {
	_, coder, err := ParseSignature("submit((uint256,bytes)[],address)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := coder.String(); got != "((uint256,bytes)[],address)" {
		t.Errorf("unexpected schema %q", got)
	}
}

func TestParseSignature_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"noparens",
		"(uint256)",
		"f(uint256",
		"f(uint7)",
	} {
		t.Run(in, func(t *testing.T) {
			if _, _, err := ParseSignature(in); err == nil {
				t.Errorf("expected parse failure for %q", in)
			}
		})
	}
}

func TestMustType_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustType("uint7")
}

package types

import (
	"strconv"
	"strings"
)

// Type describes one ABI type. It is a plain data tree: construction happens
// in the public abi package (or its parser) and the coder never mutates it.
type Type struct {
	Elem   *Type   // Array/Slice element
	Fields []Field // Tuple fields, in declaration order
	Kind   Kind
	Bits   int // Uint/Int width in bits, multiple of 8 in [8,256]
	Size   int // FixedBytes width [1,32], Array length, Enum member count
}

// Field is one named tuple member. The name is informational (used in error
// paths and pretty-printing); layout depends only on order.
type Field struct {
	Type *Type
	Name string
}

// Validate checks the descriptor tree for structural sanity. A schema is
// expected to arrive fully resolved from the type system; this guards
// against hand-built descriptors with impossible parameters.
func (t *Type) Validate() error {
	if t == nil {
		return errNil
	}
	switch t.Kind {
	case KindUint, KindInt:
		if t.Bits < 8 || t.Bits > 256 || t.Bits%8 != 0 {
			return &InvalidError{Type: t, Reason: "integer width must be a multiple of 8 in [8,256]"}
		}
	case KindFixedBytes:
		if t.Size < 1 || t.Size > 32 {
			return &InvalidError{Type: t, Reason: "fixed bytes width must be in [1,32]"}
		}
	case KindEnum:
		if t.Size < 1 || t.Size > 256 {
			return &InvalidError{Type: t, Reason: "enum member count must be in [1,256]"}
		}
	case KindArray:
		// A zero-length array would give every enclosing region a zero
		// stride, letting a declared element count bypass size checks.
		if t.Size < 1 {
			return &InvalidError{Type: t, Reason: "array length must be positive"}
		}
		if t.Elem == nil {
			return &InvalidError{Type: t, Reason: "array element type missing"}
		}
		return t.Elem.Validate()
	case KindSlice:
		if t.Elem == nil {
			return &InvalidError{Type: t, Reason: "slice element type missing"}
		}
		return t.Elem.Validate()
	case KindTuple:
		if len(t.Fields) == 0 {
			return &InvalidError{Type: t, Reason: "tuple must have at least one field"}
		}
		for i := range t.Fields {
			if t.Fields[i].Type == nil {
				return &InvalidError{Type: t, Reason: "tuple field type missing"}
			}
			if err := t.Fields[i].Type.Validate(); err != nil {
				return err
			}
		}
	case KindAddress, KindBool, KindBytes, KindString:
		// no parameters
	default:
		return &InvalidError{Type: t, Reason: "unknown kind"}
	}
	return nil
}

// String renders the canonical type name, e.g. "uint16[2][]" or
// "(uint256,bytes)". Enums render as their storage projection "uint8".
func (t *Type) String() string {
	var b strings.Builder
	t.writeString(&b)
	return b.String()
}

func (t *Type) writeString(b *strings.Builder) {
	switch t.Kind {
	case KindUint:
		b.WriteString("uint")
		b.WriteString(strconv.Itoa(t.Bits))
	case KindInt:
		b.WriteString("int")
		b.WriteString(strconv.Itoa(t.Bits))
	case KindAddress:
		b.WriteString("address")
	case KindBool:
		b.WriteString("bool")
	case KindFixedBytes:
		b.WriteString("bytes")
		b.WriteString(strconv.Itoa(t.Size))
	case KindEnum:
		b.WriteString("uint8")
	case KindBytes:
		b.WriteString("bytes")
	case KindString:
		b.WriteString("string")
	case KindArray:
		t.Elem.writeString(b)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Size))
		b.WriteByte(']')
	case KindSlice:
		t.Elem.writeString(b)
		b.WriteString("[]")
	case KindTuple:
		b.WriteByte('(')
		for i := range t.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			t.Fields[i].Type.writeString(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString("unknown")
	}
}

// InvalidError reports a structurally broken descriptor.
type InvalidError struct {
	Type   *Type
	Reason string
}

func (e *InvalidError) Error() string {
	return "invalid type descriptor: " + e.Reason
}

var errNil = &InvalidError{Reason: "nil type descriptor"}

package abi

import (
	"strings"

	"github.com/wippyai/evm-abi/abi/internal/layout"
	"github.com/wippyai/evm-abi/abi/internal/types"
	"github.com/wippyai/evm-abi/errors"
)

// Coder sequences decode and encode over an ordered parameter schema. The
// layout of every descriptor is computed once at construction, after which a
// Coder is safe for concurrent use: each call operates only on its own
// buffer and value list.
type Coder struct {
	types []*Type
	calc  *layout.Calculator
}

// NewCoder builds a Coder for the given parameter types, validating each
// descriptor tree.
func NewCoder(ts ...*Type) (*Coder, error) {
	calc := layout.NewCalculator()
	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidType).
				Cause(err).
				Build()
		}
		prime(calc, t)
	}
	return &Coder{types: ts, calc: calc}, nil
}

// prime walks the descriptor tree so every layout query made during
// decode/encode is a cache hit, keeping the shared calculator read-only
// afterwards.
func prime(calc *layout.Calculator, t *types.Type) {
	calc.IsDynamic(t)
	calc.HeadSize(t)
	switch t.Kind {
	case types.KindArray, types.KindSlice:
		prime(calc, t.Elem)
	case types.KindTuple:
		for i := range t.Fields {
			prime(calc, t.Fields[i].Type)
		}
	}
}

// Types returns the schema in declaration order.
func (c *Coder) Types() []*Type {
	return c.types
}

// String renders the schema as a parenthesized type list.
func (c *Coder) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range c.types {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// DecodeAll decodes one value per schema type from data. The buffer is the
// top-level region: parameter offsets resolve against its start. An empty
// buffer against an empty schema decodes to an empty list; an empty buffer
// against a non-empty schema is an out-of-bounds failure, so callers can
// tell "no return data" from "malformed return data".
func (c *Coder) DecodeAll(data []byte, mode Mode) ([]any, error) {
	debugf("decode %s: %d bytes, mode=%s", c, len(data), mode)

	dec := newDecoderWithCalc(mode, c.calc)
	values := make([]any, len(c.types))
	cursor := uint64(0)
	for i, t := range c.types {
		v, err := dec.decodeHead(t, data, cursor, []string{argSeg(i)})
		if err != nil {
			return nil, err
		}
		values[i] = v
		cursor += c.calc.HeadSize(t)
	}
	return values, nil
}

// EncodeAll encodes one value per schema type into a single buffer.
func (c *Coder) EncodeAll(values ...any) ([]byte, error) {
	debugf("encode %s: %d values", c, len(values))

	enc := newEncoderWithCalc(c.calc)
	return enc.Encode(c.types, values)
}

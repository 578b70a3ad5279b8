package abi

import (
	"math/big"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/wippyai/evm-abi/abi/internal/layout"
	"github.com/wippyai/evm-abi/abi/internal/types"
	"github.com/wippyai/evm-abi/abi/internal/word"
	"github.com/wippyai/evm-abi/errors"
)

// Encoder writes value trees into ABI-encoded buffers. Encoding is always
// canonical: numeric slots are zero/sign-extended to full width and byte
// data is zero-padded; there is no lenient encode mode. An Encoder is NOT
// safe for concurrent use.
type Encoder struct {
	calc *layout.Calculator
}

func NewEncoder() *Encoder {
	return &Encoder{
		calc: layout.NewCalculator(),
	}
}

func newEncoderWithCalc(calc *layout.Calculator) *Encoder {
	return &Encoder{calc: calc}
}

// Encode serializes one value per type into a single buffer with top-level
// head/tail ordering.
func (e *Encoder) Encode(ts []*Type, values []any) ([]byte, error) {
	if len(ts) != len(values) {
		return nil, errors.CountMismatch(errors.PhaseEncode, len(ts), len(values))
	}
	items := make([]seqItem, len(ts))
	for i, t := range ts {
		if err := t.Validate(); err != nil {
			return nil, errors.New(errors.PhaseEncode, errors.KindInvalidType).
				Cause(err).
				Build()
		}
		items[i] = seqItem{t: t, v: values[i], path: []string{argSeg(i)}}
	}
	return e.encodeSequence(items)
}

// EncodeValue serializes a single value as if it were the only parameter.
func (e *Encoder) EncodeValue(t *Type, value any) ([]byte, error) {
	return e.Encode([]*Type{t}, []any{value})
}

type seqItem struct {
	t    *types.Type
	v    any
	path []string
}

// encodeSequence lays out one head slot group per item and appends dynamic
// tails after the head region, back-patching each dynamic item's head slot
// with the tail's offset relative to the sequence start.
func (e *Encoder) encodeSequence(items []seqItem) ([]byte, error) {
	// Head size is schema-derived and feeds the offset slots, so it gets
	// the same overflow discipline as decode-side arithmetic. The buffer
	// itself grows by appends; a hostile schema must not size an
	// allocation.
	var headSize uint64
	for i := range items {
		var ok bool
		headSize, ok = word.SafeAdd(headSize, e.calc.HeadSize(items[i].t))
		if !ok {
			return nil, errors.Overflow(errors.PhaseEncode, items[i].path, "head size overflows")
		}
	}

	var head, tail []byte

	for i := range items {
		it := &items[i]
		if e.calc.IsDynamic(it.t) {
			offset := uint256.NewInt(headSize + uint64(len(tail)))
			slot := make([]byte, word.Size)
			word.Put(slot, offset)
			head = append(head, slot...)

			tb, err := e.encodeTail(it.t, it.v, it.path)
			if err != nil {
				return nil, err
			}
			tail = append(tail, tb...)
			continue
		}

		hb, err := e.encodeStatic(it.t, it.v, it.path)
		if err != nil {
			return nil, err
		}
		head = append(head, hb...)
	}

	return append(head, tail...), nil
}

// encodeTail serializes a dynamic value as a self-contained tail region.
func (e *Encoder) encodeTail(t *types.Type, value any, path []string) ([]byte, error) {
	switch t.Kind {
	case types.KindBytes, types.KindString:
		raw, ok := coerceBytes(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		padded, _ := word.Padded(uint64(len(raw)))
		out := make([]byte, word.Size+padded)
		word.Put(out, uint256.NewInt(uint64(len(raw))))
		copy(out[word.Size:], raw)
		return out, nil

	case types.KindSlice:
		vals, ok := coerceList(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		items := make([]seqItem, len(vals))
		for i, v := range vals {
			items[i] = seqItem{t: t.Elem, v: v, path: childPath(path, indexSeg(uint64(i)))}
		}
		body, err := e.encodeSequence(items)
		if err != nil {
			return nil, err
		}
		out := make([]byte, word.Size, word.Size+uint64(len(body)))
		word.Put(out, uint256.NewInt(uint64(len(vals))))
		return append(out, body...), nil

	case types.KindArray:
		vals, ok := coerceList(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if len(vals) != t.Size {
			return nil, errors.New(errors.PhaseEncode, errors.KindCountMismatch).
				Path(path...).
				Detail("array of %d elements, got %d values", t.Size, len(vals)).
				Build()
		}
		items := make([]seqItem, len(vals))
		for i, v := range vals {
			items[i] = seqItem{t: t.Elem, v: v, path: childPath(path, indexSeg(uint64(i)))}
		}
		return e.encodeSequence(items)

	case types.KindTuple:
		vals, ok := coerceList(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if len(vals) != len(t.Fields) {
			return nil, errors.New(errors.PhaseEncode, errors.KindCountMismatch).
				Path(path...).
				Detail("tuple of %d fields, got %d values", len(t.Fields), len(vals)).
				Build()
		}
		items := make([]seqItem, len(vals))
		for i, v := range vals {
			f := &t.Fields[i]
			items[i] = seqItem{t: f.Type, v: v, path: childPath(path, fieldSeg(f, i))}
		}
		return e.encodeSequence(items)

	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidType).
			Path(path...).
			Detail("kind %s is not dynamically encoded", t.Kind).
			Build()
	}
}

// encodeStatic serializes a static value inline: one slot per scalar,
// concatenated element/field slots for static composites.
func (e *Encoder) encodeStatic(t *types.Type, value any, path []string) ([]byte, error) {
	switch t.Kind {
	case types.KindArray:
		vals, ok := coerceList(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if len(vals) != t.Size {
			return nil, errors.New(errors.PhaseEncode, errors.KindCountMismatch).
				Path(path...).
				Detail("array of %d elements, got %d values", t.Size, len(vals)).
				Build()
		}
		var out []byte
		for i, v := range vals {
			b, err := e.encodeStatic(t.Elem, v, childPath(path, indexSeg(uint64(i))))
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		return out, nil

	case types.KindTuple:
		vals, ok := coerceList(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if len(vals) != len(t.Fields) {
			return nil, errors.New(errors.PhaseEncode, errors.KindCountMismatch).
				Path(path...).
				Detail("tuple of %d fields, got %d values", len(t.Fields), len(vals)).
				Build()
		}
		var out []byte
		for i, v := range vals {
			f := &t.Fields[i]
			b, err := e.encodeStatic(f.Type, v, childPath(path, fieldSeg(f, i)))
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		return out, nil
	}

	slot := make([]byte, word.Size)
	if err := e.encodeScalar(slot, t, value, path); err != nil {
		return nil, err
	}
	return slot, nil
}

// encodeScalar writes one canonical value slot.
func (e *Encoder) encodeScalar(slot []byte, t *types.Type, value any, path []string) error {
	switch t.Kind {
	case types.KindUint:
		b, ok := coerceBig(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if b.Sign() < 0 || b.BitLen() > t.Bits {
			return errors.New(errors.PhaseEncode, errors.KindOverflow).
				Path(path...).
				ABIType(t.String()).
				Value(value).
				Detail("value %v out of range", b).
				Build()
		}
		v := new(uint256.Int)
		v.SetFromBig(b)
		word.Put(slot, v)
		return nil

	case types.KindInt:
		b, ok := coerceBig(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if !fitsSignedBig(b, t.Bits) {
			return errors.New(errors.PhaseEncode, errors.KindOverflow).
				Path(path...).
				ABIType(t.String()).
				Value(value).
				Detail("value %v out of range", b).
				Build()
		}
		// SetFromBig produces the full-width two's complement of negative
		// inputs, which is exactly the canonical sign extension.
		v := new(uint256.Int)
		v.SetFromBig(b)
		word.Put(slot, v)
		return nil

	case types.KindBool:
		v, ok := value.(bool)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		if v {
			slot[word.Size-1] = 1
		}
		return nil

	case types.KindEnum:
		v, ok := coerceUint64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), "enum")
		}
		if v >= uint64(t.Size) {
			return errors.InvalidEnum(errors.PhaseEncode, path, v, t.Size)
		}
		slot[word.Size-1] = byte(v)
		return nil

	case types.KindAddress:
		a, ok := coerceAddress(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		copy(slot[word.Size-AddressLength:], a[:])
		return nil

	case types.KindFixedBytes:
		raw, ok := coerceBytes(value)
		if !ok || len(raw) > t.Size {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), t.String())
		}
		copy(slot, raw)
		return nil

	default:
		return errors.New(errors.PhaseEncode, errors.KindInvalidType).
			Path(path...).
			Detail("kind %s is not a scalar", t.Kind).
			Build()
	}
}

// fitsSignedBig reports whether x is inside [-2^(bits-1), 2^(bits-1)).
func fitsSignedBig(x *big.Int, bits int) bool {
	if x.Sign() >= 0 {
		return x.BitLen() < bits
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	return x.Cmp(new(big.Int).Neg(limit)) >= 0
}

func argSeg(i int) string {
	return "arg" + strconv.Itoa(i)
}

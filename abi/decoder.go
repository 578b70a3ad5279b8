package abi

import (
	"strconv"

	"github.com/holiman/uint256"

	"github.com/wippyai/evm-abi/abi/internal/layout"
	"github.com/wippyai/evm-abi/abi/internal/types"
	"github.com/wippyai/evm-abi/abi/internal/word"
	"github.com/wippyai/evm-abi/errors"
)

// Decoder reads ABI-encoded buffers into value trees. A Decoder maintains a
// layout cache and is NOT safe for concurrent use; use one per goroutine or
// go through Coder, which pre-computes layout at construction.
type Decoder struct {
	calc *layout.Calculator
	mode Mode
}

func NewDecoder(mode Mode) *Decoder {
	return &Decoder{
		calc: layout.NewCalculator(),
		mode: mode,
	}
}

func newDecoderWithCalc(mode Mode, calc *layout.Calculator) *Decoder {
	return &Decoder{calc: calc, mode: mode}
}

// Mode returns the decoder's strictness mode.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Decode reads one value of type t whose head slot sits at byte offset at
// within data. data is the enclosing region: relative offsets inside t
// resolve against its start. Top-level calldata is decoded with at advancing
// by the head size of each preceding parameter.
func (d *Decoder) Decode(t *Type, data []byte, at uint64) (any, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidType).
			Cause(err).
			Build()
	}
	return d.decodeHead(t, data, at, nil)
}

// decodeHead decodes the head slot at `at`: inline data for static types, a
// relative offset to follow for dynamic ones.
func (d *Decoder) decodeHead(t *types.Type, region []byte, at uint64, path []string) (any, error) {
	if !d.calc.IsDynamic(t) {
		return d.decodeStatic(t, region, at, path)
	}

	slot, err := d.slot(region, at, path)
	if err != nil {
		return nil, err
	}

	off, ok := word.AsOffset(word.U256(slot))
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, path, "offset does not fit in 64 bits")
	}

	// The tail must hold at least its fixed prologue (length word or inner
	// head area) before anything in it is read.
	need, ok := word.SafeAdd(off, d.calc.MinTailSize(t))
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, path, "tail offset overflows")
	}
	if need > uint64(len(region)) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, need, uint64(len(region)))
	}

	return d.decodeTail(t, region[off:], path)
}

// decodeTail decodes a dynamic type against its own tail region. Offsets
// inside resolve relative to the region start (for dynamic arrays, relative
// to the position just after the length word).
func (d *Decoder) decodeTail(t *types.Type, tail []byte, path []string) (any, error) {
	switch t.Kind {
	case types.KindBytes:
		return d.decodeByteString(t, tail, path)

	case types.KindString:
		raw, err := d.decodeByteString(t, tail, path)
		if err != nil {
			return nil, err
		}
		return string(raw.([]byte)), nil

	case types.KindSlice:
		length, ok := word.AsOffset(word.U256(tail[:word.Size]))
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "element count does not fit in 64 bits")
		}
		stride := d.calc.HeadSize(t.Elem)
		total, ok := word.SafeMul(length, stride)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "element count overflows region arithmetic")
		}
		elems := tail[word.Size:]
		if total > uint64(len(elems)) {
			return nil, errors.OutOfBounds(errors.PhaseDecode, path, total, uint64(len(elems)))
		}
		values := make([]any, length)
		for i := uint64(0); i < length; i++ {
			v, err := d.decodeHead(t.Elem, elems, i*stride, childPath(path, indexSeg(i)))
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil

	case types.KindArray:
		// Dynamic fixed array: length known from the schema, one head slot
		// per element at the start of the tail. The whole head area must be
		// present before any element container is allocated.
		stride := d.calc.HeadSize(t.Elem)
		total, ok := word.SafeMul(uint64(t.Size), stride)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "array size overflows region arithmetic")
		}
		if total > uint64(len(tail)) {
			return nil, errors.OutOfBounds(errors.PhaseDecode, path, total, uint64(len(tail)))
		}
		values := make([]any, t.Size)
		for i := 0; i < t.Size; i++ {
			v, err := d.decodeHead(t.Elem, tail, uint64(i)*stride, childPath(path, indexSeg(uint64(i))))
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil

	case types.KindTuple:
		values := make([]any, len(t.Fields))
		cursor := uint64(0)
		for i := range t.Fields {
			f := &t.Fields[i]
			v, err := d.decodeHead(f.Type, tail, cursor, childPath(path, fieldSeg(f, i)))
			if err != nil {
				return nil, err
			}
			values[i] = v
			cursor += d.calc.HeadSize(f.Type)
		}
		return values, nil

	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidType).
			Path(path...).
			Detail("kind %s is not dynamically encoded", t.Kind).
			Build()
	}
}

// decodeByteString reads a length-prefixed byte sequence from its tail
// region. The caller has already guaranteed the length word is in bounds.
func (d *Decoder) decodeByteString(t *types.Type, tail []byte, path []string) (any, error) {
	length, ok := word.AsOffset(word.U256(tail[:word.Size]))
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, path, "byte length does not fit in 64 bits")
	}

	// Strict mode requires the full zero-padded data region; lenient mode
	// requires only the raw bytes. Neither reads past the region.
	span := length
	if d.mode == ModeStrict {
		span, ok = word.Padded(length)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "padded byte length overflows")
		}
	}
	need, ok := word.SafeAdd(span, word.Size)
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, path, "byte length overflows region arithmetic")
	}
	if need > uint64(len(tail)) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, need, uint64(len(tail)))
	}

	out := make([]byte, length)
	copy(out, tail[word.Size:word.Size+length])
	return out, nil
}

// decodeStatic decodes a statically encoded type inline at `at`.
func (d *Decoder) decodeStatic(t *types.Type, region []byte, at uint64, path []string) (any, error) {
	switch t.Kind {
	case types.KindArray:
		stride := d.calc.HeadSize(t.Elem)
		total, ok := word.SafeMul(uint64(t.Size), stride)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "array size overflows region arithmetic")
		}
		end, ok := word.SafeAdd(at, total)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, "array extent overflows region arithmetic")
		}
		if end > uint64(len(region)) {
			return nil, errors.OutOfBounds(errors.PhaseDecode, path, end, uint64(len(region)))
		}
		values := make([]any, t.Size)
		for i := 0; i < t.Size; i++ {
			v, err := d.decodeStatic(t.Elem, region, at+uint64(i)*stride, childPath(path, indexSeg(uint64(i))))
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil

	case types.KindTuple:
		values := make([]any, len(t.Fields))
		cursor := at
		for i := range t.Fields {
			f := &t.Fields[i]
			v, err := d.decodeStatic(f.Type, region, cursor, childPath(path, fieldSeg(f, i)))
			if err != nil {
				return nil, err
			}
			values[i] = v
			cursor += d.calc.HeadSize(f.Type)
		}
		return values, nil
	}

	slot, err := d.slot(region, at, path)
	if err != nil {
		return nil, err
	}
	return d.decodeScalar(t, slot, path)
}

// decodeScalar decodes one value slot. This is the only place mode-dependent
// validation happens for scalars.
func (d *Decoder) decodeScalar(t *types.Type, slot []byte, path []string) (any, error) {
	v := word.U256(slot)

	switch t.Kind {
	case types.KindUint:
		if d.mode == ModeStrict {
			if !word.FitsUnsigned(v, t.Bits) {
				return nil, errors.InvalidPadding(path, t.String(), slot)
			}
		} else {
			v = word.Mask(v, t.Bits)
		}
		return uintValue(v, t.Bits), nil

	case types.KindInt:
		if d.mode == ModeStrict {
			if !word.FitsSigned(v, t.Bits) {
				return nil, errors.InvalidPadding(path, t.String(), slot)
			}
		} else {
			v = word.SignExtend(word.Mask(v, t.Bits), t.Bits)
		}
		return intValue(v, t.Bits), nil

	case types.KindBool:
		if d.mode == ModeStrict {
			switch {
			case v.IsZero():
				return false, nil
			case v.Eq(uint256.NewInt(1)):
				return true, nil
			default:
				return nil, errors.InvalidBoolean(path, slot)
			}
		}
		return !v.IsZero(), nil

	case types.KindEnum:
		if d.mode == ModeStrict {
			if !v.IsUint64() || v.Uint64() >= uint64(t.Size) {
				val := uint64(0)
				if v.IsUint64() {
					val = v.Uint64()
				}
				return nil, errors.InvalidEnum(errors.PhaseDecode, path, val, t.Size)
			}
			return uint8(v.Uint64()), nil
		}
		// Legacy decoder takes the low byte unchecked; the result may name
		// no member and the caller must not assume it does.
		return slot[word.Size-1], nil

	case types.KindAddress:
		// Unconditional cleanup in both modes.
		var a Address
		copy(a[:], slot[word.Size-AddressLength:])
		return a, nil

	case types.KindFixedBytes:
		out := make([]byte, t.Size)
		copy(out, slot[:t.Size])
		return out, nil

	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidType).
			Path(path...).
			Detail("kind %s is not a scalar", t.Kind).
			Build()
	}
}

// slot returns the 32-byte slot at `at`, bounds-checked.
func (d *Decoder) slot(region []byte, at uint64, path []string) ([]byte, error) {
	end, ok := word.SafeAdd(at, word.Size)
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, path, "slot offset overflows")
	}
	if end > uint64(len(region)) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, end, uint64(len(region)))
	}
	return region[at:end], nil
}

// uintValue converts a cleaned unsigned slot value to its Go representation:
// sized integers up to 64 bits, *big.Int beyond.
func uintValue(v *uint256.Int, bits int) any {
	switch bits {
	case 8:
		return uint8(v.Uint64())
	case 16:
		return uint16(v.Uint64())
	case 32:
		return uint32(v.Uint64())
	case 64:
		return v.Uint64()
	default:
		return v.ToBig()
	}
}

// intValue converts a sign-extended slot value to its Go representation.
// For widths up to 64 bits the low word already holds the two's-complement
// value.
func intValue(v *uint256.Int, bits int) any {
	switch bits {
	case 8:
		return int8(v.Uint64())
	case 16:
		return int16(v.Uint64())
	case 32:
		return int32(v.Uint64())
	case 64:
		return int64(v.Uint64())
	default:
		return word.SignedBig(v)
	}
}

func childPath(path []string, seg string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), seg)
}

func indexSeg(i uint64) string {
	return "[" + strconv.FormatUint(i, 10) + "]"
}

func fieldSeg(f *types.Field, i int) string {
	if f.Name != "" {
		return f.Name
	}
	return "f" + strconv.Itoa(i)
}

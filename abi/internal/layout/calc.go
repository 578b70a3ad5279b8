package layout

import (
	"math"

	"github.com/wippyai/evm-abi/abi/internal/types"
)

// WordSize is the width of one head slot in bytes.
const WordSize = 32

// Calculator answers static layout questions about descriptors. Both
// properties are pure functions of the schema, so results are memoized per
// descriptor node. A Calculator is not safe for concurrent use; the coder
// creates one per call sequence.
type Calculator struct {
	dynamic map[*types.Type]bool
	heads   map[*types.Type]uint64
}

func NewCalculator() *Calculator {
	return &Calculator{
		dynamic: make(map[*types.Type]bool),
		heads:   make(map[*types.Type]uint64),
	}
}

// IsDynamic reports whether the type's serialized size is not fixed by the
// schema alone: byte strings, dynamic arrays, and any composite containing
// one.
func (c *Calculator) IsDynamic(t *types.Type) bool {
	if cached, ok := c.dynamic[t]; ok {
		return cached
	}

	var dyn bool
	switch t.Kind {
	case types.KindBytes, types.KindString, types.KindSlice:
		dyn = true
	case types.KindArray:
		dyn = c.IsDynamic(t.Elem)
	case types.KindTuple:
		for i := range t.Fields {
			if c.IsDynamic(t.Fields[i].Type) {
				dyn = true
				break
			}
		}
	}

	c.dynamic[t] = dyn
	return dyn
}

// HeadSize returns the number of bytes the type occupies in its enclosing
// head region: one slot for any dynamic type (the offset pointer), the full
// inline size for statics. Always a multiple of WordSize.
func (c *Calculator) HeadSize(t *types.Type) uint64 {
	if cached, ok := c.heads[t]; ok {
		return cached
	}

	var size uint64
	switch {
	case c.IsDynamic(t):
		size = WordSize
	case t.Kind == types.KindArray:
		size = satMul(uint64(t.Size), c.HeadSize(t.Elem))
	case t.Kind == types.KindTuple:
		for i := range t.Fields {
			size = satAdd(size, c.HeadSize(t.Fields[i].Type))
		}
	default:
		size = WordSize
	}

	c.heads[t] = size
	return size
}

// MinTailSize returns the minimum byte count a dynamic type's tail region
// must hold before any of it can be read: the length word for byte strings
// and dynamic arrays, the inner head area for dynamic fixed arrays and
// tuples. Used for the bounds check before an offset is followed.
func (c *Calculator) MinTailSize(t *types.Type) uint64 {
	switch t.Kind {
	case types.KindBytes, types.KindString, types.KindSlice:
		return WordSize
	case types.KindArray:
		return satMul(uint64(t.Size), c.HeadSize(t.Elem))
	case types.KindTuple:
		var size uint64
		for i := range t.Fields {
			size = satAdd(size, c.HeadSize(t.Fields[i].Type))
		}
		return size
	default:
		return WordSize
	}
}

// Sizes saturate instead of wrapping: a schema too large to address comes
// back as MaxUint64, which no real buffer can satisfy in a bounds check.
func satMul(a, b uint64) uint64 {
	if b != 0 && a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

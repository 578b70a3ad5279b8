package abi

import (
	"github.com/wippyai/evm-abi/abi/internal/layout"
)

// WordSize is the width of one head slot in bytes.
const WordSize = layout.WordSize

// LayoutCalculator exposes the static layout properties of a descriptor:
// whether it is dynamically encoded and how many bytes it occupies in its
// enclosing head region.
type LayoutCalculator struct {
	calc *layout.Calculator
}

func NewLayoutCalculator() *LayoutCalculator {
	return &LayoutCalculator{
		calc: layout.NewCalculator(),
	}
}

// IsDynamic reports whether t's serialized size is not fixed by the schema
// alone.
func (lc *LayoutCalculator) IsDynamic(t *Type) bool {
	return lc.calc.IsDynamic(t)
}

// HeadSize returns the byte count t occupies in its enclosing head region:
// one word for dynamic types, the full inline size for statics.
func (lc *LayoutCalculator) HeadSize(t *Type) uint64 {
	return lc.calc.HeadSize(t)
}

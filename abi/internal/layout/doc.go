// Package layout provides static layout calculations for ABI type
// descriptors.
//
// This package answers the two questions the head/tail encoding depends on:
// whether a type is dynamically encoded, and how many bytes it occupies in
// its enclosing head region.
//
// # Layout Rules
//
//   - Every scalar occupies one 32-byte head slot, value inline
//   - Dynamic types occupy one head slot holding a relative offset
//   - Static fixed arrays inline length x element-head bytes
//   - Static tuples inline the sum of their field heads
//
// # Usage
//
//	calc := layout.NewCalculator()
//	if calc.IsDynamic(t) { ... }
//	cursor += calc.HeadSize(t)
//
// This package is internal to the abi package.
package layout

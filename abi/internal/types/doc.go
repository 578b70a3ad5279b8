// Package types defines the ABI type descriptor tree.
//
// Type is a tagged-variant description of one ABI type: integer widths,
// fixed byte sizes, enum member counts, array lengths and element types,
// and ordered tuple fields. Descriptors are immutable once built; the
// decoder and encoder only read them.
//
// # Key Types
//
//   - Type: recursive type descriptor
//   - Kind: type discriminator (uint, int, address, bool, bytes, ...)
//
// This package is internal to the abi package.
package types

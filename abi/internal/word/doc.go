// Package word provides 32-byte slot primitives for the ABI coder: reading
// and writing big-endian 256-bit slot values, width masking and sign
// extension, and the overflow-checked arithmetic every offset and count
// computation goes through.
//
// This package is internal to the abi package.
package word

package word

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// Size is the width of one slot in bytes.
const Size = 32

// SafeMul multiplies with overflow detection.
func SafeMul(a, b uint64) (uint64, bool) {
	if b != 0 && a > math.MaxUint64/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd adds with overflow detection.
func SafeAdd(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

// Padded rounds n up to the next multiple of Size, reporting overflow.
func Padded(n uint64) (uint64, bool) {
	sum, ok := SafeAdd(n, Size-1)
	if !ok {
		return 0, false
	}
	return sum &^ (Size - 1), true
}

// U256 interprets a 32-byte slot as an unsigned big-endian integer.
func U256(slot []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(slot[:Size])
}

// Put writes v into dst as a 32-byte big-endian slot.
func Put(dst []byte, v *uint256.Int) {
	b := v.Bytes32()
	copy(dst[:Size], b[:])
}

// Mask returns v truncated to its low bits.
func Mask(v *uint256.Int, bits int) *uint256.Int {
	if bits >= 256 {
		return new(uint256.Int).Set(v)
	}
	m := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
	m.SubUint64(m, 1)
	return m.And(v, m)
}

// SignExtend returns v's low bits sign-extended to the full slot width.
func SignExtend(v *uint256.Int, bits int) *uint256.Int {
	if bits >= 256 {
		return new(uint256.Int).Set(v)
	}
	byteNum := uint256.NewInt(uint64(bits/8 - 1))
	return new(uint256.Int).ExtendSign(v, byteNum)
}

// FitsUnsigned reports whether the bits above the declared width are all
// zero.
func FitsUnsigned(v *uint256.Int, bits int) bool {
	return v.BitLen() <= bits
}

// FitsSigned reports whether the bits above the declared width are a
// correct sign extension of bit bits-1.
func FitsSigned(v *uint256.Int, bits int) bool {
	return SignExtend(v, bits).Eq(v)
}

// SignedBig converts a full-width two's-complement slot value to a signed
// big integer.
func SignedBig(v *uint256.Int) *big.Int {
	if v.Sign() >= 0 {
		return v.ToBig()
	}
	neg := new(uint256.Int).Neg(v)
	return new(big.Int).Neg(neg.ToBig())
}

// AsOffset extracts a relative offset or element count from a slot value.
// Values beyond 64 bits can never reference a real buffer position.
func AsOffset(v *uint256.Int) (uint64, bool) {
	if !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}

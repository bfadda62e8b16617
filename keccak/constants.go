package keccak

// RoundConstants holds the 24 standard Keccak iota constants, one per
// round of Permute. Read-only after package init.
var RoundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets[x+5y] is the standard Keccak rho rotation amount for
// lane (x,y), reduced mod 64 and encoded as a byte per spec.md's
// small-integer tight-flash requirement.
var rotationOffsets = [25]uint8{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// OffsetAt returns the rho rotation offset for lane (x,y), x,y in 0..4,
// matching spec.md's S[x,y] coordinate convention. Used only by tests that
// check rotationOffsets against that convention; the permutation itself
// indexes rotationOffsets directly by x+5y.
func OffsetAt(x, y int) uint8 {
	return rotationOffsets[x+5*y]
}

// Package sponge implements the SHA3-256 sponge construction over the
// Keccak-f[1600] permutation: a fixed 136-byte rate, 64-byte capacity,
// domain separation byte 0x06, and pad10*1 padding. It has no notion of
// incremental-vs-one-shot hashing surfaces; that belongs to the nanosha3
// package.
package sponge

import "github.com/CoreLathe/nano-sha3/keccak"

const (
	// Rate is the number of state bytes absorb/squeeze touch per block,
	// fixed at 1088 bits for SHA3-256.
	Rate = 136
	// DigestSize is the number of output bytes SHA3-256 produces.
	DigestSize = 32
	// domainSeparator is XORed at the first padding byte, per FIPS 202.
	domainSeparator = 0x06
	// padTrailer is XORed into the last byte of the rate block.
	padTrailer = 0x80
)

// State is a SHA3-256 sponge context: a 200-byte Keccak state, a byte
// offset into the current rate block, and a latch recording whether
// Finalize has already run. The zero value is a valid, freshly-initialized
// context, matching spec.md's "created zero-initialized" lifecycle.
type State struct {
	a         [25]uint64
	offset    int
	finalized bool
}

// Absorb XORs p into the rate region of the state, running the
// permutation each time the rate block fills. Calling Absorb after
// Finalize is a contract violation (spec.md invariant I2); release builds
// do not check for it on the hot path, matching spec.md section 7's
// "release builds MUST NOT branch on finalized in the hot path" — see
// debug.go for the debug-build assertion.
func (s *State) Absorb(p []byte) {
	assertNotFinalized(s)

	for len(p) > 0 {
		if s.offset == 0 && len(p) >= Rate {
			// Fast path: a whole rate-aligned block, XORed straight into
			// the rate lanes with no staging buffer.
			keccak.XorLanesIn(&s.a, p[:Rate])
			keccak.Permute(&s.a)
			p = p[Rate:]
			continue
		}

		n := Rate - s.offset
		if n > len(p) {
			n = len(p)
		}
		xorTail(&s.a, s.offset, p[:n])
		s.offset += n
		p = p[n:]

		if s.offset == Rate {
			keccak.Permute(&s.a)
			s.offset = 0
		}
	}
}

// Finalize injects the pad10*1 padding (domain separator at offset, 0x80
// at byte Rate-1 of the last block — the two XORs land on the same byte
// when offset == Rate-1, which is correct and not special-cased), runs
// the permutation once more, and returns the first DigestSize bytes of
// the resulting state. After Finalize, s must not be reused: Absorb on a
// finalized context is a contract violation, not a recoverable error.
func (s *State) Finalize() [DigestSize]byte {
	assertNotFinalized(s)

	xorByte(&s.a, s.offset, domainSeparator)
	xorByte(&s.a, Rate-1, padTrailer)
	keccak.Permute(&s.a)
	s.finalized = true

	var out [DigestSize]byte
	keccak.LanesOut(out[:], &s.a)
	return out
}

// xorTail XORs buf into the state starting at byte offset within the rate
// region, without requiring buf to be lane-aligned. offset+len(buf) <=
// Rate is a precondition enforced by Absorb's caller-internal bookkeeping.
func xorTail(a *[25]uint64, offset int, buf []byte) {
	for i, bi := range buf {
		pos := offset + i
		lane := pos / 8
		shift := uint((pos % 8) * 8)
		a[lane] ^= uint64(bi) << shift
	}
}

// xorByte XORs a single byte into the state at byte position pos.
func xorByte(a *[25]uint64, pos int, b byte) {
	lane := pos / 8
	shift := uint((pos % 8) * 8)
	a[lane] ^= uint64(b) << shift
}

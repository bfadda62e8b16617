// Package nanosha3 implements SHA3-256 over a from-scratch Keccak-f[1600]
// sponge, built for flash- and stack-constrained targets as well as
// deterministic, allocation-free use on hosted systems. See package
// sponge and package keccak for the sponge construction and permutation
// this wraps.
package nanosha3

import "github.com/CoreLathe/nano-sha3/sponge"

// Size is the SHA3-256 digest size in bytes.
const Size = sponge.DigestSize

// BlockSize is the SHA3-256 rate in bytes, returned by Digest.BlockSize to
// satisfy hash.Hash.
const BlockSize = sponge.Rate

// Digest is an incremental SHA3-256 hasher. The zero value is ready to
// use, matching spec.md's "created zero-initialized" lifecycle. A Digest
// is not safe for concurrent use by multiple goroutines; distinct Digests
// may be used concurrently because they share no state beyond the
// read-only Keccak tables.
type Digest struct {
	s sponge.State
}

// New returns a new, ready-to-use SHA3-256 Digest.
func New() *Digest {
	return &Digest{}
}

// Write absorbs p into the hash state. It never returns an error and
// always consumes all of p, satisfying io.Writer and hash.Hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.s.Absorb(p)
	return len(p), nil
}

// Reset returns d to its zero-initialized, ready-to-absorb state,
// satisfying hash.Hash.
func (d *Digest) Reset() {
	d.s = sponge.State{}
}

// Size returns the SHA3-256 digest size in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the SHA3-256 rate in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Sum appends the SHA3-256 digest of all bytes written so far to b and
// returns the resulting slice, without modifying d's state, matching
// hash.Hash.Sum's contract (so callers may keep writing after calling
// Sum). It clones the underlying sponge before finalizing, the same
// clone-then-squeeze discipline the teacher and every other retrieved
// sponge in this corpus use to give Sum its non-destructive contract.
func (d *Digest) Sum(b []byte) []byte {
	clone := d.s
	digest := clone.Finalize()
	return append(b, digest[:]...)
}

// Finalize consumes d and returns its SHA3-256 digest. Unlike Sum, it
// does mutate d's state (per spec.md section 4.4, finalize "consumes"
// the context); d must not be reused afterward. Prefer Finalize over
// Sum(nil) when the context is genuinely done, to avoid the extra clone.
func (d *Digest) Finalize() [Size]byte {
	return d.s.Finalize()
}

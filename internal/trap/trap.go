//go:build tinygo

// Package trap provides the embedded-profile panic sink spec.md section
// 4.7 describes: a minimal diverging routine for targets that provide no
// default abort/unwind handler. It is built only under TinyGo and is
// never called by package keccak, sponge, or nanosha3 under any contract
// those packages document — reaching it at runtime would itself indicate
// a violated precondition elsewhere.
package trap

// Trap diverges. It is the only body this package has: an unreachable
// compile-time target, not a runtime recovery path.
func Trap() {
	for {
	}
}

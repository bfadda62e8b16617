//go:build nanosha3debug

package sponge

import "fmt"

// assertNotFinalized panics if s has already been finalized. Built only
// under the nanosha3debug tag, per spec.md section 7: "Implementations
// MAY add a debug-mode assertion; release builds MUST NOT branch on
// finalized in the hot path." This is strictly a development aid for
// catching misuse in tests; it must never be relied on by calling code.
func assertNotFinalized(s *State) {
	if s.finalized {
		panic(fmt.Errorf("sponge: Absorb/Finalize called on an already-finalized context"))
	}
}

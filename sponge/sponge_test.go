package sponge

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func digestHex(t *testing.T, msg []byte) string {
	t.Helper()
	var s State
	s.Absorb(msg)
	d := s.Finalize()
	return hex.EncodeToString(d[:])
}

// TestVectors checks S1, S2, and S4-family block-boundary vectors
// (spec.md section 8) directly against the sponge, below the Hasher
// Facade.
func TestVectors(t *testing.T) {
	cases := []struct {
		name string
		msg  []byte
		want string
	}{
		{"empty", nil, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", []byte("abc"), "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"135-zero", make([]byte, 135), "7d080d7ba978a75c8a7d1f9be566c859084509c9c2b4928435c225d5777d98e3"},
		{"136-zero-padding-only-block", make([]byte, 136), "e772c9cf9eb9c991cdfcf125001b454fdbc0a95f188d1b4c844aa032ad6e075e"},
		{"272-zero", make([]byte, 272), "5d86a8cc4aa8f0d98146a747281865a625a19f9580eef32e38905920bc532c5c"},
		{"408-zero", make([]byte, 408), "5e76512af3537a2dc7c5a7628292ad80a6ebad5b5f16f514f3ea0cc483983899"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, digestHex(t, c.msg))
		})
	}
}

// TestAbsorbChunking checks property P2: the digest is independent of how
// the input is split across calls to Absorb.
func TestAbsorbChunking(t *testing.T) {
	msg := []byte("this is a somewhat longer message that spans more than one 136-byte rate block, to exercise the fast absorb path as well as the slow one, plus a tail")

	var whole State
	whole.Absorb(msg)
	want := whole.Finalize()

	splits := [][]int{
		{1, 1, 1},
		{50, 50},
		{136},
		{135, 1},
		{136, 1},
		{0, len(msg)},
	}
	for _, sizes := range splits {
		var s State
		pos := 0
		for _, n := range sizes {
			end := pos + n
			if end > len(msg) {
				end = len(msg)
			}
			s.Absorb(msg[pos:end])
			pos = end
		}
		if pos < len(msg) {
			s.Absorb(msg[pos:])
		}
		got := s.Finalize()
		require.Equal(t, want, got)
	}
}

// TestEmptyAbsorbIsNoop checks property P3: Absorb(nil) does not change
// observable state.
func TestEmptyAbsorbIsNoop(t *testing.T) {
	var a, b State
	a.Absorb([]byte("x"))
	a.Absorb(nil)
	b.Absorb([]byte("x"))
	require.Equal(t, b.Finalize(), a.Finalize())
}

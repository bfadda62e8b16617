package keccak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPermuteZeroState checks Permute against the well-known Keccak-f[1600]
// test vector for the all-zero input: applying the permutation once to a
// zeroed 1600-bit state yields a state whose first lane is
// 0xf1258f7940e1dde7, and whose first five lanes are published alongside
// the reference implementation's test suite.
func TestPermuteZeroState(t *testing.T) {
	var a [25]uint64
	Permute(&a)

	want := [5]uint64{
		0xf1258f7940e1dde7,
		0x84d5ccf933c0478a,
		0xd598261ea65aa9ee,
		0xbd1547306f80494d,
		0x8b284e056253d057,
	}
	for i, w := range want {
		require.Equalf(t, w, a[i], "lane %d after one permutation of the zero state", i)
	}
}

// TestPermuteDeterministic checks that two equal states give equal results
// after one Permute each, i.e. that Permute depends only on its input and
// carries no scratch state over between calls.
func TestPermuteDeterministic(t *testing.T) {
	var a, b [25]uint64
	for i := range a {
		a[i] = uint64(i) * 0x0101010101010101
		b[i] = a[i]
	}
	Permute(&a)
	Permute(&b)
	require.Equal(t, a, b, "Permute must be a pure function of its input")
}

// TestOffsetAtMatchesXYConvention checks that OffsetAt's (x,y) accessor
// agrees with the flat x+5y table Permute indexes directly, per spec.md
// section 3's S[x,y] lane-order convention.
func TestOffsetAtMatchesXYConvention(t *testing.T) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			require.Equal(t, rotationOffsets[x+5*y], OffsetAt(x, y))
		}
	}
}

// TestPermuteNoAllocs is an in-repo proxy for property P5 (no heap
// allocation reachable from the public surface). The authoritative check
// is external symbol inspection of the compiled binary (spec.md section
// 8), which this test cannot perform; AllocsPerRun only catches a
// regression that introduces a heap escape in this function specifically.
func TestPermuteNoAllocs(t *testing.T) {
	var a [25]uint64
	allocs := testing.AllocsPerRun(1000, func() { Permute(&a) })
	require.Zero(t, allocs, "Permute must not allocate")
}

func BenchmarkPermute(b *testing.B) {
	var a [25]uint64
	for i := 0; i < b.N; i++ {
		Permute(&a)
	}
}

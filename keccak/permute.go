package keccak

// Permute applies the 24-round Keccak-f[1600] permutation to a in place.
//
// Each round performs theta, the combined rho-and-pi step, chi, and iota,
// in that order, over the 25-lane state a[x+5y]. The round loop is never
// unrolled: a single loop body runs 24 times on every build, embedded or
// hosted, so the flash-tight and hosted profiles emit identical object
// code for this function. All indexing below is a function of (round, x,
// y) alone, never of a's contents, satisfying the no-data-dependent-
// addressing requirement this permutation is built under.
func Permute(a *[25]uint64) {
	var c, d [5]uint64
	var b [25]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho and pi, combined: b[y, 2x+3y] = rotl64(a[x,y], offset[x,y])
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				nx, ny := y, (2*x+3*y)%5
				b[nx+5*ny] = rotl64(a[x+5*y], rotationOffsets[x+5*y])
			}
		}

		// chi
		for y := 0; y < 5; y++ {
			row := 5 * y
			c[0], c[1], c[2], c[3], c[4] = b[row], b[row+1], b[row+2], b[row+3], b[row+4]
			for x := 0; x < 5; x++ {
				a[row+x] = c[x] ^ ((^c[(x+1)%5]) & c[(x+2)%5])
			}
		}

		// iota
		a[0] ^= RoundConstants[round]
	}
}

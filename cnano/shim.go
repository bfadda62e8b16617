// Command cnano exports the C ABI shim spec.md section 4.5/6 describes.
// Build with `go build -buildmode=c-archive -o nano_sha3.a` (or c-shared)
// to produce nano_sha3.h/nano_sha3.a, matching the header:
//
//	void nano_sha3_256(uint8_t out[32], const uint8_t *input, size_t len);
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	nanosha3 "github.com/CoreLathe/nano-sha3"
)

// nano_sha3_256 is the single exported symbol of this shim. Preconditions
// (spec.md section 4.5): out points to at least 32 writable bytes; input
// points to at least len readable bytes, or is any non-null value when
// len == 0. The two ranges may overlap only when len == 0. Behavior on a
// nil out is undefined per spec.md section 7 ("Invalid buffer"); this
// wrapper still panics rather than writing through a nil C pointer,
// because the alternative is an undiagnosable SIGSEGV across the cgo
// boundary rather than a Go stack trace.
//
//export nano_sha3_256
func nano_sha3_256(out *C.uint8_t, input *C.uint8_t, length C.size_t) {
	if out == nil {
		panic("nano_sha3_256: out must not be nil")
	}

	var in []byte
	if length > 0 {
		in = unsafe.Slice((*byte)(unsafe.Pointer(input)), int(length))
	}

	digest := nanosha3.Sum256(in)
	outSlice := unsafe.Slice((*byte)(unsafe.Pointer(out)), nanosha3.Size)
	copy(outSlice, digest[:])
}

func main() {}

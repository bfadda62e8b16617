package nanosha3

// Sum256 is the one-shot SHA3-256 entry point spec.md section 4.4 calls
// hash(input): equivalent to New().Write(data).Finalize(), written so the
// compiler can inline the whole pipeline rather than going through a
// *Digest indirection.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.Write(data)
	return d.Finalize()
}

package project

import "crypto/sha256"

// Digest is a fixed 256-bit hash used as a cache key.
type Digest [32]byte

// HashBytes hashes a single byte slice.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

// Combine builds a composite digest: H(d1 || d2 || ...). The argument order
// must be deterministic.
func Combine(digests ...Digest) Digest {
	h := sha256.New()
	for _, d := range digests {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

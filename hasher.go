package seqtree

import (
	"encoding/binary"
	"hash"
)

// HasherFactory produces a fresh, independent hash instance. The returned
// hasher must expose the full width of the digest through Sum; a factory
// built on a hash function with only an integer summary must widen it with
// an explicit encoding, see HashWriteUint64.
//
// Standard library constructors satisfy this directly, so sha256.New is a
// valid HasherFactory.
type HasherFactory func() hash.Hash

// newHasher validates the factory at construction time. A factory that
// cannot produce a usable hasher is a programmer error, not a runtime
// condition, so the failure mode is a panic.
func newHasher(factory HasherFactory) hash.Hash {
	if factory == nil {
		panic("seqtree: nil hasher factory")
	}
	hasher := factory()
	if hasher == nil {
		panic("seqtree: hasher factory returned nil")
	}
	if hasher.Size() == 0 {
		panic("seqtree: hasher reports zero width digests")
	}
	return hasher
}

// hashLeaf commits to a single item: H(H(item)). Leaves are always double
// hashed, regardless of adapter, which domain-separates them from interior
// nodes.
func hashLeaf(hasher hash.Hash, item []byte) []byte {
	hasher.Reset()
	hasher.Write(item)
	inner := hasher.Sum(nil)
	hasher.Reset()
	hasher.Write(inner)
	return hasher.Sum(nil)
}

// hashNode combines two child digests: H(left || right). Interior nodes are
// hashed exactly once.
func hashNode(hasher hash.Hash, left, right []byte) []byte {
	hasher.Reset()
	hasher.Write(left)
	hasher.Write(right)
	return hasher.Sum(nil)
}

// copyDigest returns a private copy of digest. Cached final digests and
// stored leaf digests are immutable and shared across tree versions, so they
// never leave the tree by reference; a caller mutating a returned digest
// must not be able to reach the cache.
func copyDigest(digest []byte) []byte {
	out := make([]byte, len(digest))
	copy(out, digest)
	return out
}

// HashWriteUint64 writes value to hasher in big endian layout - most
// significant byte at lowest address/storage location. Adapters wrapping
// integer-output hash functions must use this (or an equivalent explicit
// encoding) to widen the summary into digest bytes.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	b := [8]byte{}
	binary.BigEndian.PutUint64(b[:], value)
	hasher.Write(b[:])
}

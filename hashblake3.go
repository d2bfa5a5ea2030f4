package seqtree

import (
	"hash"

	"github.com/zeebo/blake3"
)

// NewBlake3Factory returns a HasherFactory producing 32 byte BLAKE3 hashers.
func NewBlake3Factory() HasherFactory {
	return func() hash.Hash {
		return blake3.New()
	}
}

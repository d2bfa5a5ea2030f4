package seqtree

import (
	"crypto/sha256"
	"hash"
)

// Shared test fixtures. The canonical digests are computed mandraulically,
// with no Tree involvement, so that tree construction is tested against
// something it does not share code with.

// testItems returns n single byte items 0..n-1.
func testItems(n int) [][]byte {
	items := make([][]byte, n)
	for i := range items {
		items[i] = []byte{byte(i)}
	}
	return items
}

// leafDigest is the double hashed leaf commitment, hand computed.
func leafDigest(item []byte) []byte {
	inner := sha256.Sum256(item)
	outer := sha256.Sum256(inner[:])
	return outer[:]
}

// nodeDigest is the interior commitment, hand computed.
func nodeDigest(left, right []byte) []byte {
	hasher := sha256.New()
	hasher.Write(left)
	hasher.Write(right)
	return hasher.Sum(nil)
}

// canonicalRoot computes the root for items by direct recursion, no caching,
// full recomputation every call.
func canonicalRoot(items [][]byte) []byte {
	if len(items) == 1 {
		return leafDigest(items[0])
	}
	k := splitPoint(uint64(len(items)))
	return nodeDigest(canonicalRoot(items[:k]), canonicalRoot(items[k:]))
}

// countingHasher wraps a hasher and counts digest finalizations, so tests
// can bound the hash work an operation performs. hashLeaf finalizes twice,
// hashNode once.
type countingHasher struct {
	hash.Hash
	sums int
}

func (c *countingHasher) Sum(b []byte) []byte {
	c.sums++
	return c.Hash.Sum(b)
}

// addHash64 is a deliberately weak 64 bit adapter used to demonstrate hash
// agnosticism. Its only virtue is determinism. It widens its integer state
// with an explicit big endian encoding, never by reinterpreting memory.
type addHash64 struct {
	state uint64
}

func newAddHash64() hash.Hash { return &addHash64{} }

func (h *addHash64) Write(p []byte) (int, error) {
	for _, b := range p {
		h.state = h.state*31 + uint64(b)
	}
	return len(p), nil
}

func (h *addHash64) Sum(b []byte) []byte {
	var widened digestRecorder
	HashWriteUint64(&widened, h.state)
	return append(b, widened.data...)
}

func (h *addHash64) Reset()         { h.state = 0 }
func (h *addHash64) Size() int      { return 8 }
func (h *addHash64) BlockSize() int { return 1 }

// digestRecorder is the trivial hash.Hash that captures exactly what is
// written to it, so the adapter widens its summary through HashWriteUint64
// rather than reimplementing the encoding.
type digestRecorder struct {
	data []byte
}

func (r *digestRecorder) Write(p []byte) (int, error) {
	r.data = append(r.data, p...)
	return len(p), nil
}

func (r *digestRecorder) Sum(b []byte) []byte { return append(b, r.data...) }
func (r *digestRecorder) Reset()              { r.data = nil }
func (r *digestRecorder) Size() int           { return len(r.data) }
func (r *digestRecorder) BlockSize() int      { return 1 }

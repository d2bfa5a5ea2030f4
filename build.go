package seqtree

import "hash"

// rangeDigest computes the digest committing the leaves [start, end).
//
// The recursion follows the split rule: the left partition always covers the
// largest power of two strictly less than the range size, which makes it a
// final span. Final spans are served from the cache when present and
// recorded the first time they are computed. Appends only change membership
// of the right spine, so after an append only ranges along that spine miss
// the cache and the new root costs O(log n) interior hashes.
//
// The cache never changes the result: with a cold cache the same recursion
// recomputes the identical digest from the leaf digests alone.
//
// The hasher belongs to the calling operation. Reads each bring their own
// instance so that they can proceed concurrently with each other.
func (t *Tree) rangeDigest(hasher hash.Hash, start, end uint64) []byte {
	size := end - start
	if size == 1 {
		return t.leaves.digest(start)
	}
	final := isFinalSpan(start, size)
	if final {
		if digest, ok := t.cache.get(start, size); ok {
			return digest
		}
	}
	k := splitPoint(size)
	left := t.rangeDigest(hasher, start, start+k)
	right := t.rangeDigest(hasher, start+k, end)
	digest := hashNode(hasher, left, right)
	if final {
		t.cache.put(start, size, digest)
	}
	return digest
}

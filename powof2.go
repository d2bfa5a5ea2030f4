package seqtree

import "math/bits"

// IsPow2 determins if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	return bits.OnesCount64(size) == 1
}

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// HeightForLeafCount returns the number of levels above the leaf layer for a
// tree of n leaves: ceil(log2(n)), and 0 for n <= 1.
func HeightForLeafCount(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(bits.Len64(n - 1))
}

// splitPoint returns the largest power of two strictly less than n. This is
// the size of the left partition when a range of n > 1 leaves is split.
func splitPoint(n uint64) uint64 {
	return uint64(1) << Log2Uint64(n-1)
}

// isFinalSpan reports whether the leaf range [start, start+size) is final:
// size a power of two and start aligned to it. Such a span is never re-split
// by future appends, so its digest is stable for the life of the tree. A
// single leaf is trivially final.
func isFinalSpan(start, size uint64) bool {
	return IsPow2(size) && start%size == 0
}

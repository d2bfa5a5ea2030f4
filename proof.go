package seqtree

import (
	"fmt"
	"hash"
)

// ProofForIndex collects the inclusion path for the leaf at index i, ordered
// leaf to root.
//
// For the 7 leaf tree the path for index 6 is
//
//	[(D([4,6)), left), (D([0,4)), left)]
//
//	            root
//	          /      \
//	        /          \
//	     [0,4)           *
//	    /   \          /   \
//	   *     *      [4,6)   6
//	  / \   / \      / \
//	 0   1 2   3    4   5
//
// The path length is bounded by ceil(log2(n)).
func (t *Tree) ProofForIndex(i uint64) (Proof, error) {
	n := t.leaves.count()
	if n == 0 {
		return Proof{}, ErrEmptyTree
	}
	if i >= n {
		return Proof{}, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, i, n)
	}
	item := t.leaves.item(i)
	out := make([]byte, len(item))
	copy(out, item)
	return Proof{
		LeafIndex: i,
		LeafCount: n,
		Item:      out,
		Path:      t.pathToRoot(t.factory(), 0, n, i),
	}, nil
}

// ProofForItem locates the first leaf, in append order, whose item equals
// item, and proves that index. Returns ErrItemNotFound when no leaf matches.
func (t *Tree) ProofForItem(item []byte) (Proof, error) {
	if t.leaves.count() == 0 {
		return Proof{}, ErrEmptyTree
	}
	i, ok := t.leaves.find(item)
	if !ok {
		return Proof{}, ErrItemNotFound
	}
	return t.ProofForIndex(i)
}

// pathToRoot collects the sibling digests witnessing leaf i within the range
// [start, end). At each split the partition not containing i is the witness;
// recursing first and appending after yields leaf to root order.
func (t *Tree) pathToRoot(hasher hash.Hash, start, end, i uint64) []ProofEntry {
	if end-start == 1 {
		return nil
	}
	k := splitPoint(end - start)
	if i < start+k {
		path := t.pathToRoot(hasher, start, start+k, i)
		return append(path, ProofEntry{Sibling: copyDigest(t.rangeDigest(hasher, start+k, end)), Side: SideRight})
	}
	path := t.pathToRoot(hasher, start+k, end, i)
	return append(path, ProofEntry{Sibling: copyDigest(t.rangeDigest(hasher, start, start+k)), Side: SideLeft})
}

// ProofForSpan proves that the digest of the final span [start, start+size)
// is committed by the current root. Every complete final span is a node of
// the current shape, so the witness path to the root always exists.
//
// A span covering [0, size) lets a holder of an older power of two sized
// root check that the old tree is a prefix of this one.
func (t *Tree) ProofForSpan(start, size uint64) (SpanProof, error) {
	n := t.leaves.count()
	if n == 0 {
		return SpanProof{}, ErrEmptyTree
	}
	// size > n before the subtraction keeps the bound check safe against
	// uint64 wrap on start+size.
	if size == 0 || size > n || start > n-size {
		return SpanProof{}, fmt.Errorf(
			"%w: span [%d, %d), leaf count %d", ErrIndexOutOfRange, start, start+size, n)
	}
	if !isFinalSpan(start, size) {
		return SpanProof{}, fmt.Errorf("%w: [%d, %d)", ErrSpanNotFinal, start, start+size)
	}
	hasher := t.factory()
	return SpanProof{
		Start:      start,
		Size:       size,
		LeafCount:  n,
		SpanDigest: copyDigest(t.rangeDigest(hasher, start, start+size)),
		Path:       t.spanPathToRoot(hasher, 0, n, start, size),
	}, nil
}

// spanPathToRoot collects the sibling digests witnessing the span
// [spanStart, spanStart+spanSize) within [start, end). Final spans nest
// cleanly inside split partitions, so the span always falls wholly on one
// side of each split.
func (t *Tree) spanPathToRoot(hasher hash.Hash, start, end, spanStart, spanSize uint64) []ProofEntry {
	if start == spanStart && end-start == spanSize {
		return nil
	}
	k := splitPoint(end - start)
	if spanStart+spanSize <= start+k {
		path := t.spanPathToRoot(hasher, start, start+k, spanStart, spanSize)
		return append(path, ProofEntry{Sibling: copyDigest(t.rangeDigest(hasher, start+k, end)), Side: SideRight})
	}
	path := t.spanPathToRoot(hasher, start+k, end, spanStart, spanSize)
	return append(path, ProofEntry{Sibling: copyDigest(t.rangeDigest(hasher, start, start+k)), Side: SideLeft})
}

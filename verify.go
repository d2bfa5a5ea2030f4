package seqtree

import (
	"bytes"
	"hash"
)

// VerifyInclusion reports whether item is the leaf at index within a tree of
// leafCount leaves whose root is root.
//
// The item is double hashed and the path folded leaf to root. Additionally
// the recorded sides must equal the side sequence the split rule implies for
// (index, leafCount): the shape of a path depends on the leaf count at proof
// time, so a proof generated against a tree of a different size is rejected
// even when the digests would chain.
//
// A failed check is an expected outcome for callers, so the result is a
// boolean rather than an error.
func VerifyInclusion(
	hasher hash.Hash, item []byte, index uint64, leafCount uint64, path []ProofEntry, root []byte,
) bool {

	if leafCount == 0 || index >= leafCount {
		return false
	}

	sides := pathSides(index, leafCount)
	if len(path) != len(sides) {
		return false
	}
	for i := range path {
		if path[i].Side != sides[i] {
			return false
		}
	}

	return VerifySpan(hasher, hashLeaf(hasher, item), path, root)
}

// VerifySpan reports whether digest, folded with the witness path, reproduces
// root. The starting digest is taken as given; for leaf proofs use
// VerifyInclusion, which derives it from the item and checks the path shape.
func VerifySpan(hasher hash.Hash, digest []byte, path []ProofEntry, root []byte) bool {
	current := digest
	for _, entry := range path {
		switch entry.Side {
		case SideLeft:
			current = hashNode(hasher, entry.Sibling, current)
		case SideRight:
			current = hashNode(hasher, current, entry.Sibling)
		default:
			return false
		}
	}
	return bytes.Equal(current, root)
}

// Verify reports whether p proves its item against root using hasher. The
// hasher must be an instance of the same adapter the tree was built with.
func (p Proof) Verify(hasher hash.Hash, root []byte) bool {
	return VerifyInclusion(hasher, p.Item, p.LeafIndex, p.LeafCount, p.Path, root)
}

// Verify reports whether p proves its span digest against root using hasher.
func (p SpanProof) Verify(hasher hash.Hash, root []byte) bool {
	// Size is compared first so the subtraction cannot wrap.
	if p.LeafCount == 0 || p.Size == 0 || p.Size > p.LeafCount || p.Start > p.LeafCount-p.Size {
		return false
	}
	if !isFinalSpan(p.Start, p.Size) {
		return false
	}
	return VerifySpan(hasher, p.SpanDigest, p.Path, root)
}

// pathSides derives the side sequence the split rule implies for a proof of
// index in a tree of leafCount leaves, ordered leaf to root. Walking the
// shape top down visits the path root to leaf, so the sides are reversed
// before returning.
func pathSides(index, leafCount uint64) []Side {
	var sides []Side
	lo, hi := uint64(0), leafCount
	for hi-lo > 1 {
		k := splitPoint(hi - lo)
		if index < lo+k {
			sides = append(sides, SideRight)
			hi = lo + k
		} else {
			sides = append(sides, SideLeft)
			lo += k
		}
	}
	for i, j := 0, len(sides)-1; i < j; i, j = i+1, j-1 {
		sides[i], sides[j] = sides[j], sides[i]
	}
	return sides
}

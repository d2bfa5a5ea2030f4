package seqtree

import (
	"fmt"
	"hash"
)

// Tree is an order preserving merkle tree over an append only sequence of
// opaque byte items. The zero value is not usable; construct with New.
//
// Tree is single writer: Append and AppendBulk require exclusive access.
// Root, proof generation and DumpTree may run concurrently with each other,
// each hashing with its own adapter instance, but not concurrently with an
// append.
type Tree struct {
	factory HasherFactory
	hasher  hash.Hash
	leaves  leafStore
	cache   *finalNodeCache
}

// New constructs an empty tree hashing with instances produced by factory.
// New panics if the factory is nil or produces an unusable hasher; a
// misconfigured adapter is a construction time programmer error.
func New(factory HasherFactory) *Tree {
	return &Tree{
		factory: factory,
		hasher:  newHasher(factory),
		cache:   newFinalNodeCache(),
	}
}

// Append inserts item at the next leaf index and returns that index. The
// item bytes are copied, so the caller keeps ownership of item. Append is
// total: given the current state it always succeeds.
func (t *Tree) Append(item []byte) uint64 {
	stored := make([]byte, len(item))
	copy(stored, item)
	return t.leaves.append(stored, hashLeaf(t.hasher, stored))
}

// AppendBulk inserts the items in order and returns the new leaf count. The
// tree is built once over the final count by the next call to Root, rather
// than once per item, and the resulting root is identical to the root after
// the equivalent sequence of single Appends.
func (t *Tree) AppendBulk(items [][]byte) uint64 {
	for _, item := range items {
		t.Append(item)
	}
	return t.leaves.count()
}

// Root returns the current root digest. For a single leaf the root is that
// leaf's digest. Returns ErrEmptyTree when no leaves have been appended.
func (t *Tree) Root() ([]byte, error) {
	n := t.leaves.count()
	if n == 0 {
		return nil, ErrEmptyTree
	}
	return copyDigest(t.rangeDigest(t.factory(), 0, n)), nil
}

// LeafCount returns the number of leaves appended so far.
func (t *Tree) LeafCount() uint64 {
	return t.leaves.count()
}

// Height returns the number of levels above the leaf layer, ceil(log2(n)).
func (t *Tree) Height() uint64 {
	return HeightForLeafCount(t.leaves.count())
}

// Item returns a copy of the item stored at leaf index i.
func (t *Tree) Item(i uint64) ([]byte, error) {
	if i >= t.leaves.count() {
		return nil, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, i, t.leaves.count())
	}
	item := t.leaves.item(i)
	out := make([]byte, len(item))
	copy(out, item)
	return out, nil
}

// LeafDigest returns a copy of the double hashed digest of the leaf at
// index i.
func (t *Tree) LeafDigest(i uint64) ([]byte, error) {
	if i >= t.leaves.count() {
		return nil, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, i, t.leaves.count())
	}
	return copyDigest(t.leaves.digest(i)), nil
}

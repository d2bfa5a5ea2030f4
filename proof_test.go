package seqtree

import (
	"crypto/sha256"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProofAllLeaves proves and verifies every index for a range of tree
// sizes, and checks the path length bound ceil(log2(n)).
func TestProofAllLeaves(t *testing.T) {
	const maxLeaves = 33

	for n := 1; n <= maxLeaves; n++ {
		items := testItems(n)
		tree := New(sha256.New)
		tree.AppendBulk(items)

		root, err := tree.Root()
		require.NoError(t, err)

		for i := uint64(0); i < uint64(n); i++ {
			proof, err := tree.ProofForIndex(i)
			require.NoError(t, err)

			assert.LessOrEqual(t, uint64(len(proof.Path)), HeightForLeafCount(uint64(n)),
				"n=%d i=%d", n, i)

			if !proof.Verify(sha256.New(), root) {
				t.Errorf("n=%d i=%d proof failed, path %s",
					n, i, proofPathStringer(proof.Path, ", "))
			}
		}
	}
}

// TestProofShapeSevenLeaves pins the exact witness paths for the seven leaf
// tree.
//
//	            root
//	          /      \
//	        /          \
//	     [0,4)         [4,7)
//	    /   \          /   \
//	  [0,2) [2,4)   [4,6)   6
//	  / \   / \      / \
//	 0   1 2   3    4   5
func TestProofShapeSevenLeaves(t *testing.T) {
	items := testItems(7)
	tree := New(sha256.New)
	tree.AppendBulk(items)

	l := make([][]byte, 7)
	for i := range items {
		l[i] = leafDigest(items[i])
	}
	d01 := nodeDigest(l[0], l[1])
	d23 := nodeDigest(l[2], l[3])
	d45 := nodeDigest(l[4], l[5])
	d04 := nodeDigest(d01, d23)
	d47 := nodeDigest(d45, l[6])

	proof6, err := tree.ProofForIndex(6)
	require.NoError(t, err)
	assert.Equal(t, []ProofEntry{
		{Sibling: d45, Side: SideLeft},
		{Sibling: d04, Side: SideLeft},
	}, proof6.Path, "leaf 6 pairs with [4,6) then [0,4)")

	proof2, err := tree.ProofForIndex(2)
	require.NoError(t, err)
	assert.Equal(t, []ProofEntry{
		{Sibling: l[3], Side: SideRight},
		{Sibling: d01, Side: SideLeft},
		{Sibling: d47, Side: SideRight},
	}, proof2.Path)
}

func TestProofForItem(t *testing.T) {
	tree := New(sha256.New)
	tree.Append([]byte("a"))
	tree.Append([]byte("b"))
	tree.Append([]byte("a")) // duplicate of leaf 0

	proof, err := tree.ProofForItem([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), proof.LeafIndex, "the first matching leaf wins")

	proof, err = tree.ProofForItem([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), proof.LeafIndex)

	_, err = tree.ProofForItem([]byte("missing"))
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestProofErrors(t *testing.T) {
	empty := New(sha256.New)
	_, err := empty.ProofForIndex(0)
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = empty.ProofForItem([]byte("x"))
	require.ErrorIs(t, err, ErrEmptyTree)

	tree := New(sha256.New)
	tree.AppendBulk(testItems(3))
	_, err = tree.ProofForIndex(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestProofItemIsACopy(t *testing.T) {
	tree := New(sha256.New)
	tree.Append([]byte("payload"))

	proof, err := tree.ProofForIndex(0)
	require.NoError(t, err)
	proof.Item[0] ^= 0xff

	stored, err := tree.Item(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), stored, "mutating a proof item must not reach the tree")
}

// TestProofSiblingsAreCopies: mutating a returned sibling digest must not
// corrupt the cached final spans backing later proofs and roots.
func TestProofSiblingsAreCopies(t *testing.T) {
	tree := New(sha256.New)
	tree.AppendBulk(testItems(7))
	root, err := tree.Root()
	require.NoError(t, err)

	proof, err := tree.ProofForIndex(6)
	require.NoError(t, err)
	for i := range proof.Path {
		proof.Path[i].Sibling[0] ^= 0xff
	}

	again, err := tree.ProofForIndex(6)
	require.NoError(t, err)
	assert.True(t, again.Verify(sha256.New(), root))

	rootAfter, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, root, rootAfter)
}

func TestProofForSpan(t *testing.T) {
	items := testItems(7)
	tree := New(sha256.New)
	tree.AppendBulk(items)

	root, err := tree.Root()
	require.NoError(t, err)

	l := make([][]byte, 7)
	for i := range items {
		l[i] = leafDigest(items[i])
	}
	d04 := nodeDigest(nodeDigest(l[0], l[1]), nodeDigest(l[2], l[3]))
	d47 := nodeDigest(nodeDigest(l[4], l[5]), l[6])

	proof, err := tree.ProofForSpan(0, 4)
	require.NoError(t, err)
	assert.Equal(t, d04, proof.SpanDigest)
	assert.Equal(t, []ProofEntry{{Sibling: d47, Side: SideRight}}, proof.Path)
	assert.True(t, proof.Verify(sha256.New(), root))

	proof, err = tree.ProofForSpan(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []ProofEntry{
		{Sibling: l[6], Side: SideRight},
		{Sibling: d04, Side: SideLeft},
	}, proof.Path)
	assert.True(t, proof.Verify(sha256.New(), root))
}

// TestProofForSpanPrefix: a power of two sized historic root is provably a
// prefix of the grown tree.
func TestProofForSpanPrefix(t *testing.T) {
	items := testItems(7)

	old := New(sha256.New)
	old.AppendBulk(items[:4])
	oldRoot, err := old.Root()
	require.NoError(t, err)

	grown := New(sha256.New)
	grown.AppendBulk(items)
	grownRoot, err := grown.Root()
	require.NoError(t, err)

	proof, err := grown.ProofForSpan(0, 4)
	require.NoError(t, err)
	assert.Equal(t, oldRoot, proof.SpanDigest, "the old root is the [0,4) span digest")
	assert.True(t, proof.Verify(sha256.New(), grownRoot))
}

func TestProofForSpanErrors(t *testing.T) {
	empty := New(sha256.New)
	_, err := empty.ProofForSpan(0, 1)
	require.ErrorIs(t, err, ErrEmptyTree)

	tree := New(sha256.New)
	tree.AppendBulk(testItems(7))

	_, err = tree.ProofForSpan(1, 2)
	require.ErrorIs(t, err, ErrSpanNotFinal, "unaligned spans are not final")

	_, err = tree.ProofForSpan(0, 3)
	require.ErrorIs(t, err, ErrSpanNotFinal, "non power of two sizes are not final")

	_, err = tree.ProofForSpan(4, 4)
	require.ErrorIs(t, err, ErrIndexOutOfRange, "the span must be complete at the current count")

	_, err = tree.ProofForSpan(0, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = tree.ProofForSpan(math.MaxUint64-1, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange,
		"start+size wrapping past zero must not slip the bound check")

	_, err = tree.ProofForSpan(0, math.MaxUint64)
	require.ErrorIs(t, err, ErrIndexOutOfRange,
		"sizes beyond the leaf count fail before any leaf access")
}

package seqtree

import "errors"

// Side records which side of the running digest a proof sibling combines on
// when folding a path towards the root.
type Side uint8

const (
	// SideLeft siblings are the left input to the parent hash: H(sibling || current).
	SideLeft Side = iota
	// SideRight siblings are the right input to the parent hash: H(current || sibling).
	SideRight
)

// ProofEntry is a single sibling on the path from a leaf to the root.
type ProofEntry struct {
	Sibling []byte
	Side    Side
}

// Proof is an inclusion path for a single leaf. It binds the leaf count it
// was generated at because the tree shape, and hence the path, is a function
// of the leaf count. Item is a copy of the inserted item bytes.
type Proof struct {
	LeafIndex uint64
	LeafCount uint64
	Item      []byte
	Path      []ProofEntry
}

// SpanProof is an inclusion path for a complete final span, proving that the
// span digest is committed by the root of a tree with LeafCount leaves.
type SpanProof struct {
	Start      uint64
	Size       uint64
	LeafCount  uint64
	SpanDigest []byte
	Path       []ProofEntry
}

var (
	ErrEmptyTree       = errors.New("seqtree: empty tree")
	ErrItemNotFound    = errors.New("seqtree: item not found")
	ErrIndexOutOfRange = errors.New("seqtree: index out of range")
	ErrSpanNotFinal    = errors.New("seqtree: span is not final")
	ErrInvalidSide     = errors.New("seqtree: invalid proof side")
)

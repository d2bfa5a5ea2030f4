package seqtree

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR interchange encoding for proofs. Maps are keyed by small integers,
// following the MMRIVER receipt convention, and encoding is canonical so the
// same proof always serializes to the same bytes.

type wireProofEntry struct {
	Sibling []byte `cbor:"1,keyasint"`
	Side    uint8  `cbor:"2,keyasint"`
}

type wireProof struct {
	LeafIndex uint64           `cbor:"1,keyasint"`
	LeafCount uint64           `cbor:"2,keyasint"`
	Item      []byte           `cbor:"3,keyasint"`
	Path      []wireProofEntry `cbor:"4,keyasint"`
}

type wireSpanProof struct {
	Start      uint64           `cbor:"1,keyasint"`
	Size       uint64           `cbor:"2,keyasint"`
	LeafCount  uint64           `cbor:"3,keyasint"`
	SpanDigest []byte           `cbor:"4,keyasint"`
	Path       []wireProofEntry `cbor:"5,keyasint"`
}

var proofEncMode cbor.EncMode

func init() {
	var err error
	proofEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("seqtree: cbor encode mode: %v", err))
	}
}

func wirePath(path []ProofEntry) []wireProofEntry {
	wire := make([]wireProofEntry, len(path))
	for i, entry := range path {
		wire[i] = wireProofEntry{Sibling: entry.Sibling, Side: uint8(entry.Side)}
	}
	return wire
}

func pathFromWire(wire []wireProofEntry) ([]ProofEntry, error) {
	path := make([]ProofEntry, len(wire))
	for i, entry := range wire {
		if entry.Side != uint8(SideLeft) && entry.Side != uint8(SideRight) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSide, entry.Side)
		}
		path[i] = ProofEntry{Sibling: entry.Sibling, Side: Side(entry.Side)}
	}
	return path, nil
}

// MarshalCBOR implements cbor.Marshaler.
func (p Proof) MarshalCBOR() ([]byte, error) {
	return proofEncMode.Marshal(wireProof{
		LeafIndex: p.LeafIndex,
		LeafCount: p.LeafCount,
		Item:      p.Item,
		Path:      wirePath(p.Path),
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Unknown sides are rejected with
// ErrInvalidSide.
func (p *Proof) UnmarshalCBOR(data []byte) error {
	var wire wireProof
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	path, err := pathFromWire(wire.Path)
	if err != nil {
		return err
	}
	p.LeafIndex = wire.LeafIndex
	p.LeafCount = wire.LeafCount
	p.Item = wire.Item
	p.Path = path
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (p SpanProof) MarshalCBOR() ([]byte, error) {
	return proofEncMode.Marshal(wireSpanProof{
		Start:      p.Start,
		Size:       p.Size,
		LeafCount:  p.LeafCount,
		SpanDigest: p.SpanDigest,
		Path:       wirePath(p.Path),
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (p *SpanProof) UnmarshalCBOR(data []byte) error {
	var wire wireSpanProof
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	path, err := pathFromWire(wire.Path)
	if err != nil {
		return err
	}
	p.Start = wire.Start
	p.Size = wire.Size
	p.LeafCount = wire.LeafCount
	p.SpanDigest = wire.SpanDigest
	p.Path = path
	return nil
}

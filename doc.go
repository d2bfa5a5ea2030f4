package seqtree

/*

# Order preserving merkle trees

This package implements an in-memory, insertion ordered binary merkle tree
over an append only sequence of items. It is a sibling of the `mmr` package
and shares its general outlook: a small set of composable pieces, index range
arithmetic where possible, and a burden of knowledge on the caller for the
concurrency contract.

Where the MMR maintains multiple peaks and derives all structure from node
positions, this tree has exactly one root at all times and derives its
structure from the leaf count alone, using the RFC 6962 split rule:

  - a range of one leaf is that leaf
  - a range of n > 1 leaves splits at k, the largest power of two strictly
    less than n, into [0, k) and [k, n), and the range digest is
    H(D([0,k)) || D([k,n)))

For 7 leaves the shape is:

	            root
	          /      \
	        /          \
	      *              *
	    /   \          /   \
	   *     *        *     6
	  / \   / \      / \
	 0   1 2   3    4   5

	 |   final    | right spine |

# Final spans

The left partition of every split covers exactly a power of two of leaves and
starts on a multiple of its own size. Appends only ever extend the rightmost
range, so such a span is never re-split: its digest is stable for the life of
the tree. We call these spans final. A single leaf is trivially final.

The tree caches the digest of every final span the first time it is computed
and reuses it verbatim afterwards. Appending to an n leaf tree therefore
costs at most ceil(log2(n+1)) interior hashes to reach the new root: only the
right spine is new, everything to its left is served from the cache. The
cache is strictly an optimization; the root is a pure function of the leaf
sequence and the hash adapter, and a cold cache produces an identical root by
full recomputation.

# Leaf and interior hashing

Leaves commit to their item by double hashing: D(leaf) = H(H(item)). Interior
nodes hash the concatenation of their children exactly once:
D(node) = H(left || right). The double hash domain-separates leaves from
interior nodes for any adapter, so the rule does not depend on which hash
function is plugged in.

The hash function is injected as a HasherFactory at construction and treated
as an opaque capability. Anything satisfying the standard hash.Hash contract
works, provided Sum exposes the full width digest; sha256.New is a valid
factory as-is, and NewBlake3Factory wires BLAKE3. Adapters for integer-output
hash functions must widen the result with an explicit big endian encoding
(HashWriteUint64), never by reinterpreting memory.

# Proofs

An inclusion proof is the ordered list, leaf to root, of sibling digests with
the side each combines on. Verification is stateless: double hash the item,
fold the path, compare with the expected root. Because the split rule depends
on the leaf count, a proof binds the leaf count it was generated at and
verification rejects a path whose shape disagrees with (index, leafCount).

Complete final spans can also be proven in place with ProofForSpan, which
supports checking that an older, smaller tree is a prefix of the current one
when the older leaf count is a power of two.

# Concurrency

Single writer. Append and AppendBulk require exclusive access for their
duration. Root, proof generation and DumpTree may run concurrently with each
other: each takes a fresh hasher from the factory and the final span cache
serializes its own updates. They must not run concurrently with an append,
which changes the leaf sequence they are reading. VerifyInclusion and
VerifySpan are pure functions of their arguments and may run anywhere.

# Sources

The shape rule follows RFC 6962 section 2.1. The final span reuse follows the
same observation that motivates MMR peak caching: nothing left of the current
right spine ever changes again.

*/

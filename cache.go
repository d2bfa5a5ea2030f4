package seqtree

import "sync"

// spanKey identifies a final span by the leaf range it covers.
type spanKey struct {
	start uint64
	size  uint64
}

// finalNodeCache holds the digests of final spans for reuse across appends.
// It is private to a single tree instance and never evicts: a final digest
// must remain reusable for the tree lifetime, and only final spans are ever
// inserted, so the cache holds fewer entries than there are leaves.
//
// The mutex exists because proof generation populates the cache, and proof
// queries are allowed to run concurrently with each other. Appends still
// require exclusive access to the whole tree.
type finalNodeCache struct {
	mu    sync.Mutex
	nodes map[spanKey][]byte
}

func newFinalNodeCache() *finalNodeCache {
	return &finalNodeCache{nodes: make(map[spanKey][]byte)}
}

func (c *finalNodeCache) get(start, size uint64) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	digest, ok := c.nodes[spanKey{start: start, size: size}]
	return digest, ok
}

// put records the digest for the final span [start, start+size). The first
// write wins; a final digest never changes and there is no way to replace it.
func (c *finalNodeCache) put(start, size uint64, digest []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := spanKey{start: start, size: size}
	if _, ok := c.nodes[key]; ok {
		return
	}
	c.nodes[key] = digest
}

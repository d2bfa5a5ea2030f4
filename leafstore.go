package seqtree

import "bytes"

// leafStore is the append only sequence of inserted items and their leaf
// digests. Indices are dense, 0 based, assigned in append order and never
// reused. There is no delete and no in-place update.
type leafStore struct {
	items   [][]byte
	digests [][]byte
}

func (s *leafStore) append(item, digest []byte) uint64 {
	s.items = append(s.items, item)
	s.digests = append(s.digests, digest)
	return uint64(len(s.items) - 1)
}

func (s *leafStore) item(i uint64) []byte { return s.items[i] }

func (s *leafStore) digest(i uint64) []byte { return s.digests[i] }

func (s *leafStore) count() uint64 { return uint64(len(s.items)) }

// find returns the index of the first leaf whose item equals item, in append
// order.
func (s *leafStore) find(item []byte) (uint64, bool) {
	for i := range s.items {
		if bytes.Equal(s.items[i], item) {
			return uint64(i), true
		}
	}
	return 0, false
}

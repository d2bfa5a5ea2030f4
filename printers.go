package seqtree

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// debug utilities

func proofPathStringer(path []ProofEntry, sep string) string {
	var spath []string

	for _, entry := range path {
		side := "L"
		if entry.Side == SideRight {
			side = "R"
		}
		spath = append(spath, fmt.Sprintf("%s:%s", side, hex.EncodeToString(entry.Sibling)))
	}
	return strings.Join(spath, sep)
}

// DumpTree renders the current shape of t, one range per line, indented by
// depth. Useful when checking shapes against hand drawn trees in tests.
func DumpTree(t *Tree) string {
	n := t.LeafCount()
	if n == 0 {
		return "(empty)"
	}

	hasher := t.factory()

	var b strings.Builder
	var walk func(start, end, depth uint64)
	walk = func(start, end, depth uint64) {
		fmt.Fprintf(&b, "%s[%d, %d) %s\n",
			strings.Repeat("  ", int(depth)), start, end,
			hex.EncodeToString(t.rangeDigest(hasher, start, end)))
		if end-start == 1 {
			return
		}
		k := splitPoint(end - start)
		walk(start, start+k, depth+1)
		walk(start+k, end, depth+1)
	}
	walk(0, n, 0)
	return b.String()
}

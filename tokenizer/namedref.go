package tokenizer

import (
	"sync"

	"github.com/wordring/gowordring/internal/constants"
	"github.com/wordring/gowordring/trie"
)

var (
	namedRefOnce sync.Once
	namedRefTrie *trie.Trie
	namedRefVals []string
)

// namedReferenceTrie lazily builds the package-level stable trie mapping
// every named character reference name to an index into namedRefVals,
// from constants.NamedEntities. Built once and reused for every document
// parsed in the process; entity names never change at runtime, so there
// is nothing to invalidate.
func namedReferenceTrie() (*trie.Trie, []string) {
	namedRefOnce.Do(func() {
		t := trie.New(trie.Stable)
		vals := make([]string, 0, len(constants.NamedEntities))
		for name, value := range constants.NamedEntities {
			idx := uint32(len(vals))
			vals = append(vals, value)
			// Entity names are never empty, so Insert cannot fail here.
			_ = t.Insert([]byte(name), idx)
		}
		namedRefTrie = t
		namedRefVals = vals
	})
	return namedRefTrie, namedRefVals
}

// matchNamedReference walks the named-reference trie over name looking
// for the longest prefix that is itself a registered entity name,
// recording a candidate every time the walk passes a terminator node. If
// legacyOnly is set, only terminators whose name is also in
// constants.LegacyEntities count as candidates (the no-semicolon rule).
//
// This is the trie's longest-prefix-with-rewind behavior applied directly
// through the public Iterator API: descend byte by byte, and remember the
// last position that was a complete match instead of requiring the full
// key to match exactly, the same pattern Trie.Lookup implements at the
// byte-array level.
func matchNamedReference(name string, legacyOnly bool) (value string, consumed int, ok bool) {
	t, vals := namedReferenceTrie()
	cur := t.Begin()
	bestLen := 0
	var bestVal string

	for i := 0; i < len(name); i++ {
		next := cur.ChildWithLabel(name[i])
		if next.IsEnd() {
			break
		}
		cur = next
		if cur.HasNull() {
			candidate := name[:i+1]
			if !legacyOnly || constants.LegacyEntities[candidate] {
				term := cur.ChildWithLabel(0)
				bestLen = i + 1
				bestVal = vals[t.Value(term)]
			}
		}
	}
	if bestLen == 0 {
		return "", 0, false
	}
	return bestVal, bestLen, true
}

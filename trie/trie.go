package trie

import (
	"unsafe"

	htmlerrors "github.com/wordring/gowordring/errors"
)

// ErrEmptyKey is returned by Insert for a zero-length key: the empty key
// can never be stored because the terminator edge always follows at
// least the root, and a key with no bytes would collide with the root's
// own would-be terminator in a way that makes "root holds a value"
// indistinguishable from "root is just a prefix". Erase simply reports
// false for an empty key instead, since there is nothing to remove.
var ErrEmptyKey error = &htmlerrors.TrieError{Op: "insert", Message: "key must not be empty"}

// Trie is a double-array associative map from byte-label key sequences to
// uint32 values, with a selectable mutation discipline (Stable or
// Compact, see stable.go/compact.go) and serialization (serialize.go).
type Trie struct {
	heap       *heap
	discipline Discipline
	values     map[int32]uint32
}

// New creates an empty Trie using the given mutation discipline.
func New(discipline Discipline) *Trie {
	return &Trie{
		heap:       newHeap(),
		discipline: discipline,
		values:     make(map[int32]uint32),
	}
}

func (t *Trie) valueAt(idx int32) uint32 { return t.values[idx] }

// descend walks from `from` through label without creating anything,
// returning the child index and whether it exists.
func (t *Trie) descend(from int32, label byte) (int32, bool) {
	base := t.heap.base(from)
	if base == 0 {
		return sentinelIndex, false
	}
	idx := base + int32(label)
	if idx <= sentinelIndex || idx >= t.heap.length() {
		return sentinelIndex, false
	}
	if t.heap.check(idx) != from {
		return sentinelIndex, false
	}
	return idx, true
}

// descendOrCreate walks from `from` through label, extending the trie
// with a new child if one doesn't already exist. On a label collision
// with an existing, differently-labeled child block, it relocates from's
// entire child block to a base that fits the old labels plus the new one.
func (t *Trie) descendOrCreate(from int32, label byte) int32 {
	if idx, ok := t.descend(from, label); ok {
		return idx
	}

	base := t.heap.base(from)
	if base == 0 {
		newBase := t.heap.allocate(from, []byte{label})
		t.heap.setBase(from, newBase)
		return newBase + int32(label)
	}

	target := base + int32(label)
	if target > sentinelIndex && target < t.heap.length() &&
		!t.heap.used(target) && !t.heap.isReserved(target) {
		t.heap.claimAt(target, from)
		return target
	}

	// Collision: relocate from's whole child block (old labels + the new
	// one) to a base where every one of them is free.
	existing := t.heap.children(from)
	labels := make([]byte, 0, len(existing)+1)
	for _, c := range existing {
		labels = append(labels, c.label)
	}
	labels = append(labels, label)

	newBase := t.heap.allocate(from, labels)
	for _, c := range existing {
		newIdx := newBase + int32(c.label)
		oldBase := t.heap.base(c.index)

		t.heap.reparentChildren(c.index, newIdx)
		t.heap.setBase(newIdx, oldBase)

		if v, ok := t.values[c.index]; ok {
			t.values[newIdx] = v
			delete(t.values, c.index)
		}
		t.vacate(c.index)
	}
	t.heap.setBase(from, newBase)
	return newBase + int32(label)
}

// Insert adds key (mapped to value) to the trie, overwriting any existing
// value for the same key.
func (t *Trie) Insert(key []byte, value uint32) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	cur := rootIndex
	for _, b := range key {
		cur = t.descendOrCreate(cur, b)
	}
	term := t.descendOrCreate(cur, 0)
	t.values[term] = value
	return nil
}

// Erase removes key from the trie, returning true if it was present. It
// frees the terminator node and then walks back up freeing any ancestor
// left with no remaining children, down to (but excluding) the root.
func (t *Trie) Erase(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	path := make([]int32, 0, len(key)+1)
	cur := rootIndex
	for _, b := range key {
		next, ok := t.descend(cur, b)
		if !ok {
			return false
		}
		path = append(path, cur)
		cur = next
	}
	term, ok := t.descend(cur, 0)
	if !ok {
		return false
	}
	delete(t.values, term)
	t.heap.free(term)
	path = append(path, cur)

	// Walk back up, freeing any node left with no children, stopping at
	// the root (which is never freed) or at the first node that still
	// has children.
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		if node == rootIndex {
			break
		}
		if len(t.heap.children(node)) > 0 {
			break
		}
		t.heap.setBase(node, 0)
		t.heap.free(node)
	}
	return true
}

// Lookup descends as far as possible matching key byte by byte, without
// requiring an exact or terminated match. It returns the deepest matched
// node and the number of key bytes consumed to reach it — used for
// longest-prefix matches such as named character references.
func (t *Trie) Lookup(key []byte) (last Iterator, consumed int) {
	cur := rootIndex
	i := 0
	for i < len(key) {
		next, ok := t.descend(cur, key[i])
		if !ok {
			break
		}
		cur = next
		i++
	}
	return Iterator{h: t.heap, idx: cur}, i
}

// Find returns an iterator at key's terminator node and true, iff key is
// present as a complete, exact entry in the trie.
func (t *Trie) Find(key []byte) (Iterator, bool) {
	if len(key) == 0 {
		return t.End(), false
	}
	last, consumed := t.Lookup(key)
	if consumed != len(key) {
		return t.End(), false
	}
	term, ok := t.descend(last.idx, 0)
	if !ok {
		return t.End(), false
	}
	return Iterator{h: t.heap, idx: term}, true
}

// Contains reports whether key is present as a complete entry.
func (t *Trie) Contains(key []byte) bool {
	_, ok := t.Find(key)
	return ok
}

// Value returns the value stored at a terminator iterator, such as one
// returned by Find. It returns 0 if it does not denote a null-labeled
// (terminator) node that holds a value.
func (t *Trie) Value(it Iterator) uint32 {
	return t.values[it.idx]
}

// HeapLen returns the current number of allocated heap slots, including
// the sentinel and root. Exposed for metrics/diagnostics, not part of the
// trie's logical contract.
func (t *Trie) HeapLen() int {
	return int(t.heap.length())
}

// LookupElements is the coefficient-aware counterpart of Lookup: key is a
// sequence of logical characters of uniform byte width (1, 2, or 4 bytes).
// It returns the deepest matched node and the number of whole *elements*
// consumed. Per the atomic-logical-character invariant, if the match
// stops partway through an element's byte group, the position is rewound
// to the start of that element so callers never observe a half-consumed
// character.
func LookupElements[T byte | uint16 | uint32 | rune](t *Trie, key []T) (last Iterator, consumed int) {
	var zero T
	coefficient := int(unsafe.Sizeof(zero))
	bytes := KeyBytes(key)
	lastIt, bytesConsumed := t.Lookup(bytes)
	elements := bytesConsumed / coefficient
	if elements == 0 {
		return t.Begin(), 0
	}
	if bytesConsumed%coefficient != 0 {
		// Partial element: rewind to the node at the last whole-element
		// boundary instead of returning a mid-character position.
		rewound, _ := t.Lookup(bytes[:elements*coefficient])
		return rewound, elements
	}
	return lastIt, elements
}

// KeyBytes decomposes a slice of fixed-width logical characters into a
// byte-label sequence, MSB first, generalizing the "coefficient =
// sizeof(element)" template parameter from the original C++ design to a
// single generic function covering 1, 2, and 4-byte elements.
func KeyBytes[T byte | uint16 | uint32 | rune](key []T) []byte {
	var zero T
	coefficient := int(unsafe.Sizeof(zero))
	out := make([]byte, 0, len(key)*coefficient)
	for _, el := range key {
		v := uint32(el)
		for shift := (coefficient - 1) * 8; shift >= 0; shift -= 8 {
			out = append(out, byte(v>>uint(shift)))
		}
	}
	return out
}

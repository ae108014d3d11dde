package trie

// Iterator is a lazy, single-pass traversal position over a trie's heap.
// Iterators are input-iterators: cheap to copy and compare, but they do
// not support random-access arithmetic.
//
// The zero Iterator is not valid; obtain one from Trie.Begin, Trie.End, or
// by navigating from an existing iterator.
type Iterator struct {
	h   *heap
	idx int32
}

// End returns an iterator denoting "no node" (a null index). It compares
// equal to any iterator that has navigated off the edge of the trie.
func (t *Trie) End() Iterator {
	return Iterator{h: t.heap, idx: sentinelIndex}
}

// Begin returns an iterator positioned at the root.
func (t *Trie) Begin() Iterator {
	return Iterator{h: t.heap, idx: rootIndex}
}

// IsEnd reports whether it denotes the null index.
func (it Iterator) IsEnd() bool {
	return it.idx == sentinelIndex || it.h == nil
}

// Equal reports whether it and other denote the same heap index under the
// same heap.
func (it Iterator) Equal(other Iterator) bool {
	return it.h == other.h && it.idx == other.idx
}

// Label returns the label byte on the edge leading to it's node (0 for the
// root, which has no incoming edge).
func (it Iterator) Label() byte {
	if it.IsEnd() || it.idx == rootIndex {
		return 0
	}
	parent := it.h.check(it.idx)
	return byte(it.idx - it.h.base(parent))
}

// HasChild reports whether it's node has any children at all (including a
// null-label value child).
func (it Iterator) HasChild() bool {
	if it.IsEnd() {
		return false
	}
	return len(it.h.children(it.idx)) > 0
}

// HasNull reports whether it's node has a null-label (terminator) child.
func (it Iterator) HasNull() bool {
	if it.IsEnd() {
		return false
	}
	base := it.h.base(it.idx)
	if base == 0 {
		return false
	}
	idx := base
	return idx > sentinelIndex && idx < it.h.length() && it.h.check(idx) == it.idx
}

// Child descends to the first child in label order (ascending, 0..255,
// where 0 is the null/terminator label). Returns End if it has no
// children.
func (it Iterator) Child() Iterator {
	if it.IsEnd() {
		return it
	}
	kids := it.h.children(it.idx)
	if len(kids) == 0 {
		return Iterator{h: it.h, idx: sentinelIndex}
	}
	return Iterator{h: it.h, idx: kids[0].index}
}

// ChildWithLabel descends via the specific label byte, or returns End if
// no such child exists.
func (it Iterator) ChildWithLabel(label byte) Iterator {
	if it.IsEnd() {
		return it
	}
	base := it.h.base(it.idx)
	if base == 0 {
		return Iterator{h: it.h, idx: sentinelIndex}
	}
	idx := base + int32(label)
	if idx <= sentinelIndex || idx >= it.h.length() || it.h.check(idx) != it.idx {
		return Iterator{h: it.h, idx: sentinelIndex}
	}
	return Iterator{h: it.h, idx: idx}
}

// HasSibling reports whether a next sibling (a higher-labeled child of the
// same parent) exists.
func (it Iterator) HasSibling() bool {
	return !it.Sibling().IsEnd()
}

// Sibling advances to the next sibling in label order (the next used
// child of the same parent with a strictly greater label), or End if
// it is the last.
func (it Iterator) Sibling() Iterator {
	if it.IsEnd() || it.idx == rootIndex {
		return Iterator{h: it.h, idx: sentinelIndex}
	}
	parent := it.h.check(it.idx)
	myLabel := it.Label()
	parentBase := it.h.base(parent)
	for l := int(myLabel) + 1; l < 256; l++ {
		idx := parentBase + int32(l)
		if idx <= sentinelIndex || idx >= it.h.length() {
			continue
		}
		if it.h.check(idx) == parent {
			return Iterator{h: it.h, idx: idx}
		}
	}
	return Iterator{h: it.h, idx: sentinelIndex}
}

// Parent ascends to the parent, or End if it is the root or already End.
func (it Iterator) Parent() Iterator {
	if it.IsEnd() || it.idx == rootIndex {
		return Iterator{h: it.h, idx: sentinelIndex}
	}
	return Iterator{h: it.h, idx: it.h.check(it.idx)}
}

// TreeIterator performs a lazy pre-order depth-first walk over a subtree,
// visiting the key (as accumulated label bytes) of every null-labeled
// (terminator) node in lexicographic byte order.
type TreeIterator struct {
	t     *Trie
	stack []treeFrame
}

type treeFrame struct {
	it    Iterator
	label []byte
}

// NewTreeIterator creates a pre-order walker rooted at start.
func (t *Trie) NewTreeIterator(start Iterator) *TreeIterator {
	return &TreeIterator{t: t, stack: []treeFrame{{it: start, label: nil}}}
}

// Next advances the walker to the next terminator node, returning the key
// bytes leading to it and the node's stored value. ok is false once the
// subtree is exhausted.
func (w *TreeIterator) Next() (key []byte, value uint32, ok bool) {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		kids := w.t.heap.children(top.it.idx)
		// Push in descending label order so the stack pops ascending.
		for i := len(kids) - 1; i >= 0; i-- {
			k := kids[i]
			child := Iterator{h: w.t.heap, idx: k.index}
			childLabel := append(append([]byte{}, top.label...), k.label)
			w.stack = append(w.stack, treeFrame{it: child, label: childLabel})
		}

		if top.it.idx != rootIndex && top.it.Label() == 0 {
			return top.label[:len(top.label)-1], w.t.valueAt(top.it.idx), true
		}
	}
	return nil, 0, false
}

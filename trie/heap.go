// Package trie implements a double-array trie: a compact, index-addressable
// associative map from byte-label strings to 32-bit values.
//
// The trie is split into three layers, mirroring the C++ original this
// package is modeled on: a packed BASE/CHECK node heap (this file and
// iterator.go), two mutation disciplines built on top of it (stable.go,
// compact.go), and a facade (trie.go) that decomposes multi-byte keys into
// label sequences and owns the value store.
package trie

// node is one (base, check) pair in the double-array heap.
type node struct {
	base  int32
	check int32
}

// Reserved heap indices. Index 0 is never a real trie node: it is the head
// of the freelist ring. Index 1 is always the root and is never linked into
// the freelist.
const (
	sentinelIndex int32 = 0
	rootIndex     int32 = 1
)

// heap is the packed BASE/CHECK array described by the trie's data model:
// for a used child c of parent p, base[p]+label = c and check[c] = p.
// Unused slots are threaded into a circular doubly linked freelist rooted
// at the sentinel: base[i] holds -(previous free index), check[i] holds
// -(next free index). A node is tombstoned (reserved, see stable.go) by
// removing it from that ring without handing it back — it stays
// unreachable until explicitly released.
type heap struct {
	nodes    []node
	reserved map[int32]struct{}
}

func newHeap() *heap {
	h := &heap{
		nodes:    make([]node, 2, 256),
		reserved: make(map[int32]struct{}),
	}
	// Empty ring: the sentinel points to itself.
	h.nodes[sentinelIndex] = node{base: 0, check: 0}
	// The root is permanently in use and never touches the freelist.
	h.nodes[rootIndex] = node{base: 0, check: 0}
	return h
}

func (h *heap) length() int32 { return int32(len(h.nodes)) }

// used reports whether i currently denotes a live trie node: the root
// always does, and otherwise a node is live iff check[i] > 0, naming its
// parent.
func (h *heap) used(i int32) bool {
	if i == rootIndex {
		return true
	}
	if i <= sentinelIndex || i >= h.length() {
		return false
	}
	return h.nodes[i].check > 0
}

func (h *heap) isReserved(i int32) bool {
	_, ok := h.reserved[i]
	return ok
}

func (h *heap) base(i int32) int32  { return h.nodes[i].base }
func (h *heap) check(i int32) int32 { return h.nodes[i].check }

func (h *heap) setBase(i, v int32)  { h.nodes[i].base = v }
func (h *heap) setCheck(i, v int32) { h.nodes[i].check = v }

// reparentChildren rewrites every used child of oldParent to point at
// newParent instead, without moving the children themselves. Used when a
// relocation moves oldParent to a new index (newParent) and the
// grandchildren's parent pointers must follow.
func (h *heap) reparentChildren(oldParent, newParent int32) {
	for _, c := range h.children(oldParent) {
		h.setCheck(c.index, newParent)
	}
}

func (h *heap) nextFree(i int32) int32 { return -h.nodes[i].check }
func (h *heap) prevFree(i int32) int32 { return -h.nodes[i].base }

// unlinkFree removes i (already a ring member) from the freelist ring.
func (h *heap) unlinkFree(i int32) {
	p := h.prevFree(i)
	n := h.nextFree(i)
	h.nodes[p].check = -n
	h.nodes[n].base = -p
}

// linkFreeTail inserts i at the tail of the freelist ring (just before the
// sentinel), so allocate's first-fit walk prefers lower indices first.
func (h *heap) linkFreeTail(i int32) {
	tail := h.prevFree(sentinelIndex)
	h.nodes[tail].check = -i
	h.nodes[i].base = -tail
	h.nodes[i].check = -sentinelIndex
	h.nodes[sentinelIndex].base = -i
}

// grow doubles the backing array (or grows to a minimum of 4 slots) and
// threads the newly added slots onto the freelist tail in index order.
// This is the only operation in the heap that can fail (soft failure per
// spec §4.1): it never does, since append-based growth cannot run out of
// Go heap without the process itself failing, but the monotonic-doubling
// policy is kept explicit here for auditability.
func (h *heap) grow() {
	oldLen := h.length()
	newLen := oldLen * 2
	if newLen < 4 {
		newLen = 4
	}
	grown := make([]node, newLen)
	copy(grown, h.nodes)
	h.nodes = grown
	for i := oldLen; i < newLen; i++ {
		h.linkFreeTail(i)
	}
}

// fits reports whether base+label is addressable and free for every label
// in labels. It never grows the heap; callers grow and retry.
func (h *heap) fits(base int32, labels []byte) bool {
	if base < 1 {
		return false
	}
	for _, l := range labels {
		idx := base + int32(l)
		if idx >= h.length() {
			return false
		}
		if h.used(idx) || h.isReserved(idx) {
			return false
		}
	}
	return true
}

// allocate finds a base such that base+label is free for every label in
// labels, claims those slots for parent (sets check[base+label] = parent),
// and returns base. It walks the freelist first-fit, preferring the
// lowest-indexed candidate, and grows the heap if no fit exists.
func (h *heap) allocate(parent int32, labels []byte) int32 {
	if len(labels) == 0 {
		panic("trie: allocate called with no labels")
	}
	for {
		c := h.nextFree(sentinelIndex)
		for c != sentinelIndex {
			base := c - int32(labels[0])
			if h.fits(base, labels) {
				for _, l := range labels {
					idx := base + int32(l)
					h.unlinkFree(idx)
					h.nodes[idx] = node{base: 0, check: parent}
				}
				return base
			}
			c = h.nextFree(c)
		}
		h.grow()
	}
}

// claimAt claims a single, already-known-free slot for parent without a
// freelist search. Used when base[parent] is already anchored and the
// target slot for a new label happens to be free (the common case: no
// collision).
func (h *heap) claimAt(idx, parent int32) {
	h.unlinkFree(idx)
	h.nodes[idx] = node{base: 0, check: parent}
}

// free returns i to the freelist, available for reuse by any future
// allocate call. Used directly by erase, and by the compact discipline's
// relocation path.
func (h *heap) free(i int32) {
	delete(h.reserved, i)
	h.linkFreeTail(i)
}

// reserve removes i from circulation without linking it into the
// freelist: the slot is neither used nor available to allocate. This is
// how the stable discipline preserves the index identity of everything
// else in the heap when it must vacate a relocated slot — see stable.go.
func (h *heap) reserve(i int32) {
	h.nodes[i] = node{base: 0, check: 0}
	h.reserved[i] = struct{}{}
}

// release returns a previously reserved (tombstoned) slot to the
// freelist. Not wired to any automatic path; exists so a caller holding a
// stable trie can explicitly compact it if it chooses to give up index
// stability for the reserved slots.
func (h *heap) release(i int32) {
	if !h.isReserved(i) {
		return
	}
	delete(h.reserved, i)
	h.linkFreeTail(i)
}

// children returns the (label, index) pairs currently claimed under
// parent, in label order. Parent's base must already be set; if parent
// has no anchored base yet, children returns nil.
func (h *heap) children(parent int32) []labelChild {
	base := h.base(parent)
	if base == 0 {
		// allocate() never returns base==0 (it requires base >= 1, since
		// slot 0 is the freelist sentinel and can never be claimed), so
		// base==0 unambiguously means parent has no children yet.
		return nil
	}
	var out []labelChild
	for l := 0; l < 256; l++ {
		idx := base + int32(l)
		if idx <= sentinelIndex || idx >= h.length() {
			continue
		}
		if h.nodes[idx].check == parent {
			out = append(out, labelChild{label: byte(l), index: idx})
		}
	}
	return out
}

type labelChild struct {
	label byte
	index int32
}

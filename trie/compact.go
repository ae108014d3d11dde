package trie

// Release returns a slot previously tombstoned by a Stable-discipline
// relocation back to the freelist, trading that slot's index stability
// for density. It is a no-op if idx is not currently reserved.
//
// Compact-discipline tries never produce reserved slots (their relocations
// free immediately), so calling Release on one is always a no-op.
func (t *Trie) Release(idx int32) {
	t.heap.release(idx)
}

// Discipline reports which mutation discipline t was constructed with.
func (t *Trie) Discipline() Discipline {
	return t.discipline
}

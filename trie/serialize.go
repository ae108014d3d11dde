package trie

import (
	"encoding/binary"
	"io"

	htmlerrors "github.com/wordring/gowordring/errors"
)

// magic is the 8-byte header every serialized trie begins with.
var magic = [8]byte{0x00, 0x00, 0xFF, 0xFF, 0x00, 0xFF, 0x00, 0xFF}

// ErrBadMagic is returned by Deserialize when the header doesn't match,
// the stream ends before a full header, or fewer than two nodes follow
// it. A stream truncated mid-node yields io.ErrUnexpectedEOF instead.
var ErrBadMagic error = &htmlerrors.CorruptionError{Index: -1, Message: "serialization header mismatch"}

// Serialize writes the trie's heap to w in the bit-exact format: the
// 8-byte magic header, then every node in index order as a big-endian
// (base, check) int32 pair, through EOF. The root at index 1 and the
// sentinel at index 0 are written verbatim like any other node.
//
// Values are deliberately not part of this format — per the trie's data
// model, the value store is a parallel structure "carried externally" by
// the caller, keyed by terminator node index (see Find, Value). A caller
// that needs to persist values alongside the heap should do so in its own
// format, associating them by the same indices Find returns after a
// Deserialize.
func (t *Trie) Serialize(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	buf := make([]byte, 8)
	for _, n := range t.heap.nodes {
		binary.BigEndian.PutUint32(buf[0:4], uint32(n.base))
		binary.BigEndian.PutUint32(buf[4:8], uint32(n.check))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a trie previously written by Serialize, replacing t's
// heap and discarding any in-memory value store t may have held — callers
// that need values back must re-derive them from their own source using
// the indices Find/Lookup return afterward.
//
// On a header mismatch or a stream truncated mid-node, Deserialize leaves
// t as a fresh, empty trie (§7 kind 5: a serialization mismatch never
// leaves a partially loaded trie behind) and returns a non-nil error.
func (t *Trie) Deserialize(r io.Reader) error {
	empty := func() {
		t.heap = newHeap()
		t.values = make(map[int32]uint32)
	}

	var got [8]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		empty()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrBadMagic
		}
		return err
	}
	if got != magic {
		empty()
		return ErrBadMagic
	}

	var nodes []node
	buf := make([]byte, 8)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			empty()
			return err
		}
		if err != nil {
			empty()
			return err
		}
		nodes = append(nodes, node{
			base:  int32(binary.BigEndian.Uint32(buf[0:4])),
			check: int32(binary.BigEndian.Uint32(buf[4:8])),
		})
	}

	if len(nodes) < 2 {
		empty()
		return ErrBadMagic
	}

	h := &heap{nodes: nodes, reserved: make(map[int32]struct{})}
	h.rebuildFreelist()
	t.heap = h
	t.values = make(map[int32]uint32)
	return nil
}

// rebuildFreelist re-threads every slot that the loaded node array shows
// as unused into a fresh freelist ring, in ascending index order. The
// serialized format carries no freelist (it isn't part of the node
// array), and it carries no tombstone/reserved marker either, so a slot
// that was reserved (stable-discipline tombstoned) before serialization
// comes back as an ordinary free slot after a round trip — consistent
// with "deserialize(serialize(T)) == T" being node-array equality, not
// equality of in-memory bookkeeping that was never part of the format.
func (h *heap) rebuildFreelist() {
	h.nodes[sentinelIndex] = node{base: 0, check: 0}
	for i := int32(2); i < h.length(); i++ {
		if h.nodes[i].check <= 0 {
			h.nodes[i] = node{base: 0, check: 0}
			h.linkFreeTail(i)
		}
	}
}

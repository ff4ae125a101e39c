// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package list implements a Link-chained singly linked list as a
// kelvin.Compound, annotated with kelvin.Cardinality so that the length
// is known without visiting the cells and Nth stops at the n-th cell:
// it descends through each cell in front of it, and none behind it.
package list

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/kelvin-tree/kelvin"
)

// Node is one cons cell of a list: a leaf and the rest of the list,
// reached through a Link so the tail can be lazily materialized from a
// Backend. A nil *Node is the empty list.
//
// Node's two child slots are, in order: the leaf itself, and the tail
// (a Node slot when non-empty, EndOfNode when this is the last cell)
// — an AllLeaves walk over a list therefore visits
// every element in order, descending one Into step per remaining
// element, exactly as a flat slice iteration would, just lazily.
type Node[L any] struct {
	leaf L
	tail *kelvin.Link[*Node[L], kelvin.Cardinality[L], L]
}

// Prepend returns a new list with leaf as its head and rest as its tail.
// rest may be nil (producing a single-element list).
func Prepend[L any](leaf L, rest *Node[L]) *Node[L] {
	n := &Node[L]{leaf: leaf}
	if rest != nil {
		n.tail = kelvin.NewLink[*Node[L], kelvin.Cardinality[L], L](rest)
	}
	return n
}

// Child implements kelvin.Compound.
func (n *Node[L]) Child(offset int) kelvin.Child[*Node[L], kelvin.Cardinality[L], L] {
	if n == nil {
		return kelvin.EndSlot[*Node[L], kelvin.Cardinality[L], L]()
	}
	switch offset {
	case 0:
		return kelvin.LeafSlot[*Node[L], kelvin.Cardinality[L], L](&n.leaf)
	case 1:
		if n.tail == nil {
			return kelvin.EndSlot[*Node[L], kelvin.Cardinality[L], L]()
		}
		return kelvin.NodeSlot[*Node[L], kelvin.Cardinality[L], L](n.tail)
	default:
		return kelvin.EndSlot[*Node[L], kelvin.Cardinality[L], L]()
	}
}

// ChildMut implements kelvin.Compound.
func (n *Node[L]) ChildMut(offset int) kelvin.ChildMut[*Node[L], kelvin.Cardinality[L], L] {
	if n == nil {
		return kelvin.EndSlotMut[*Node[L], kelvin.Cardinality[L], L]()
	}
	switch offset {
	case 0:
		return kelvin.LeafSlotMut[*Node[L], kelvin.Cardinality[L], L](&n.leaf)
	case 1:
		if n.tail == nil {
			return kelvin.EndSlotMut[*Node[L], kelvin.Cardinality[L], L]()
		}
		return kelvin.NodeSlotMut[*Node[L], kelvin.Cardinality[L], L](n.tail)
	default:
		return kelvin.EndSlotMut[*Node[L], kelvin.Cardinality[L], L]()
	}
}

// Len reports the list's length via its Cardinality annotation, without
// visiting a single leaf.
func Len[L any](n *Node[L]) uint64 {
	return uint64(kelvin.CombineNode[*Node[L], kelvin.Cardinality[L], L](n))
}

// wireNode is Node's on-disk shape: the leaf verbatim, and a reference
// to the tail's already-published Identifier and cached Cardinality
// (rather than the tail itself), mirroring how
// ethereum-go-verkle/encoding.go's internal-node encoding stores 32-byte
// child hashes rather than inlining child subtrees.
type wireNode[L any] struct {
	Leaf            L
	HasTail         bool
	TailID          kelvin.Identifier
	TailCardinality uint64
}

// Marshal implements kelvin.Storable. The tail, if present, must already
// have a published Identifier (kelvin.PersistTree guarantees this by
// persisting children before their parent).
func (n *Node[L]) Marshal() ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("list: cannot marshal an empty list")
	}
	w := wireNode[L]{Leaf: n.leaf}
	if n.tail != nil {
		id, ok := n.tail.Identifier()
		if !ok {
			return nil, fmt.Errorf("list: tail link has not been published")
		}
		w.HasTail = true
		w.TailID = id
		w.TailCardinality = uint64(n.tail.Annotation())
	}
	return rlp.EncodeToBytes(&w)
}

func decode[L any](b []byte) (*Node[L], error) {
	var w wireNode[L]
	if err := rlp.DecodeBytes(b, &w); err != nil {
		return nil, err
	}
	n := &Node[L]{leaf: w.Leaf}
	if w.HasTail {
		pid := kelvin.PersistedId[kelvin.Cardinality[L]]{
			ID:         w.TailID,
			Annotation: kelvin.Cardinality[L](w.TailCardinality),
		}
		n.tail = kelvin.Restore[*Node[L], kelvin.Cardinality[L], L](pid, decode[L])
	}
	return n, nil
}

// Persist writes head and every cell behind it to backend, depth first,
// and returns a durable pointer to the whole list.
func Persist[L any](head *Node[L], backend kelvin.Backend) (kelvin.PersistedId[kelvin.Cardinality[L]], error) {
	return kelvin.PersistTree[*Node[L], kelvin.Cardinality[L], L](head, backend)
}

// Restore opens a PersistedId produced by Persist as a lazily-loading
// Link: no bytes are read until the list is actually walked.
func Restore[L any](pid kelvin.PersistedId[kelvin.Cardinality[L]]) *kelvin.Link[*Node[L], kelvin.Cardinality[L], L] {
	return kelvin.Restore[*Node[L], kelvin.Cardinality[L], L](pid, decode[L])
}

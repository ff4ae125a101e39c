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

// Package bintree implements a small fixed-arity (2-ary) search tree as
// a kelvin.Compound, annotated with kelvin.Max so that a keyed search
// can prune whole subtrees that cannot contain the key being sought.
// Leaves carry their own key (kelvin.Keyed); bintree does not itself
// enforce binary-search-tree ordering on insert — callers build the
// shape, the annotation is what makes search over that shape fast.
package bintree

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/kelvin-tree/kelvin"
)

// Node is an internal node or leaf holder of a bintree: it carries at
// most one leaf and at most two children. Unused slots are Empty.
//
// The child order is [leaf, left, right, EndOfNode]: a leaf at this
// node (if any) always sorts before its children in walker order,
// matching how Max's left-to-right Combine fold treats "this node's own
// key" as encountered before its descendants.
type Node[K kelvin.Ordered[K], L kelvin.Keyed[K]] struct {
	leaf        *L
	left, right *kelvin.Link[*Node[K, L], kelvin.Max[K, L], L]
}

// Leaf builds a single-leaf node with no children.
func Leaf[K kelvin.Ordered[K], L kelvin.Keyed[K]](l L) *Node[K, L] {
	return &Node[K, L]{leaf: &l}
}

// WithChildren returns a copy of n with left and/or right attached.
// Either may be nil.
func WithChildren[K kelvin.Ordered[K], L kelvin.Keyed[K]](n *Node[K, L], left, right *Node[K, L]) *Node[K, L] {
	out := &Node[K, L]{leaf: n.leaf}
	if left != nil {
		out.left = kelvin.NewLink[*Node[K, L], kelvin.Max[K, L], L](left)
	}
	if right != nil {
		out.right = kelvin.NewLink[*Node[K, L], kelvin.Max[K, L], L](right)
	}
	return out
}

// Child implements kelvin.Compound.
func (n *Node[K, L]) Child(offset int) kelvin.Child[*Node[K, L], kelvin.Max[K, L], L] {
	if n == nil {
		return kelvin.EndSlot[*Node[K, L], kelvin.Max[K, L], L]()
	}
	switch offset {
	case 0:
		if n.leaf == nil {
			return kelvin.EmptySlot[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.LeafSlot[*Node[K, L], kelvin.Max[K, L], L](n.leaf)
	case 1:
		if n.left == nil {
			return kelvin.EmptySlot[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.NodeSlot[*Node[K, L], kelvin.Max[K, L], L](n.left)
	case 2:
		if n.right == nil {
			return kelvin.EmptySlot[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.NodeSlot[*Node[K, L], kelvin.Max[K, L], L](n.right)
	default:
		return kelvin.EndSlot[*Node[K, L], kelvin.Max[K, L], L]()
	}
}

// ChildMut implements kelvin.Compound.
func (n *Node[K, L]) ChildMut(offset int) kelvin.ChildMut[*Node[K, L], kelvin.Max[K, L], L] {
	if n == nil {
		return kelvin.EndSlotMut[*Node[K, L], kelvin.Max[K, L], L]()
	}
	switch offset {
	case 0:
		if n.leaf == nil {
			return kelvin.EmptySlotMut[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.LeafSlotMut[*Node[K, L], kelvin.Max[K, L], L](n.leaf)
	case 1:
		if n.left == nil {
			return kelvin.EmptySlotMut[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.NodeSlotMut[*Node[K, L], kelvin.Max[K, L], L](n.left)
	case 2:
		if n.right == nil {
			return kelvin.EmptySlotMut[*Node[K, L], kelvin.Max[K, L], L]()
		}
		return kelvin.NodeSlotMut[*Node[K, L], kelvin.Max[K, L], L](n.right)
	default:
		return kelvin.EndSlotMut[*Node[K, L], kelvin.Max[K, L], L]()
	}
}

// Find locates the leaf with key k, pruning by each visited node's
// cached Max annotation.
func Find[K kelvin.Ordered[K], L kelvin.Keyed[K]](root *Node[K, L], k K) (*L, bool, error) {
	branch, err := kelvin.FindKey[*Node[K, L], kelvin.Max[K, L], K, L](root, k)
	if err != nil {
		return nil, false, err
	}
	if branch == nil {
		var zero L
		return &zero, false, nil
	}
	return branch.Leaf(), true, nil
}

// wireNode is Node's on-disk shape.
type wireNode[K kelvin.Ordered[K], L kelvin.Keyed[K]] struct {
	HasLeaf bool
	Leaf    L

	HasLeft    bool
	LeftID     kelvin.Identifier
	LeftMaxKey K
	LeftHasMax bool

	HasRight    bool
	RightID     kelvin.Identifier
	RightMaxKey K
	RightHasMax bool
}

// Marshal implements kelvin.Storable. Both children, if present, must
// already have published Identifiers.
func (n *Node[K, L]) Marshal() ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("bintree: cannot marshal a nil node")
	}
	var w wireNode[K, L]
	if n.leaf != nil {
		w.HasLeaf = true
		w.Leaf = *n.leaf
	}
	if n.left != nil {
		id, ok := n.left.Identifier()
		if !ok {
			return nil, fmt.Errorf("bintree: left link has not been published")
		}
		w.HasLeft = true
		w.LeftID = id
		if k, has := n.left.Annotation().Key(); has {
			w.LeftMaxKey, w.LeftHasMax = k, true
		}
	}
	if n.right != nil {
		id, ok := n.right.Identifier()
		if !ok {
			return nil, fmt.Errorf("bintree: right link has not been published")
		}
		w.HasRight = true
		w.RightID = id
		if k, has := n.right.Annotation().Key(); has {
			w.RightMaxKey, w.RightHasMax = k, true
		}
	}
	return rlp.EncodeToBytes(&w)
}

func decode[K kelvin.Ordered[K], L kelvin.Keyed[K]](b []byte) (*Node[K, L], error) {
	var w wireNode[K, L]
	if err := rlp.DecodeBytes(b, &w); err != nil {
		return nil, err
	}
	n := &Node[K, L]{}
	if w.HasLeaf {
		leaf := w.Leaf
		n.leaf = &leaf
	}
	if w.HasLeft {
		a := kelvin.Max[K, L]{}
		if w.LeftHasMax {
			a = kelvin.MaxOfKey[K, L](w.LeftMaxKey)
		}
		pid := kelvin.PersistedId[kelvin.Max[K, L]]{ID: w.LeftID, Annotation: a}
		n.left = kelvin.Restore[*Node[K, L], kelvin.Max[K, L], L](pid, decode[K, L])
	}
	if w.HasRight {
		a := kelvin.Max[K, L]{}
		if w.RightHasMax {
			a = kelvin.MaxOfKey[K, L](w.RightMaxKey)
		}
		pid := kelvin.PersistedId[kelvin.Max[K, L]]{ID: w.RightID, Annotation: a}
		n.right = kelvin.Restore[*Node[K, L], kelvin.Max[K, L], L](pid, decode[K, L])
	}
	return n, nil
}

// Persist writes root and every node behind it to backend, depth first.
func Persist[K kelvin.Ordered[K], L kelvin.Keyed[K]](root *Node[K, L], backend kelvin.Backend) (kelvin.PersistedId[kelvin.Max[K, L]], error) {
	return kelvin.PersistTree[*Node[K, L], kelvin.Max[K, L], L](root, backend)
}

// Restore opens a PersistedId produced by Persist as a lazily-loading Link.
func Restore[K kelvin.Ordered[K], L kelvin.Keyed[K]](pid kelvin.PersistedId[kelvin.Max[K, L]]) *kelvin.Link[*Node[K, L], kelvin.Max[K, L], L] {
	return kelvin.Restore[*Node[K, L], kelvin.Max[K, L], L](pid, decode[K, L])
}

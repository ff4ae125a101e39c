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

package kelvin

// Kind tags which of the four child-slot variants a Child/ChildMut holds.
type Kind uint8

const (
	// KindEmpty is a vacant position: not counted, walkers skip it.
	KindEmpty Kind = iota
	// KindEndOfNode marks offsets at or beyond this node's child count.
	KindEndOfNode
	// KindLeaf holds a leaf value directly.
	KindLeaf
	// KindNode holds a nested subtree behind a Link.
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindEndOfNode:
		return "EndOfNode"
	case KindLeaf:
		return "Leaf"
	case KindNode:
		return "Node"
	default:
		return "Kind(?)"
	}
}

// Child is the read-only view of a child slot at some offset of a node.
// Exactly one of Leaf or Link is non-nil, matching Kind.
type Child[C any, A any, L any] struct {
	Kind Kind
	Leaf *L
	Link *Link[C, A, L]
}

// ChildMut is the mutable view of a child slot. It carries the same
// payload as Child; the distinction is one of calling convention (a
// Compound hands out ChildMut only from a pointer-receiver method),
// mirroring the Rust source's separate child/child_mut accessors even
// though Go does not enforce the borrow distinction at the type level.
type ChildMut[C any, A any, L any] struct {
	Kind Kind
	Leaf *L
	Link *Link[C, A, L]
}

// LeafSlot, NodeSlot, EmptySlot and EndSlot construct Child/ChildMut
// values; Compound implementations build their slots with these rather
// than populating the struct literal by hand, so a future field added to
// Child/ChildMut does not need to be repeated at every call site.
func LeafSlot[C any, A any, L any](l *L) Child[C, A, L] {
	return Child[C, A, L]{Kind: KindLeaf, Leaf: l}
}

func NodeSlot[C any, A any, L any](lk *Link[C, A, L]) Child[C, A, L] {
	return Child[C, A, L]{Kind: KindNode, Link: lk}
}

func EmptySlot[C any, A any, L any]() Child[C, A, L] {
	return Child[C, A, L]{Kind: KindEmpty}
}

func EndSlot[C any, A any, L any]() Child[C, A, L] {
	return Child[C, A, L]{Kind: KindEndOfNode}
}

func LeafSlotMut[C any, A any, L any](l *L) ChildMut[C, A, L] {
	return ChildMut[C, A, L]{Kind: KindLeaf, Leaf: l}
}

func NodeSlotMut[C any, A any, L any](lk *Link[C, A, L]) ChildMut[C, A, L] {
	return ChildMut[C, A, L]{Kind: KindNode, Link: lk}
}

func EmptySlotMut[C any, A any, L any]() ChildMut[C, A, L] {
	return ChildMut[C, A, L]{Kind: KindEmpty}
}

func EndSlotMut[C any, A any, L any]() ChildMut[C, A, L] {
	return ChildMut[C, A, L]{Kind: KindEndOfNode}
}

// Compound is the shape a user type exposes to become a node in a kelvin
// tree: enumerable children at dense-enough integer offsets, in a
// well-defined order, terminated by KindEndOfNode. For all i beyond the
// child count both accessors must return an EndOfNode slot, and repeated
// calls with the same i (absent intervening mutation) must agree.
type Compound[C any, A any, L any] interface {
	Child(offset int) Child[C, A, L]
	ChildMut(offset int) ChildMut[C, A, L]
}

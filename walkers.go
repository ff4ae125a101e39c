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

// AllLeaves walks every leaf in offset order: the first Leaf slot it
// sees is Found, the first Node slot is descended Into, Empty slots are
// skipped, and EndOfNode means Advance. It carries no state of its own
// beyond the resume offset Branch itself threads through Walk's `from`
// parameter, so a zero AllLeaves{} can seed a fresh traversal or be
// handed straight to iteration — First is exactly that, by name.
type AllLeaves[C Compound[C, A, L], A Annotation[A, L], L any] struct{}

func (AllLeaves[C, A, L]) Walk(v View[C, A, L], from int) Step {
	for i := from; ; i++ {
		switch ch := v.Child(i); ch.Kind {
		case KindLeaf:
			return Found(i)
		case KindNode:
			return Into(i)
		case KindEmpty:
			continue
		case KindEndOfNode:
			return Advance()
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

// First returns a fresh AllLeaves: the spec's "shorthand for a walker
// that starts from scratch". Since AllLeaves is stateless there is
// nothing to reset; First exists so call sites can say what they mean.
func First[C Compound[C, A, L], A Annotation[A, L], L any]() AllLeaves[C, A, L] {
	return AllLeaves[C, A, L]{}
}

// Offset locates the n-th leaf (0-indexed) in walker order, using the
// Cardinality annotation to skip whole subtrees without descending into
// them. It is stateful across the levels of a single walk: Remaining is
// decremented as leaves and whole subtrees are skipped. Reaching
// EndOfNode at any level returns Abort rather than Advance, so a walk
// that runs past the last leaf ends there and Offset never moves on to
// a later sibling of the node it is scanning.
type Offset[C Compound[C, A, L], A interface {
	Annotation[A, L]
	Cardinalitied[L]
}, L any] struct {
	Remaining uint64
}

// NewOffset builds an Offset walker that will locate the n-th leaf.
func NewOffset[C Compound[C, A, L], A interface {
	Annotation[A, L]
	Cardinalitied[L]
}, L any](n uint64) *Offset[C, A, L] {
	return &Offset[C, A, L]{Remaining: n}
}

func (o *Offset[C, A, L]) Walk(v View[C, A, L], from int) Step {
	for i := from; ; i++ {
		switch ch := v.Child(i); ch.Kind {
		case KindLeaf:
			if o.Remaining == 0 {
				return Found(i)
			}
			o.Remaining--
		case KindNode:
			k := uint64(ch.Link.Annotation().CardinalityOf())
			if k <= o.Remaining {
				o.Remaining -= k
				continue
			}
			return Into(i)
		case KindEmpty:
			continue
		case KindEndOfNode:
			return Abort()
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

// KeyedSearch searches for the leaf whose Key() equals k, using a
// Max[K] annotation to prune: a Node child is only descended into when
// its cached maximum key is >= k, and the first such child (in offset
// order) is taken, matching Max's left-to-right, non-commutative fold.
// Equality is derived from Ordered rather than requiring K comparable:
// a == b iff neither is Less than the other.
type KeyedSearch[K Ordered[K], C Compound[C, A, L], A interface {
	Annotation[A, L]
	MaxKeyed[K, L]
}, L Keyed[K]] struct {
	Key K
}

// NewKeyedSearch builds a walker that locates the leaf with key == k.
func NewKeyedSearch[C Compound[C, A, L], A interface {
	Annotation[A, L]
	MaxKeyed[K, L]
}, K Ordered[K], L Keyed[K]](k K) *KeyedSearch[K, C, A, L] {
	return &KeyedSearch[K, C, A, L]{Key: k}
}

func (w *KeyedSearch[K, C, A, L]) Walk(v View[C, A, L], from int) Step {
	for i := from; ; i++ {
		switch ch := v.Child(i); ch.Kind {
		case KindLeaf:
			key := (*ch.Leaf).Key()
			if !key.Less(w.Key) && !w.Key.Less(key) {
				return Found(i)
			}
			continue
		case KindNode:
			if ch.Link.Annotation().MaxOf().GreaterOrEqual(w.Key) {
				return Into(i)
			}
			continue
		case KindEmpty:
			continue
		case KindEndOfNode:
			return Advance()
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

// Member finds the first leaf satisfying Pred, in offset order. Unlike
// KeyedSearch it has no annotation to prune with, so it descends into
// every Node slot unconditionally — a linear scan, useful when no
// ordering invariant is available to search by.
type Member[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	Pred func(*L) bool
}

// NewMember builds a walker that locates the first leaf for which pred
// returns true.
func NewMember[C Compound[C, A, L], A Annotation[A, L], L any](pred func(*L) bool) *Member[C, A, L] {
	return &Member[C, A, L]{Pred: pred}
}

func (w *Member[C, A, L]) Walk(v View[C, A, L], from int) Step {
	for i := from; ; i++ {
		switch ch := v.Child(i); ch.Kind {
		case KindLeaf:
			if w.Pred(ch.Leaf) {
				return Found(i)
			}
			continue
		case KindNode:
			return Into(i)
		case KindEmpty:
			continue
		case KindEndOfNode:
			return Advance()
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

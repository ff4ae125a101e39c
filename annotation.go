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

// Annotation is a summary value over a (possibly empty) multiset of
// leaves of type L, automatically maintained by Link and Branch.
//
// FromLeaf and Combine are value-receiver methods so that a zero value of
// A can stand in for both the identity element of the combine monoid
// (the annotation of an empty sequence) and the "static" from-leaf
// conversion, the same way a zero-valued sync.Mutex or bytes.Buffer is
// immediately useful in Go without explicit construction.
//
// Combine must be associative: Combine is only ever called left-to-right
// in offset order by CombineNode, so implementations that depend on
// order (a "first leaf seen under key K", say) may rely on that.
// Combine need not be commutative.
type Annotation[A any, L any] interface {
	FromLeaf(leaf *L) A
	Combine(other A) A
}

// CombineNode derives a node's annotation by folding the annotations of
// its child slots left to right: a Leaf slot contributes FromLeaf(leaf),
// a Node slot contributes its Link's cached annotation, Empty and
// EndOfNode slots are skipped. The zero value of A seeds the fold and is
// the annotation of a childless node.
func CombineNode[C Compound[C, A, L], A Annotation[A, L], L any](c C) A {
	var acc A
	for i := 0; ; i++ {
		switch ch := c.Child(i); ch.Kind {
		case KindEndOfNode:
			return acc
		case KindEmpty:
			continue
		case KindLeaf:
			var zero A
			acc = acc.Combine(zero.FromLeaf(ch.Leaf))
		case KindNode:
			acc = acc.Combine(ch.Link.Annotation())
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

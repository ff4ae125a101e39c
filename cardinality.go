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

// Cardinality[L] counts leaves of type L. Its zero value, 0, is the
// annotation of an empty sequence and the identity of Combine.
//
// Go has no generic methods (a method cannot carry type parameters the
// receiver doesn't already have), so unlike the source design's single
// Cardinality type usable under any leaf type, kelvin's Cardinality is
// itself parameterized by L: Annotation[A, L]'s FromLeaf(*L) A has to be
// a concrete, non-generic method, which forces A to close over L.
type Cardinality[L any] uint64

// FromLeaf counts any leaf as exactly one.
func (c Cardinality[L]) FromLeaf(*L) Cardinality[L] { return 1 }

// Combine sums two cardinalities.
func (c Cardinality[L]) Combine(other Cardinality[L]) Cardinality[L] { return c + other }

// CardinalityOf satisfies Cardinalitied directly.
func (c Cardinality[L]) CardinalityOf() Cardinality[L] { return c }

// Cardinalitied is the capability Nth requires of an annotation: the
// ability to borrow its leaf count. It plays the role the source
// design's `A: Borrow<Cardinality>` trait bound plays — a blanket-impl
// style extension point expressed as an interface constraint, since Go
// has no borrow traits or specialization.
type Cardinalitied[L any] interface {
	CardinalityOf() Cardinality[L]
}

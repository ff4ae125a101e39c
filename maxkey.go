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

// Ordered is the total-order capability a Max key must provide. It is
// expressed as a self-referential method rather than constraints.Ordered
// so that keys need not be one of Go's native ordered primitive types —
// any type the user wants to search on (a multi-field struct, say) can
// supply its own Less.
type Ordered[K any] interface {
	Less(other K) bool
}

// Keyed extracts the sort key a Max annotation summarizes from a leaf.
type Keyed[K any] interface {
	Key() K
}

// Max is one of NegativeInfinity (the zero value, hasValue == false) or
// Maximum(key). Combine takes the pointwise maximum under K's total
// order; NegativeInfinity is its identity, matching the zero value of
// Max being immediately the correct "empty sequence" annotation.
type Max[K Ordered[K], L Keyed[K]] struct {
	hasValue bool
	key      K
}

// FromLeaf extracts the leaf's key.
func (m Max[K, L]) FromLeaf(leaf *L) Max[K, L] {
	return Max[K, L]{hasValue: true, key: (*leaf).Key()}
}

// Combine keeps the larger of the two keys; NegativeInfinity loses to
// anything and is the identity.
func (m Max[K, L]) Combine(other Max[K, L]) Max[K, L] {
	switch {
	case !m.hasValue:
		return other
	case !other.hasValue:
		return m
	case m.key.Less(other.key):
		return other
	default:
		return m
	}
}

// MaxOfKey builds a Max directly from a key, for callers that need to
// reconstruct a cached annotation without a leaf value in hand — a
// persistence layer restoring a node's cached Max from its wire
// encoding, say, where only the key (not a whole L) was serialized.
func MaxOfKey[K Ordered[K], L Keyed[K]](k K) Max[K, L] {
	return Max[K, L]{hasValue: true, key: k}
}

// Key reports the maximum key and whether one exists (false for
// NegativeInfinity, i.e. an empty subtree).
func (m Max[K, L]) Key() (K, bool) { return m.key, m.hasValue }

// GreaterOrEqual reports whether this Max is NOT strictly less than k —
// i.e. whether a subtree carrying this Max could contain a leaf whose
// key is >= k. Keyed walkers use this, comparing the annotation against
// a raw K, to decide which child to descend into.
func (m Max[K, L]) GreaterOrEqual(k K) bool {
	if !m.hasValue {
		return false
	}
	return !m.key.Less(k)
}

// MaxOf satisfies MaxKeyed directly.
func (m Max[K, L]) MaxOf() Max[K, L] { return m }

// MaxKeyed is the capability a keyed search requires of an annotation:
// the ability to borrow its Max[K]. Mirrors Cardinalitied's role for Nth.
type MaxKeyed[K Ordered[K], L Keyed[K]] interface {
	MaxOf() Max[K, L]
}

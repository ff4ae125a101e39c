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

import "sync"

// linkState records which of Link's three observable states a Link is
// currently in. It is purely informative — the behaviour that matters
// (is a value present, is an id present) is carried by the hasValue/
// hasID fields themselves — but it is cheap to keep around and useful
// when debugging a tree dump.
type linkState uint8

const (
	stateMaterialized linkState = iota // value only
	stateIdentified                    // id (+ annotation) only
	stateBoth                          // both
)

// Link is the annotated indirection that owns or references a child
// subtree, in one of three states: materialized-only (fresh, in-memory),
// identified-only (rehydrated lazily from a Backend), or both. The
// cached annotation, once computed, always equals CombineNode applied to
// the materialized child, and a Link with no materialized child always
// carries a precomputed annotation — so Annotation() never fails.
//
// C is conventionally a reference type (a pointer to a node struct, the
// same way every Compound implementation in this module's collections/
// packages is): Link stores C by value rather than *C, the same way the
// source design's Link<C, A> stores C behind a single level of
// indirection rather than two.
//
// The lazy materialized-value/annotation caches are published under a
// single mutex rather than sync.Once, because materialization can fail
// (backend I/O) and must be retried on the next access rather than
// permanently poisoning the Link; this mirrors the lock-check-compute-
// unlock shape the teacher uses for its own lazily computed package-level
// KZG configuration (config.go's GetKZGConfig).
type Link[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	mu sync.Mutex

	state linkState

	value    C
	hasValue bool

	id    Identifier
	hasID bool

	ann    A
	hasAnn bool

	decode func([]byte) (C, error)
}

// NewLink wraps c as a freshly materialized, not-yet-identified Link.
func NewLink[C Compound[C, A, L], A Annotation[A, L], L any](c C) *Link[C, A, L] {
	return &Link[C, A, L]{state: stateMaterialized, value: c, hasValue: true}
}

// newIdentifiedLink builds an identified-only Link whose annotation is
// already known (from a PersistedId or a parent's serialized form), so
// Annotation() is satisfiable with no I/O. decode turns the bytes a
// Backend returns for id back into a C.
func newIdentifiedLink[C Compound[C, A, L], A Annotation[A, L], L any](id Identifier, ann A, decode func([]byte) (C, error)) *Link[C, A, L] {
	return &Link[C, A, L]{state: stateIdentified, id: id, hasID: true, ann: ann, hasAnn: true, decode: decode}
}

// Annotation returns the cached annotation, computing and memoizing it
// from the materialized value if necessary. It never fails: an
// identified-only Link always carries a precomputed annotation already.
func (lk *Link[C, A, L]) Annotation() A {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.annotationLocked()
}

func (lk *Link[C, A, L]) annotationLocked() A {
	if lk.hasAnn {
		return lk.ann
	}
	// Invariant: hasAnn can only be false when hasValue is true (a Link
	// with no materialized child always carries a precomputed
	// annotation, set at construction or by the last materialize).
	lk.ann = CombineNode[C, A, L](lk.value)
	lk.hasAnn = true
	return lk.ann
}

// Identifier reports the last-known content Identifier of this Link's
// subtree, and whether one is currently cached (mutation through
// InnerMut invalidates it).
func (lk *Link[C, A, L]) Identifier() (Identifier, bool) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.id, lk.hasID
}

// Inner returns read-only access to the wrapped subtree, materializing
// it from the registered backend(s) if this Link is currently
// identified-only. Read-only access never mutates structural shape; it
// may populate the lazy caches.
func (lk *Link[C, A, L]) Inner() (C, error) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	if err := lk.materializeLocked(); err != nil {
		var zero C
		return zero, err
	}
	return lk.value, nil
}

// InnerMut returns exclusive, mutable access to the wrapped subtree,
// materializing it if necessary. It invalidates the cached Identifier
// (it must be recomputed before the next persist) and permits, but does
// not force, recomputation of the cached annotation: the caller — in
// practice BranchMut, on drop — is responsible for calling
// RecomputeAnnotation once mutation is complete.
func (lk *Link[C, A, L]) InnerMut() (C, error) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	if err := lk.materializeLocked(); err != nil {
		var zero C
		return zero, err
	}
	lk.hasID = false
	lk.hasAnn = false
	lk.state = stateMaterialized
	return lk.value, nil
}

// Publish records id as this Link's content identifier after the caller
// has written the materialized value's bytes to a Backend, moving a
// materialized-only Link into the "both" state without any decode round
// trip. It does not touch the value or annotation caches: Publish is for
// a Link whose value was already in hand, not one being rehydrated.
func (lk *Link[C, A, L]) Publish(id Identifier) {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	lk.id = id
	lk.hasID = true
	if lk.hasValue {
		lk.state = stateBoth
	}
}

// RecomputeAnnotation unconditionally recomputes and overwrites the
// cached annotation from the (already materialized) child. BranchMut
// calls this for every Link on its level stack as it walks back up on
// close; it is the only way a mutation performed through a leaf pointer
// is reflected in ancestor annotations.
func (lk *Link[C, A, L]) RecomputeAnnotation() {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	if !lk.hasValue {
		panic("kelvin: RecomputeAnnotation on a Link with no materialized value")
	}
	lk.ann = CombineNode[C, A, L](lk.value)
	lk.hasAnn = true
}

func (lk *Link[C, A, L]) materializeLocked() error {
	if lk.hasValue {
		return nil
	}
	if lk.decode == nil {
		return &PersistError{Kind: PersistMissing, ID: lk.id, Err: errNoBackend}
	}
	bytes, err := Resolve(lk.id)
	if err != nil {
		return err
	}
	c, err := lk.decode(bytes)
	if err != nil {
		return &PersistError{Kind: PersistBackend, ID: lk.id, Err: err}
	}
	lk.value = c
	lk.hasValue = true
	lk.state = stateBoth
	return nil
}

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

// MappedBranch presents a Branch's leaves through a projection closure,
// without copying the underlying cursor.
type MappedBranch[C Compound[C, A, L], A Annotation[A, L], L any, T any] struct {
	branch  *Branch[C, A, L]
	project func(*L) *T
}

// Map wraps b with a leaf projection.
func Map[C Compound[C, A, L], A Annotation[A, L], L any, T any](b *Branch[C, A, L], project func(*L) *T) *MappedBranch[C, A, L, T] {
	return &MappedBranch[C, A, L, T]{branch: b, project: project}
}

// Leaf returns the projection of the underlying branch's current leaf.
func (m *MappedBranch[C, A, L, T]) Leaf() *T { return m.project(m.branch.Leaf()) }

// Depth delegates to the underlying branch.
func (m *MappedBranch[C, A, L, T]) Depth() int { return m.branch.Depth() }

// Iterator returns a cursor yielding projected leaves in walker order.
func (m *MappedBranch[C, A, L, T]) Iterator() *MappedBranchIterator[C, A, L, T] {
	return &MappedBranchIterator[C, A, L, T]{it: m.branch.Iterator(), project: m.project}
}

// MappedBranchIterator applies a projection to each leaf a
// BranchIterator yields.
type MappedBranchIterator[C Compound[C, A, L], A Annotation[A, L], L any, T any] struct {
	it      *BranchIterator[C, A, L]
	project func(*L) *T
}

func (it *MappedBranchIterator[C, A, L, T]) Next() bool { return it.it.Next() }
func (it *MappedBranchIterator[C, A, L, T]) Err() error { return it.it.Err() }
func (it *MappedBranchIterator[C, A, L, T]) Leaf() *T   { return it.project(it.it.Leaf()) }

// MappedBranchMut is MappedBranch's mutable twin: the projection must
// itself be symmetric (&mut L -> &mut T), and the annotation-maintenance
// invariant on Commit/Close is inherited unchanged from the wrapped
// BranchMut — the projection never touches annotations, only the view
// the caller mutates through.
type MappedBranchMut[C Compound[C, A, L], A Annotation[A, L], L any, T any] struct {
	branch  *BranchMut[C, A, L]
	project func(*L) *T
}

// MapMut wraps b with a mutable leaf projection.
func MapMut[C Compound[C, A, L], A Annotation[A, L], L any, T any](b *BranchMut[C, A, L], project func(*L) *T) *MappedBranchMut[C, A, L, T] {
	return &MappedBranchMut[C, A, L, T]{branch: b, project: project}
}

// LeafMut returns the projection of the underlying branch's current leaf.
func (m *MappedBranchMut[C, A, L, T]) LeafMut() *T { return m.project(m.branch.LeafMut()) }

// Depth delegates to the underlying branch.
func (m *MappedBranchMut[C, A, L, T]) Depth() int { return m.branch.Depth() }

// Commit delegates to the underlying BranchMut.
func (m *MappedBranchMut[C, A, L, T]) Commit() { m.branch.Commit() }

// Iterator returns a mutable cursor yielding projected leaves.
func (m *MappedBranchMut[C, A, L, T]) Iterator() *MappedBranchMutIterator[C, A, L, T] {
	return &MappedBranchMutIterator[C, A, L, T]{it: m.branch.Iterator(), project: m.project}
}

// MappedBranchMutIterator applies a projection to each leaf a
// BranchMutIterator yields.
type MappedBranchMutIterator[C Compound[C, A, L], A Annotation[A, L], L any, T any] struct {
	it      *BranchMutIterator[C, A, L]
	project func(*L) *T
}

func (it *MappedBranchMutIterator[C, A, L, T]) Next() bool { return it.it.Next() }
func (it *MappedBranchMutIterator[C, A, L, T]) Err() error { return it.it.Err() }
func (it *MappedBranchMutIterator[C, A, L, T]) Leaf() *T   { return it.project(it.it.Leaf()) }
func (it *MappedBranchMutIterator[C, A, L, T]) Close()     { it.it.Close() }

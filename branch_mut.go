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

import (
	"fmt"
	"os"
	"runtime"
)

// runWalkMut is runWalk's mutable twin: it descends through ChildMut and
// InnerMut instead of Child and Inner, so every Link on the resulting
// path has already had its identifier cache invalidated (InnerMut's
// contract) and is ready to have RecomputeAnnotation called on it once
// mutation through the yielded leaf pointer is done.
func runWalkMut[C Compound[C, A, L], A Annotation[A, L], L any](levels []level[C, A, L], w Walker[C, A, L]) ([]level[C, A, L], bool, error) {
	for {
		if len(levels) == 0 {
			return levels, false, nil
		}
		top := len(levels) - 1
		step := w.Walk(View[C, A, L]{node: levels[top].node}, levels[top].offset)
		switch step.Kind {
		case StepFound:
			ch := levels[top].node.ChildMut(step.Offset)
			if ch.Kind != KindLeaf {
				panic(&WalkerViolation{Step: step, Actual: ch.Kind})
			}
			levels[top].offset = step.Offset
			return levels, true, nil
		case StepInto:
			ch := levels[top].node.ChildMut(step.Offset)
			if ch.Kind != KindNode {
				panic(&WalkerViolation{Step: step, Actual: ch.Kind})
			}
			levels[top].offset = step.Offset
			child, err := ch.Link.InnerMut()
			if err != nil {
				return levels, false, err
			}
			levels = append(levels, level[C, A, L]{node: child, link: ch.Link})
		case StepAdvance:
			levels = levels[:top]
			if len(levels) == 0 {
				return levels, false, nil
			}
			levels[len(levels)-1].offset++
		case StepAbort:
			return levels, false, nil
		default:
			panic("kelvin: unknown step kind")
		}
	}
}

// BranchMut is a mutable cursor. It borrows its root exclusively, and
// its one escape hatch for mutation — LeafMut — is only safe because
// Commit walks the level stack bottom to root and recomputes every
// visited Link's cached annotation, restoring the
// annotation-consistency invariant.
//
// Go has no destructors, so kelvin follows the spec's own guidance for
// garbage-collected hosts: Commit is explicit, and forgetting to call it
// is a programmer error. A runtime.SetFinalizer safety net reports (to
// stderr) a BranchMut that was garbage collected uncommitted; this is
// advisory only; finalizer timing is not guaranteed and must not be
// relied on for correctness.
type BranchMut[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	levels    []level[C, A, L]
	walker    Walker[C, A, L]
	committed bool
}

// WalkMut runs w from the root and returns the BranchMut it lands on.
func WalkMut[C Compound[C, A, L], A Annotation[A, L], L any](root C, w Walker[C, A, L]) (*BranchMut[C, A, L], error) {
	levels, found, err := runWalkMut[C, A, L]([]level[C, A, L]{{node: root}}, w)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	bm := &BranchMut[C, A, L]{levels: levels, walker: w}
	runtime.SetFinalizer(bm, finalizeBranchMut[C, A, L])
	return bm, nil
}

func finalizeBranchMut[C Compound[C, A, L], A Annotation[A, L], L any](bm *BranchMut[C, A, L]) {
	if !bm.committed {
		fmt.Fprintln(os.Stderr, "kelvin: BranchMut garbage collected without Commit; annotations above the mutated leaf may be stale")
	}
}

// LeafMut returns the leaf this branch currently points to, for
// mutation in place. The mutation is only reflected in ancestor
// annotations once Commit is called.
func (b *BranchMut[C, A, L]) LeafMut() *L {
	top := b.levels[len(b.levels)-1]
	ch := top.node.ChildMut(top.offset)
	return ch.Leaf
}

// Depth returns the number of levels in the branch.
func (b *BranchMut[C, A, L]) Depth() int { return len(b.levels) }

// Levels returns a read-only snapshot of each (node, offset) pair from
// root to leaf.
func (b *BranchMut[C, A, L]) Levels() []LevelView[C, A, L] {
	out := make([]LevelView[C, A, L], len(b.levels))
	for i, lv := range b.levels {
		out[i] = LevelView[C, A, L]{Node: lv.node, Offset: lv.offset}
	}
	return out
}

// Commit walks the level stack from the leaf back to the root,
// recomputing every visited Link's cached annotation from its
// (possibly just-mutated) materialized child. It is the only way a
// mutation made through LeafMut is reflected in ancestor annotations,
// and must be called before a BranchMut goes out of scope. Calling
// Commit more than once is safe; only the first call does work.
func (b *BranchMut[C, A, L]) Commit() {
	if b.committed {
		return
	}
	b.committed = true
	for i := len(b.levels) - 1; i >= 0; i-- {
		if b.levels[i].link != nil {
			b.levels[i].link.RecomputeAnnotation()
		}
	}
}

// Iterator returns a mutable cursor over the leaves this branch's
// walker visits from the current position onward. Each call to Next
// commits the position being left before advancing past it; Close must
// be called to commit the final position.
func (b *BranchMut[C, A, L]) Iterator() *BranchMutIterator[C, A, L] {
	return &BranchMutIterator[C, A, L]{levels: b.levels, walker: b.walker}
}

// BranchMutIterator is BranchIterator's mutable twin.
type BranchMutIterator[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	levels    []level[C, A, L]
	walker    Walker[C, A, L]
	started   bool
	cur       *L
	err       error
	committed bool
}

func (it *BranchMutIterator[C, A, L]) commitCurrent() {
	for i := len(it.levels) - 1; i >= 0; i-- {
		if it.levels[i].link != nil {
			it.levels[i].link.RecomputeAnnotation()
		}
	}
}

// Next advances to the next leaf, committing the annotations along the
// path to the position being left first.
func (it *BranchMutIterator[C, A, L]) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.started {
		it.started = true
		if len(it.levels) == 0 {
			return false
		}
	} else {
		it.commitCurrent()
		if len(it.levels) == 0 {
			it.cur = nil
			return false
		}
		it.levels[len(it.levels)-1].offset++
		levels, found, err := runWalkMut[C, A, L](it.levels, it.walker)
		if err != nil {
			it.err = err
			it.cur = nil
			return false
		}
		if !found {
			it.levels = nil
			it.cur = nil
			return false
		}
		it.levels = levels
	}
	top := it.levels[len(it.levels)-1]
	it.cur = top.node.ChildMut(top.offset).Leaf
	return true
}

// Leaf returns the leaf the most recent successful Next call landed on,
// for mutation in place.
func (it *BranchMutIterator[C, A, L]) Leaf() *L { return it.cur }

// Err reports the error, if any, that stopped iteration.
func (it *BranchMutIterator[C, A, L]) Err() error { return it.err }

// Close commits the annotations along the path to the final position.
// It is safe to call more than once and must be called even if the
// caller stops iterating early.
func (it *BranchMutIterator[C, A, L]) Close() {
	if it.committed {
		return
	}
	it.committed = true
	it.commitCurrent()
}

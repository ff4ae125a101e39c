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

// level is one (node, offset) pair on a Branch's stack. link is nil for
// the root level (the root is owned directly by the caller, not behind
// a Link) and non-nil for every level reached by descending into a Node
// slot — it is the Link that slot's annotation lives on.
type level[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	node   C
	offset int
	link   *Link[C, A, L]
}

// LevelView is a read-only snapshot of one level of a branch, returned
// by Levels() for callers that need path context without being able to
// mutate through it.
type LevelView[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	Node   C
	Offset int
}

// runWalk drives the walker/branch state machine from a given stack
// until it lands on a leaf (found==true), the stack empties or the
// walker aborts (found==false, err==nil), or materializing a descended
// Link fails (err!=nil). It is shared by initial construction (called
// with a single fresh root level) and by iteration (called after
// bumping the top level's offset one past the previous leaf) —
// the two are the same state machine resumed from different points.
func runWalk[C Compound[C, A, L], A Annotation[A, L], L any](levels []level[C, A, L], w Walker[C, A, L]) ([]level[C, A, L], bool, error) {
	for {
		if len(levels) == 0 {
			return levels, false, nil
		}
		top := len(levels) - 1
		step := w.Walk(View[C, A, L]{node: levels[top].node}, levels[top].offset)
		switch step.Kind {
		case StepFound:
			ch := levels[top].node.Child(step.Offset)
			if ch.Kind != KindLeaf {
				panic(&WalkerViolation{Step: step, Actual: ch.Kind})
			}
			levels[top].offset = step.Offset
			return levels, true, nil
		case StepInto:
			ch := levels[top].node.Child(step.Offset)
			if ch.Kind != KindNode {
				panic(&WalkerViolation{Step: step, Actual: ch.Kind})
			}
			levels[top].offset = step.Offset
			child, err := ch.Link.Inner()
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

// Branch is an immutable cursor: a non-empty stack of (node, offset)
// levels from root to a leaf, built by running a Walker from the root.
type Branch[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	levels []level[C, A, L]
	walker Walker[C, A, L]
}

// Walk runs w from the root and returns the Branch it lands on. A nil,
// nil result means the walker aborted or exhausted the tree without
// finding a leaf; a non-nil error means materializing a Link along the
// way failed.
func Walk[C Compound[C, A, L], A Annotation[A, L], L any](root C, w Walker[C, A, L]) (*Branch[C, A, L], error) {
	levels, found, err := runWalk[C, A, L]([]level[C, A, L]{{node: root}}, w)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &Branch[C, A, L]{levels: levels, walker: w}, nil
}

// Leaf returns the leaf this branch currently points to.
func (b *Branch[C, A, L]) Leaf() *L {
	top := b.levels[len(b.levels)-1]
	ch := top.node.Child(top.offset)
	return ch.Leaf
}

// Depth returns the number of levels in the branch, i.e. the number of
// Into steps the walker performed to reach this leaf, plus one.
func (b *Branch[C, A, L]) Depth() int { return len(b.levels) }

// Levels returns a read-only snapshot of each (node, offset) pair from
// root to leaf.
func (b *Branch[C, A, L]) Levels() []LevelView[C, A, L] {
	out := make([]LevelView[C, A, L], len(b.levels))
	for i, lv := range b.levels {
		out[i] = LevelView[C, A, L]{Node: lv.node, Offset: lv.offset}
	}
	return out
}

// Iterator returns a fresh cursor over the leaves this branch's walker
// visits from the current position onward, in walker order.
func (b *Branch[C, A, L]) Iterator() *BranchIterator[C, A, L] {
	levels := append([]level[C, A, L](nil), b.levels...)
	return &BranchIterator[C, A, L]{levels: levels, walker: b.walker}
}

// BranchIterator is a lazy, stateful sequence of leaves produced by
// repeatedly resuming a Branch's walker, in the style of bufio.Scanner:
// call Next until it reports done, reading Leaf() in between.
type BranchIterator[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	levels  []level[C, A, L]
	walker  Walker[C, A, L]
	started bool
	cur     *L
	err     error
}

// Next advances to the next leaf. It returns false once the walk is
// exhausted or has failed; callers should check Err after a false
// return to distinguish "done" from "failed".
func (it *BranchIterator[C, A, L]) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.started {
		it.started = true
		if len(it.levels) == 0 {
			return false
		}
		top := it.levels[len(it.levels)-1]
		it.cur = top.node.Child(top.offset).Leaf
		return true
	}
	if len(it.levels) == 0 {
		it.cur = nil
		return false
	}
	it.levels[len(it.levels)-1].offset++
	levels, found, err := runWalk[C, A, L](it.levels, it.walker)
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
	top := levels[len(levels)-1]
	it.cur = top.node.Child(top.offset).Leaf
	return true
}

// Leaf returns the leaf the most recent successful Next call landed on.
func (it *BranchIterator[C, A, L]) Leaf() *L { return it.cur }

// Err reports the error, if any, that stopped iteration.
func (it *BranchIterator[C, A, L]) Err() error { return it.err }

// Nth locates the n-th leaf (0-indexed) under root in AllLeaves order,
// skipping whole subtrees by Cardinality rather than visiting every
// leaf before it. This is the blanket capability the source design
// expresses as "Nth<'a, A> implemented for any C: Compound<A> with
// A: Borrow<Cardinality>" — here, any A satisfying Cardinalitied[L].
func Nth[C Compound[C, A, L], A interface {
	Annotation[A, L]
	Cardinalitied[L]
}, L any](root C, n uint64) (*Branch[C, A, L], error) {
	return Walk[C, A, L](root, NewOffset[C, A, L](n))
}

// FindKey locates the leaf whose Key() equals k, pruning by Max[K]. The
// blanket-capability counterpart of Nth, for A satisfying MaxKeyed[K, L].
func FindKey[C Compound[C, A, L], A interface {
	Annotation[A, L]
	MaxKeyed[K, L]
}, K Ordered[K], L Keyed[K]](root C, k K) (*Branch[C, A, L], error) {
	return Walk[C, A, L](root, NewKeyedSearch[C, A, K, L](k))
}

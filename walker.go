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

// StepKind discriminates the four moves a Walker may make at a node.
type StepKind uint8

const (
	// StepFound selects a Leaf slot; the walk terminates successfully.
	StepFound StepKind = iota
	// StepInto descends into the Node slot at Offset.
	StepInto
	// StepAdvance means the walker has exhausted this node; the caller
	// pops one level and bumps the parent's offset before re-invoking
	// the walker there.
	StepAdvance
	// StepAbort terminates the walk with "no such leaf".
	StepAbort
)

func (k StepKind) String() string {
	switch k {
	case StepFound:
		return "Found"
	case StepInto:
		return "Into"
	case StepAdvance:
		return "Advance"
	case StepAbort:
		return "Abort"
	default:
		return "Step(?)"
	}
}

// Step is what a Walker returns on each invocation.
type Step struct {
	Kind   StepKind
	Offset int
}

func Found(offset int) Step { return Step{Kind: StepFound, Offset: offset} }
func Into(offset int) Step  { return Step{Kind: StepInto, Offset: offset} }
func Advance() Step         { return Step{Kind: StepAdvance} }
func Abort() Step           { return Step{Kind: StepAbort} }

// View is the per-node surface a Walker is invoked with: child access at
// the node currently being inspected, without exposing anything about
// the levels above it.
type View[C Compound[C, A, L], A Annotation[A, L], L any] struct {
	node C
}

func (v View[C, A, L]) Child(offset int) Child[C, A, L] { return v.node.Child(offset) }

// Walker is a stateful, resumable stepwise search strategy. It is
// invoked once per visit to a node — including re-invocations after an
// Into child returns via Advance — so any progress the walker is making
// (how many leaves remain to skip, say) must live in the walker value
// itself, not stashed elsewhere.
//
// from is the offset to resume scanning at: 0 on the first visit to a
// node, and one past the child that was just descended into or
// exhausted on every re-invocation. A Walker that ignores from and
// always rescans from the start would re-find an already-consumed
// leaf; every walker in this package scans starting at from.
//
// A Walker returning Found(i) where offset i is not a Leaf, or Into(i)
// where i is not a Node, is a programmer error: Branch construction
// detects it and panics with a *WalkerViolation rather than silently
// corrupting the branch.
type Walker[C Compound[C, A, L], A Annotation[A, L], L any] interface {
	Walk(v View[C, A, L], from int) Step
}

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

package list

import (
	"testing"

	"github.com/kelvin-tree/kelvin"
	"github.com/kelvin-tree/kelvin/store"
)

func build(t *testing.T, vals ...int) *Node[int] {
	t.Helper()
	var head *Node[int]
	for i := len(vals) - 1; i >= 0; i-- {
		head = Prepend(vals[i], head)
	}
	return head
}

func TestCardinalityAndPrepend(t *testing.T) {
	head := build(t, 1, 2, 3)
	if got := Len(head); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	head = Prepend(0, head)
	if got := Len(head); got != 4 {
		t.Fatalf("Len() after Prepend = %d, want 4", got)
	}
}

func TestAllLeavesIteration(t *testing.T) {
	head := build(t, 1, 2, 3)
	branch, err := kelvin.Walk[*Node[int], kelvin.Cardinality[int], int](head, kelvin.First[*Node[int], kelvin.Cardinality[int], int]())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if branch == nil {
		t.Fatal("Walk returned nil branch for a non-empty list")
	}
	var got []int
	it := branch.Iterator()
	for it.Next() {
		got = append(got, *it.Leaf())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iteration error: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBranchMutAtOffset(t *testing.T) {
	head := build(t, 1, 2, 3)

	bm, err := kelvin.WalkMut[*Node[int], kelvin.Cardinality[int], int](head, kelvin.NewOffset[*Node[int], kelvin.Cardinality[int], int](1))
	if err != nil {
		t.Fatalf("WalkMut: %v", err)
	}
	if bm == nil {
		t.Fatal("WalkMut returned nil for offset within range")
	}
	*bm.LeafMut() = 99
	bm.Commit()

	branch, err := kelvin.Nth[*Node[int], kelvin.Cardinality[int], int](head, 1)
	if err != nil {
		t.Fatalf("Nth: %v", err)
	}
	if got := *branch.Leaf(); got != 99 {
		t.Fatalf("leaf at index 1 = %d, want 99", got)
	}
	// Untouched neighbors and the overall count must survive the mutation.
	if got := *mustNth(t, head, 0); got != 1 {
		t.Fatalf("leaf at index 0 = %d, want 1", got)
	}
	if got := *mustNth(t, head, 2); got != 3 {
		t.Fatalf("leaf at index 2 = %d, want 3", got)
	}
	if got := Len(head); got != 3 {
		t.Fatalf("Len() after mutation = %d, want 3", got)
	}
}

func mustNth(t *testing.T, head *Node[int], n uint64) *int {
	t.Helper()
	branch, err := kelvin.Nth[*Node[int], kelvin.Cardinality[int], int](head, n)
	if err != nil {
		t.Fatalf("Nth(%d): %v", n, err)
	}
	if branch == nil {
		t.Fatalf("Nth(%d): not found", n)
	}
	return branch.Leaf()
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	head := build(t, 1, 2, 3)
	backend := store.NewMemory()
	kelvin.Register(backend)

	pid, err := Persist[int](head, backend)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}

	link := Restore[int](pid)
	restored, err := link.Inner()
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	if got := Len(restored); got != 3 {
		t.Fatalf("Len(restored) = %d, want 3", got)
	}

	branch, err := kelvin.Nth[*Node[int], kelvin.Cardinality[int], int](restored, 2)
	if err != nil {
		t.Fatalf("Nth: %v", err)
	}
	if got := *branch.Leaf(); got != 3 {
		t.Fatalf("leaf at index 2 = %d, want 3", got)
	}
}

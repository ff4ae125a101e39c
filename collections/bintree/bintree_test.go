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

package bintree

import (
	"testing"

	"github.com/kelvin-tree/kelvin"
	"github.com/kelvin-tree/kelvin/store"
)

// key is an orderable key type; kelvin.Ordered is expressed as a Less
// method rather than constraints.Ordered, so even a plain int needs a
// named type to satisfy it.
type key int

func (k key) Less(other key) bool { return k < other }

type entry struct {
	K key
	V string
}

func (e entry) Key() key { return e.K }

func buildTree() *Node[key, entry] {
	left := Leaf[key, entry](entry{K: 2, V: "two"})
	right := Leaf[key, entry](entry{K: 8, V: "eight"})
	root := Leaf[key, entry](entry{K: 4, V: "four"})
	return WithChildren(root, left, right)
}

func TestFindPresentKey(t *testing.T) {
	root := buildTree()
	for _, want := range []struct {
		k key
		v string
	}{
		{4, "four"},
		{2, "two"},
		{8, "eight"},
	} {
		leaf, ok, err := Find[key, entry](root, want.k)
		if err != nil {
			t.Fatalf("Find(%d): %v", want.k, err)
		}
		if !ok {
			t.Fatalf("Find(%d): not found", want.k)
		}
		if leaf.V != want.v {
			t.Fatalf("Find(%d) = %+v, want V=%q", want.k, leaf, want.v)
		}
	}
}

func TestFindAbsentKey(t *testing.T) {
	root := buildTree()
	for _, k := range []key{0, 3, 5, 9, 100} {
		_, ok, err := Find[key, entry](root, k)
		if err != nil {
			t.Fatalf("Find(%d): %v", k, err)
		}
		if ok {
			t.Fatalf("Find(%d): unexpectedly found a leaf", k)
		}
	}
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	root := buildTree()
	backend := store.NewMemory()
	kelvin.Register(backend)

	pid, err := Persist[key, entry](root, backend)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}

	link := Restore[key, entry](pid)
	restored, err := link.Inner()
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}

	leaf, ok, err := Find[key, entry](restored, 8)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok || leaf.V != "eight" {
		t.Fatalf("Find(8) on restored tree = (%+v, %v), want (eight, true)", leaf, ok)
	}
}

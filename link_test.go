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

import "testing"

func TestLinkMaterializedAnnotation(t *testing.T) {
	list := testList(1, 2, 3)
	lk := NewLink[*testNode, Cardinality[int], int](list)

	ann := lk.Annotation()
	if ann != 3 {
		t.Fatalf("Annotation() = %d, want 3", ann)
	}
	if _, ok := lk.Identifier(); ok {
		t.Fatal("a freshly materialized Link should not carry an Identifier")
	}
}

func TestLinkIdentifiedOnlyAnnotationNeedsNoIO(t *testing.T) {
	calls := 0
	decode := func([]byte) (*testNode, error) {
		calls++
		return testList(1, 2, 3), nil
	}
	// Inner fetches the bytes through the process-wide registry before
	// decoding, so the identifier must be held by a registered backend.
	backend := newTestMemory()
	id, _ := backend.Put([]byte("node"))
	defer func(old *Persistence) { defaultRegistry = old }(defaultRegistry)
	defaultRegistry = &Persistence{}
	Register(backend)
	lk := newIdentifiedLink[*testNode, Cardinality[int], int](id, Cardinality[int](3), decode)

	if ann := lk.Annotation(); ann != 3 {
		t.Fatalf("Annotation() = %d, want 3", ann)
	}
	if calls != 0 {
		t.Fatalf("decode was called %d times computing a cached annotation, want 0", calls)
	}

	inner, err := lk.Inner()
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	if inner.leaf != 1 {
		t.Fatalf("Inner().leaf = %d, want 1", inner.leaf)
	}
	if calls != 1 {
		t.Fatalf("decode was called %d times materializing Inner, want 1", calls)
	}

	// Materializing again must not decode a second time.
	if _, err := lk.Inner(); err != nil {
		t.Fatalf("Inner (second call): %v", err)
	}
	if calls != 1 {
		t.Fatalf("decode was called %d times across two Inner calls, want 1", calls)
	}
}

func TestLinkInnerMutInvalidatesIdentifier(t *testing.T) {
	lk := NewLink[*testNode, Cardinality[int], int](testList(1, 2))
	lk.Publish(Identifier{2})
	if _, ok := lk.Identifier(); !ok {
		t.Fatal("Publish should have set an Identifier")
	}

	if _, err := lk.InnerMut(); err != nil {
		t.Fatalf("InnerMut: %v", err)
	}
	if _, ok := lk.Identifier(); ok {
		t.Fatal("InnerMut should invalidate the cached Identifier")
	}
}

func TestLinkMaterializeMissingBackend(t *testing.T) {
	lk := newIdentifiedLink[*testNode, Cardinality[int], int](Identifier{3}, Cardinality[int](0), nil)
	_, err := lk.Inner()
	if err == nil {
		t.Fatal("expected an error materializing a Link with no decode function")
	}
	perr, ok := err.(*PersistError)
	if !ok || perr.Kind != PersistMissing {
		t.Fatalf("Inner error = %v (%T), want *PersistError{Kind: PersistMissing}", err, err)
	}
}

func TestLinkRecomputeAnnotation(t *testing.T) {
	list := testList(1, 2, 3)
	lk := NewLink[*testNode, Cardinality[int], int](list)
	if ann := lk.Annotation(); ann != 3 {
		t.Fatalf("Annotation() = %d, want 3", ann)
	}

	inner, err := lk.InnerMut()
	if err != nil {
		t.Fatalf("InnerMut: %v", err)
	}
	inner.tail = NewLink[*testNode, Cardinality[int], int](testCons(4, nil))
	lk.RecomputeAnnotation()

	if ann := lk.Annotation(); ann != 2 {
		t.Fatalf("Annotation() after mutation = %d, want 2", ann)
	}
}

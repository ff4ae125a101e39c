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

// testNode is a minimal Compound used across this package's own tests:
// a cons cell identical in shape to collections/list.Node, kept local
// (rather than imported) so the core package's tests don't depend on a
// package that itself depends on kelvin.
type testNode struct {
	leaf int
	tail *Link[*testNode, Cardinality[int], int]
}

func testCons(leaf int, tail *testNode) *testNode {
	n := &testNode{leaf: leaf}
	if tail != nil {
		n.tail = NewLink[*testNode, Cardinality[int], int](tail)
	}
	return n
}

func testList(vals ...int) *testNode {
	var head *testNode
	for i := len(vals) - 1; i >= 0; i-- {
		head = testCons(vals[i], head)
	}
	return head
}

func (n *testNode) Child(offset int) Child[*testNode, Cardinality[int], int] {
	if n == nil {
		return EndSlot[*testNode, Cardinality[int], int]()
	}
	switch offset {
	case 0:
		return LeafSlot[*testNode, Cardinality[int], int](&n.leaf)
	case 1:
		if n.tail == nil {
			return EndSlot[*testNode, Cardinality[int], int]()
		}
		return NodeSlot[*testNode, Cardinality[int], int](n.tail)
	default:
		return EndSlot[*testNode, Cardinality[int], int]()
	}
}

func (n *testNode) ChildMut(offset int) ChildMut[*testNode, Cardinality[int], int] {
	if n == nil {
		return EndSlotMut[*testNode, Cardinality[int], int]()
	}
	switch offset {
	case 0:
		return LeafSlotMut[*testNode, Cardinality[int], int](&n.leaf)
	case 1:
		if n.tail == nil {
			return EndSlotMut[*testNode, Cardinality[int], int]()
		}
		return NodeSlotMut[*testNode, Cardinality[int], int](n.tail)
	default:
		return EndSlotMut[*testNode, Cardinality[int], int]()
	}
}

// Marshal/testDecode give testNode a Storable encoding simple enough to
// hand-roll without a serialization library: a one-byte leaf tag plus
// either the raw leaf value or a tail reference, used only by this
// package's own persistence tests (collections/list and
// collections/bintree use real RLP encoding; duplicating that here
// would just be testing the RLP library, not kelvin's persistence
// bridge).
func (n *testNode) Marshal() ([]byte, error) {
	b := make([]byte, 0, 9)
	b = append(b, byte(n.leaf))
	if n.tail != nil {
		id, ok := n.tail.Identifier()
		if !ok {
			return nil, errNoBackend
		}
		b = append(b, 1)
		b = append(b, id.Bytes()...)
		card := uint64(n.tail.Annotation())
		for i := 0; i < 8; i++ {
			b = append(b, byte(card>>(8*i)))
		}
	} else {
		b = append(b, 0)
	}
	return b, nil
}

func testDecode(b []byte) (*testNode, error) {
	n := &testNode{leaf: int(b[0])}
	if b[1] == 1 {
		var id Identifier
		copy(id[:], b[2:34])
		var card uint64
		for i := 0; i < 8; i++ {
			card |= uint64(b[34+i]) << (8 * i)
		}
		pid := PersistedId[Cardinality[int]]{ID: id, Annotation: Cardinality[int](card)}
		n.tail = Restore[*testNode, Cardinality[int], int](pid, testDecode)
	}
	return n, nil
}

// testMemory is a minimal in-memory Backend, kept local to this
// package's tests so they don't need to import store (which imports
// kelvin, and would make an import cycle out of a kelvin-internal test).
type testMemory struct {
	data map[Identifier][]byte
}

func newTestMemory() *testMemory { return &testMemory{data: make(map[Identifier][]byte)} }

func (m *testMemory) Put(b []byte) (Identifier, error) {
	id := IdentifierOf(b)
	m.data[id] = append([]byte(nil), b...)
	return id, nil
}

func (m *testMemory) Get(id Identifier) ([]byte, error) {
	b, ok := m.data[id]
	if !ok {
		return nil, errMissing
	}
	return b, nil
}

// testKey makes an int orderable for the Ordered-constrained tests.
type testKey int

func (k testKey) Less(other testKey) bool { return k < other }

type testEntry struct {
	K testKey
	V string
}

func (e testEntry) Key() testKey { return e.K }

// testKeyNode is a cons cell over testEntry, annotated with Max[testKey]
// rather than Cardinality, for the keyed-search tests.
type testKeyNode struct {
	leaf testEntry
	tail *Link[*testKeyNode, Max[testKey, testEntry], testEntry]
}

func testKeyCons(leaf testEntry, tail *testKeyNode) *testKeyNode {
	n := &testKeyNode{leaf: leaf}
	if tail != nil {
		n.tail = NewLink[*testKeyNode, Max[testKey, testEntry], testEntry](tail)
	}
	return n
}

func testKeyList(entries ...testEntry) *testKeyNode {
	var head *testKeyNode
	for i := len(entries) - 1; i >= 0; i-- {
		head = testKeyCons(entries[i], head)
	}
	return head
}

func (n *testKeyNode) Child(offset int) Child[*testKeyNode, Max[testKey, testEntry], testEntry] {
	if n == nil {
		return EndSlot[*testKeyNode, Max[testKey, testEntry], testEntry]()
	}
	switch offset {
	case 0:
		return LeafSlot[*testKeyNode, Max[testKey, testEntry], testEntry](&n.leaf)
	case 1:
		if n.tail == nil {
			return EndSlot[*testKeyNode, Max[testKey, testEntry], testEntry]()
		}
		return NodeSlot[*testKeyNode, Max[testKey, testEntry], testEntry](n.tail)
	default:
		return EndSlot[*testKeyNode, Max[testKey, testEntry], testEntry]()
	}
}

func (n *testKeyNode) ChildMut(offset int) ChildMut[*testKeyNode, Max[testKey, testEntry], testEntry] {
	if n == nil {
		return EndSlotMut[*testKeyNode, Max[testKey, testEntry], testEntry]()
	}
	switch offset {
	case 0:
		return LeafSlotMut[*testKeyNode, Max[testKey, testEntry], testEntry](&n.leaf)
	case 1:
		if n.tail == nil {
			return EndSlotMut[*testKeyNode, Max[testKey, testEntry], testEntry]()
		}
		return NodeSlotMut[*testKeyNode, Max[testKey, testEntry], testEntry](n.tail)
	default:
		return EndSlotMut[*testKeyNode, Max[testKey, testEntry], testEntry]()
	}
}

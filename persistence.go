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
	"errors"
	"fmt"
	"sync"
)

// Persistence is a process-wide registry of Backends consulted, in
// registration order, whenever a Link in the identified-only state needs
// to resolve an Identifier it does not itself carry a reference to. It
// is torn down implicitly at process exit; there is no explicit
// Shutdown because Backends own their own lifecycle.
type Persistence struct {
	mu       sync.Mutex
	backends []Backend
}

var defaultRegistry = &Persistence{}

// Register adds b to the process-wide registry. Backends are consulted
// in the order they were registered.
func Register(b Backend) { defaultRegistry.Register(b) }

// Register adds b to this registry.
func (p *Persistence) Register(b Backend) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.backends = append(p.backends, b)
}

// Resolve consults registered backends in order until one returns bytes
// for id.
func Resolve(id Identifier) ([]byte, error) { return defaultRegistry.Resolve(id) }

func (p *Persistence) Resolve(id Identifier) ([]byte, error) {
	p.mu.Lock()
	backends := append([]Backend(nil), p.backends...)
	p.mu.Unlock()

	if len(backends) == 0 {
		return nil, &PersistError{Kind: PersistMissing, ID: id, Err: errNoBackend}
	}
	var lastErr error
	allMissing := true
	for _, b := range backends {
		bytes, err := b.Get(id)
		if err == nil {
			return bytes, nil
		}
		var perr *PersistError
		if !errors.Is(err, errMissing) && !(errors.As(err, &perr) && perr.Kind == PersistMissing) {
			allMissing = false
		}
		lastErr = err
	}
	if allMissing {
		return nil, &PersistError{Kind: PersistMissing, ID: id, Err: errMissing}
	}
	return nil, &PersistError{Kind: PersistBackend, ID: id, Err: lastErr}
}

// PersistedId is a durable pointer to a whole tree: its root Identifier
// plus a snapshot of the root's annotation, so a caller can reopen it as
// a read-only root (nth, iteration, keyed search, …) without any I/O
// beyond the path actually walked.
type PersistedId[A any] struct {
	ID         Identifier
	Annotation A
}

// Persist serializes c's root, writes it to backend, and returns a
// PersistedId snapshotting c's current annotation. c's own Storable
// encoding is expected to recursively persist (or already have
// persisted) any Links it owns; Persist itself only writes the root's
// bytes.
func Persist[C Compound[C, A, L], A Annotation[A, L], L any](c C, s Storable, backend Backend) (PersistedId[A], error) {
	b, err := s.Marshal()
	if err != nil {
		return PersistedId[A]{}, err
	}
	id, err := backend.Put(b)
	if err != nil {
		return PersistedId[A]{}, &PersistError{Kind: PersistBackend, ID: id, Err: err}
	}
	return PersistedId[A]{ID: id, Annotation: CombineNode[C, A, L](c)}, nil
}

// PersistTree persists c and every descendant it reaches through a Node
// slot, depth first, publishing each descendant Link's Identifier as it
// is written so that c's own Marshal can embed a stable reference to it.
// c (and every Node descendant) must implement Storable; PersistTree
// reports an error naming the offending type if one does not.
//
// This is the usual way to persist a freshly built, fully in-memory tree
// (spec.md §4.H's "persistence bridge"): Persist alone only writes one
// level and expects the caller to have already published every child
// Link, which is rarely true of a tree that was just constructed.
func PersistTree[C Compound[C, A, L], A Annotation[A, L], L any](c C, backend Backend) (PersistedId[A], error) {
	for i := 0; ; i++ {
		ch := c.Child(i)
		switch ch.Kind {
		case KindEndOfNode:
			s, ok := any(c).(Storable)
			if !ok {
				return PersistedId[A]{}, fmt.Errorf("kelvin: %T does not implement Storable", c)
			}
			return Persist[C, A, L](c, s, backend)
		case KindNode:
			if _, ok := ch.Link.Identifier(); ok {
				continue
			}
			inner, err := ch.Link.Inner()
			if err != nil {
				return PersistedId[A]{}, err
			}
			pid, err := PersistTree[C, A, L](inner, backend)
			if err != nil {
				return PersistedId[A]{}, err
			}
			ch.Link.Publish(pid.ID)
		case KindLeaf, KindEmpty:
			continue
		default:
			panic("kelvin: unknown child kind")
		}
	}
}

// Restore opens a PersistedId as an identified-only Link: no bytes are
// read until something dereferences into the tree, and the returned
// Link already satisfies Annotation() without any I/O at all.
func Restore[C Compound[C, A, L], A Annotation[A, L], L any](pid PersistedId[A], decode func([]byte) (C, error)) *Link[C, A, L] {
	return newIdentifiedLink[C, A, L](pid.ID, pid.Annotation, decode)
}

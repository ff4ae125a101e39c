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

// Package store collects kelvin.Backend implementations.
package store

import (
	"sync"

	"github.com/kelvin-tree/kelvin"
)

// Memory is an in-memory kelvin.Backend, safe for concurrent use. It
// never evicts, so it is meant for tests and short-lived tools rather
// than long-running processes.
type Memory struct {
	mu   sync.RWMutex
	data map[kelvin.Identifier][]byte
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[kelvin.Identifier][]byte)}
}

// Put implements kelvin.Backend.
func (m *Memory) Put(b []byte) (kelvin.Identifier, error) {
	id := kelvin.IdentifierOf(b)
	cp := make([]byte, len(b))
	copy(cp, b)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = cp
	return id, nil
}

// Get implements kelvin.Backend.
func (m *Memory) Get(id kelvin.Identifier) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[id]
	if !ok {
		return nil, &kelvin.PersistError{Kind: kelvin.PersistMissing, ID: id}
	}
	return b, nil
}

// Len reports the number of distinct entries currently stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

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
)

// errMissing is returned by a Backend.Get that has no bytes for an
// Identifier.
var errMissing = errors.New("kelvin: identifier not found in any registered backend")

// errNoBackend is returned when a Link in the identified-only state needs
// to materialize but no backend has been registered.
var errNoBackend = errors.New("kelvin: no backend registered to resolve identifier")

// PersistErrorKind discriminates the two ways materialization can fail.
type PersistErrorKind uint8

const (
	// PersistMissing means no registered backend had bytes for the identifier.
	PersistMissing PersistErrorKind = iota
	// PersistBackend means a backend was consulted and itself failed, or
	// the bytes it returned could not be decoded.
	PersistBackend
)

// PersistError is the error surface of materialization: it arises from
// Link.Inner, Link.InnerMut and Branch/BranchMut construction when
// materializing an identified-only Link fails. Annotation() never
// fails — a Link with no materialized child always carries a
// precomputed annotation.
type PersistError struct {
	Kind PersistErrorKind
	ID   Identifier
	Err  error // the backend's or decoder's error for PersistBackend; errNoBackend, errMissing or nil for PersistMissing
}

func (e *PersistError) Error() string {
	switch e.Kind {
	case PersistMissing:
		return fmt.Sprintf("kelvin: missing identifier %s", e.ID)
	case PersistBackend:
		return fmt.Sprintf("kelvin: backend error materializing %s: %v", e.ID, e.Err)
	default:
		return "kelvin: persist error"
	}
}

func (e *PersistError) Unwrap() error { return e.Err }

// WalkerViolation is raised (via panic) when a Walker returns a Step
// that does not match the slot it names: Found pointing at a non-leaf,
// or Into pointing at a non-node. This is a programmer error in the
// walker, not a runtime condition callers should recover from in the
// normal path.
type WalkerViolation struct {
	Step   Step
	Actual Kind
}

func (e *WalkerViolation) Error() string {
	return fmt.Sprintf("kelvin: walker violation: step %v at offset %d targets a %s slot", e.Step.Kind, e.Step.Offset, e.Actual)
}

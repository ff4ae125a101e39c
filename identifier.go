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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Identifier is the stable content address of a Storable's serialized
// bytes. Identifier equality implies byte equality under the serializer,
// so it doubles as the key under which a Backend stores and retrieves
// the bytes.
type Identifier = common.Hash

// IdentifierOf hashes bytes into their content Identifier. All Storable
// implementations in this module derive their Identifier this way, the
// same primitive the wider verkle/verkle-adjacent pack uses for content
// addressing (crypto.Keccak256Hash).
func IdentifierOf(b []byte) Identifier {
	return crypto.Keccak256Hash(b)
}

// Storable is the external capability the core's persistence bridge
// consumes: a type that can be turned into bytes, and whose bytes have a
// stable content Identifier. Deserialization is necessarily specific to
// the concrete C/L, so it is supplied as an explicit decode function
// rather than a capability on the interface (Go has no way to return
// Self from an interface method).
type Storable interface {
	Marshal() ([]byte, error)
}

// IdentifierOfStorable serializes s and hashes the result.
func IdentifierOfStorable(s Storable) (Identifier, error) {
	b, err := s.Marshal()
	if err != nil {
		return Identifier{}, err
	}
	return IdentifierOf(b), nil
}

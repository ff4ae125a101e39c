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

package store

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/kelvin-tree/kelvin"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDB is an on-disk kelvin.Backend backed by goleveldb, the same
// on-disk key-value store the teacher module's own go.mod graph carries
// (it backs go-ethereum's freezer/state database). It provides no
// consistency guarantees beyond what goleveldb's own write-ahead log
// gives it; kelvin adds no transaction protocol of its own on top.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens (creating if necessary) a LevelDB-backed Backend at
// path.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open leveldb at %q", path)
	}
	log.Info("opened leveldb backend", "path", path)
	return &LevelDB{db: db}, nil
}

// Put implements kelvin.Backend.
func (l *LevelDB) Put(b []byte) (kelvin.Identifier, error) {
	id := kelvin.IdentifierOf(b)
	if err := l.db.Put(id.Bytes(), b, nil); err != nil {
		return kelvin.Identifier{}, errors.Wrapf(err, "store: put %s", id)
	}
	return id, nil
}

// Get implements kelvin.Backend.
func (l *LevelDB) Get(id kelvin.Identifier) ([]byte, error) {
	b, err := l.db.Get(id.Bytes(), nil)
	if err == leveldb.ErrNotFound {
		return nil, &kelvin.PersistError{Kind: kelvin.PersistMissing, ID: id}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: get %s", id)
	}
	return b, nil
}

// Close releases the underlying database handle.
func (l *LevelDB) Close() error {
	if err := l.db.Close(); err != nil {
		return errors.Wrap(err, "store: close leveldb")
	}
	log.Info("closed leveldb backend")
	return nil
}

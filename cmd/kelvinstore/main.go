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

// Command kelvinstore is a small demo CLI wiring a collections/list
// list through a leveldb-backed kelvin.Backend: push prepends a value to
// a list persisted at a given database path, and get walks straight to
// the n-th element without decoding the whole list.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/kelvin-tree/kelvin"
	"github.com/kelvin-tree/kelvin/collections/list"
	"github.com/kelvin-tree/kelvin/store"
	"github.com/urfave/cli/v2"
)

var rootFlag = &cli.StringFlag{
	Name:     "db",
	Usage:    "path to the leveldb database",
	Required: true,
}

func main() {
	app := &cli.App{
		Name:  "kelvinstore",
		Usage: "persist and query a kelvin list through a leveldb backend",
		Commands: []*cli.Command{
			{
				Name:      "push",
				Usage:     "prepend a value to the list rooted at --root (or start a new one)",
				Flags:     []cli.Flag{rootFlag, &cli.StringFlag{Name: "root", Usage: "hex identifier of the existing list root, if any"}},
				ArgsUsage: "<value>",
				Action:    push,
			},
			{
				Name:      "get",
				Usage:     "print the n-th element of the list rooted at --root",
				Flags:     []cli.Flag{rootFlag, &cli.StringFlag{Name: "root", Required: true}},
				ArgsUsage: "<n>",
				Action:    get,
			},
			{
				Name:   "len",
				Usage:  "print the length of the list rooted at --root, decoding only its head",
				Flags:  []cli.Flag{rootFlag, &cli.StringFlag{Name: "root", Required: true}},
				Action: length,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("kelvinstore failed", "err", err)
		os.Exit(1)
	}
}

func openBackend(c *cli.Context) (*store.LevelDB, error) {
	db, err := store.OpenLevelDB(c.String("db"))
	if err != nil {
		return nil, err
	}
	// Restored Links resolve identifiers through the process-wide registry.
	kelvin.Register(db)
	return db, nil
}

func parseRoot(c *cli.Context) (kelvin.PersistedId[kelvin.Cardinality[string]], bool, error) {
	raw := c.String("root")
	if raw == "" {
		return kelvin.PersistedId[kelvin.Cardinality[string]]{}, false, nil
	}
	var id kelvin.Identifier
	b, err := decodeHex(raw)
	if err != nil {
		return kelvin.PersistedId[kelvin.Cardinality[string]]{}, false, err
	}
	copy(id[:], b)
	// The CLI doesn't persist the root's cached Cardinality alongside
	// its hex identifier (there is nowhere to store it between
	// invocations short of a second file), so reopening a root here
	// costs one decode to recompute it; every subsequent Nth/len call
	// within the same process is then free.
	link := list.Restore[string](kelvin.PersistedId[kelvin.Cardinality[string]]{ID: id})
	head, err := link.Inner()
	if err != nil {
		return kelvin.PersistedId[kelvin.Cardinality[string]]{}, false, err
	}
	return kelvin.PersistedId[kelvin.Cardinality[string]]{ID: id, Annotation: kelvin.CombineNode[*list.Node[string], kelvin.Cardinality[string], string](head)}, true, nil
}

func push(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("push: expected exactly one value argument")
	}
	backend, err := openBackend(c)
	if err != nil {
		return err
	}
	defer backend.Close()

	var tail *list.Node[string]
	pid, ok, err := parseRoot(c)
	if err != nil {
		return err
	}
	if ok {
		link := list.Restore[string](pid)
		tail, err = link.Inner()
		if err != nil {
			return err
		}
	}

	head := list.Prepend(c.Args().Get(0), tail)
	newPid, err := list.Persist[string](head, backend)
	if err != nil {
		return err
	}
	log.Info("pushed", "root", newPid.ID, "len", list.Len(head))
	fmt.Println(newPid.ID)
	return nil
}

func get(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("get: expected exactly one index argument")
	}
	n, err := strconv.ParseUint(c.Args().Get(0), 10, 64)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	backend, err := openBackend(c)
	if err != nil {
		return err
	}
	defer backend.Close()

	pid, ok, err := parseRoot(c)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("get: --root is required")
	}
	link := list.Restore[string](pid)
	head, err := link.Inner()
	if err != nil {
		return err
	}

	branch, err := kelvin.Nth[*list.Node[string], kelvin.Cardinality[string], string](head, n)
	if err != nil {
		return err
	}
	if branch == nil {
		return fmt.Errorf("get: index %d out of range", n)
	}
	fmt.Println(*branch.Leaf())
	return nil
}

func length(c *cli.Context) error {
	backend, err := openBackend(c)
	if err != nil {
		return err
	}
	defer backend.Close()

	pid, ok, err := parseRoot(c)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("len: --root is required")
	}
	fmt.Println(uint64(pid.Annotation))
	return nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b := make([]byte, len(s)/2)
	for i := range b {
		hi, err := hexDigit(s[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(s[i*2+1])
		if err != nil {
			return nil, err
		}
		b[i] = hi<<4 | lo
	}
	return b, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}

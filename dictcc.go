// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictcc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictcc/db"
)

// LangDirKey is the reserved metadata key holding a direction's language
// pair label, e.g. "DE => EN". Its value is stored as a plain string, not an
// encoded entry.
const LangDirKey = "__dictcc_lang_dir"

// fileScheme is the store file name for a direction.
const fileScheme = "dict_%s.db"

// Direction identifies one translation orientation of a dictionary pair.
type Direction struct {
	// ID is the direction's store identity.
	ID string

	// Label is the fallback language pair label used when the store holds
	// no metadata.
	Label string
}

// Directions is the fixed pair of translation directions in query order.
var Directions = []Direction{
	{ID: "a", Label: "A => B"},
	{ID: "b", Label: "B => A"},
}

// DefaultDir returns the default dictionary directory under the user's home
// directory.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pdictcc"
	}
	return filepath.Join(homeDir, ".pdictcc")
}

// Dict is a dictionary database pair rooted under a single directory.
//
// Dict caches one store handle per direction so that nested operations
// within one command share the same reference counted handle. Dict is not
// safe for concurrent use.
type Dict struct {
	// Out receives user-visible notices, such as overwrite warnings during
	// import. It defaults to io.Discard.
	Out io.Writer

	dir    string
	stores map[string]*db.Store
}

// New returns a Dict rooted at the given directory. If dir is empty the
// default directory is used. No filesystem access happens until a store is
// acquired.
func New(dir string) *Dict {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Dict{
		Out:    io.Discard,
		dir:    dir,
		stores: map[string]*db.Store{},
	}
}

// Dir returns the dictionary's root directory.
func (d *Dict) Dir() string {
	return d.dir
}

// storePath returns the store file path for a direction.
func (d *Dict) storePath(id string) string {
	return filepath.Join(d.dir, fmt.Sprintf(fileScheme, id))
}

// store returns the cached read store for a direction.
func (d *Dict) store(id string) *db.Store {
	s, ok := d.stores[id]
	if !ok {
		s = db.New(d.storePath(id), false)
		d.stores[id] = s
	}
	return s
}

// Size returns the number of stored keys in a direction, counted by full
// iteration. The count includes the reserved metadata key.
func (d *Dict) Size(id string) (int, error) {
	s := d.store(id)
	if err := s.Acquire(); err != nil {
		return 0, err
	}
	defer s.Release()

	return s.Len()
}

// Header returns the language pair label stored in a direction, or the empty
// string if the store holds no metadata.
func (d *Dict) Header(id string) (string, error) {
	s := d.store(id)
	if err := s.Acquire(); err != nil {
		return "", err
	}
	defer s.Release()

	return s.GetDefault(LangDirKey, "")
}

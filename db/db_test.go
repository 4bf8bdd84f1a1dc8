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

package db_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"

	"github.com/ianlewis/go-dictcc/db"
)

// openStore acquires a fresh importing store under a temporary directory.
func openStore(t *testing.T) *db.Store {
	t.Helper()

	s := db.New(filepath.Join(t.TempDir(), "dict_a.db"), true)
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Release()
	})
	return s
}

// TestStore_GetSet tests Store.Get and Store.Set.
func TestStore_GetSet(t *testing.T) {
	t.Parallel()

	s := openStore(t)

	if err := s.Set("run", "laufen"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, err := s.Get("run")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "laufen" {
		t.Errorf("Get: expected %q, got %q", "laufen", v)
	}

	// Overwrite.
	if err := s.Set("run", "rennen"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err = s.Get("run")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "rennen" {
		t.Errorf("Get: expected %q, got %q", "rennen", v)
	}

	if _, err := s.Get("walk"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}

	v, err = s.GetDefault("walk", "")
	if err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	if v != "" {
		t.Errorf("GetDefault: expected empty value, got %q", v)
	}
}

// TestStore_Iterate tests Store.Iterate and Store.Len.
func TestStore_Iterate(t *testing.T) {
	t.Parallel()

	s := openStore(t)

	records := map[string]string{
		"run":  "laufen",
		"walk": "gehen",
		"go":   "gehen",
	}
	if err := s.SetAll(records); err != nil {
		t.Fatalf("SetAll: %v", err)
	}

	got := map[string]string{}
	if err := s.Iterate(func(key, value string) error {
		got[key] = value
		return nil
	}); err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Iterate (-want, +got):\n%s", diff)
	}

	n, err := s.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != len(records) {
		t.Errorf("Len: expected %d, got %d", len(records), n)
	}
}

// TestStore_refCounting tests nested Acquire and Release calls.
func TestStore_refCounting(t *testing.T) {
	t.Parallel()

	s := openStore(t)

	// Nested acquire shares the handle; releasing it keeps the store open.
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := s.Set("run", "laufen"); err != nil {
		t.Errorf("Set after nested release: %v", err)
	}
}

// TestStore_closed tests operations on a store that is not acquired.
func TestStore_closed(t *testing.T) {
	t.Parallel()

	s := db.New(filepath.Join(t.TempDir(), "dict_a.db"), true)
	if _, err := s.Get("run"); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Get: expected ErrClosed, got %v", err)
	}
	if err := s.Release(); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Release: expected ErrClosed, got %v", err)
	}
}

// TestStore_missingDirectory tests acquiring a store under a directory that
// was never imported into.
func TestStore_missingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nonexistent", "dict_a.db")

	s := db.New(path, false)
	if err := s.Acquire(); !errors.Is(err, db.ErrMissing) {
		t.Fatalf("Acquire: expected ErrMissing, got %v", err)
	}

	// The importing store creates the directory.
	imp := db.New(path, true)
	if err := imp.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := imp.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

// TestStore_truncate tests that an importing store discards prior contents.
func TestStore_truncate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dict_a.db")

	s := db.New(path, true)
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := s.Set("run", "laufen"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	s = db.New(path, true)
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer func() {
		_ = s.Release()
	}()

	n, err := s.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != 0 {
		t.Errorf("Len: expected empty store after truncate, got %d keys", n)
	}
}

// TestStore_invalidUTF8 tests that invalid UTF-8 data fails with ErrDecode.
func TestStore_invalidUTF8(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dict_a.db")

	// Write raw invalid bytes directly to the backing file.
	raw, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("bolt.Open: %v", err)
	}
	err = raw.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("entries"))
		if err != nil {
			return err
		}
		return b.Put([]byte("run"), []byte{0xff, 0xfe})
	})
	if err != nil {
		t.Fatalf("writing raw value: %v", err)
	}
	if err := raw.Close(); err != nil {
		t.Fatalf("closing raw db: %v", err)
	}

	s := db.New(path, false)
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer func() {
		_ = s.Release()
	}()

	if _, err := s.Get("run"); !errors.Is(err, db.ErrDecode) {
		t.Errorf("Get: expected ErrDecode, got %v", err)
	}
	if err := s.Iterate(func(_, _ string) error { return nil }); !errors.Is(err, db.ErrDecode) {
		t.Errorf("Iterate: expected ErrDecode, got %v", err)
	}
}

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

// Package db implements the durable key-value store backing a dictionary
// direction.
//
// Each store is a single bbolt database file containing one bucket. Keys and
// values are UTF-8 text. Stores are reference counted: nested Acquire calls
// share one underlying handle and only the last matching Release closes it.
// A Store is not safe for concurrent use and concurrent writers to the same
// file are unsupported.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	bolt "go.etcd.io/bbolt"
)

// bucketName is the bucket holding all records in a store file.
var bucketName = []byte("entries")

var (
	// ErrNotFound indicates that a key is not present in the store.
	ErrNotFound = errors.New("key not found")

	// ErrMissing indicates that the store's directory does not exist and no
	// dictionary has been imported into it.
	ErrMissing = errors.New("no dictionary database")

	// ErrDecode indicates that stored bytes are not valid UTF-8 text.
	ErrDecode = errors.New("invalid UTF-8 data")

	// ErrClosed indicates an operation on a store that is not acquired.
	ErrClosed = errors.New("store is not open")
)

// Store is a reference counted handle to a key-value store file.
type Store struct {
	path     string
	truncate bool

	refs int
	db   *bolt.DB
}

// New returns an unopened store for the given file path. If truncate is true
// the first Acquire creates the parent directory if needed and starts from an
// empty store, discarding any previous contents.
func New(path string, truncate bool) *Store {
	return &Store{
		path:     path,
		truncate: truncate,
	}
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Exists returns true if the store file exists on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Acquire opens the store. Nested calls share the underlying handle; each
// call must be paired with a Release. Acquiring a store whose directory was
// never imported into fails with ErrMissing unless the store truncates.
func (s *Store) Acquire() error {
	if s.refs > 0 {
		s.refs++
		return nil
	}

	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("opening %q: %w", s.path, err)
		}
		if !s.truncate {
			return fmt.Errorf("%w: there is no %q directory: you have to import a dict.cc database file first", ErrMissing, dir)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}

	if s.truncate {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %q: %w", s.path, err)
		}
	}

	db, err := bolt.Open(s.path, 0o600, nil)
	if err != nil {
		return fmt.Errorf("opening %q: %w", s.path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return fmt.Errorf("initializing %q: %w", s.path, err)
	}

	s.db = db
	s.refs = 1
	return nil
}

// Release releases the store handle. The underlying file is closed when the
// outermost Acquire is released.
func (s *Store) Release() error {
	if s.refs == 0 {
		return ErrClosed
	}
	s.refs--
	if s.refs > 0 {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing %q: %w", s.path, err)
	}
	return nil
}

// Get returns the value stored under key. It fails with ErrNotFound if the
// key is not present.
func (s *Store) Get(key string) (string, error) {
	if s.db == nil {
		return "", ErrClosed
	}
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		var err error
		value, err = decode(v)
		return err
	})
	return value, err
}

// GetDefault returns the value stored under key, or def if the key is not
// present.
func (s *Store) GetDefault(key, def string) (string, error) {
	value, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return value, err
}

// Set stores value under key, inserting or overwriting, in its own
// transaction.
func (s *Store) Set(key, value string) error {
	return s.SetAll(map[string]string{key: value})
}

// SetAll stores every key-value pair in a single transaction.
func (s *Store) SetAll(records map[string]string) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for key, value := range records {
			if !utf8.ValidString(key) || !utf8.ValidString(value) {
				return fmt.Errorf("%w: key %q", ErrDecode, key)
			}
			if err := b.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("writing %q: %w", key, err)
			}
		}
		return nil
	})
}

// Iterate calls fn for every key-value pair in the store. Iteration stops at
// the first error.
func (s *Store) Iterate(fn func(key, value string) error) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			key, err := decode(k)
			if err != nil {
				return err
			}
			value, err := decode(v)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			return fn(key, value)
		})
	})
}

// Len returns the number of keys in the store by full iteration.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.Iterate(func(_, _ string) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// decode decodes stored bytes as UTF-8 text. Invalid bytes are an error, not
// silently replaced.
func decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %q", ErrDecode, b)
	}
	return string(b), nil
}

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
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ianlewis/go-dictcc/db"
	"github.com/ianlewis/go-dictcc/entry"
	"github.com/ianlewis/go-dictcc/headword"
)

var (
	// ErrFormat indicates that an import input is not a dict.cc vocabulary
	// database dump.
	ErrFormat = errors.New("not a dict.cc vocabulary database")

	// ErrMalformedLine indicates a dump line that does not consist of
	// exactly three tab-separated fields. The whole import run is aborted.
	ErrMalformedLine = errors.New("malformed line")
)

// dumpHeader matches the language pair header on the first non-blank line of
// a dump, e.g. "# DE-EN vocabulary database".
var dumpHeader = regexp.MustCompile(`^# ([A-Z]{2})-([A-Z]{2}) vocabulary database`)

// maxLineSize is the maximum accepted dump line length. dict.cc lines are
// short but annotated phrases can exceed bufio's default token size.
const maxLineSize = 1024 * 1024

// Import imports a dict.cc vocabulary dump and persists both translation
// directions, overwriting any prior stores under the dictionary directory.
// Overwrite notices are written to d.Out.
//
// The full dump is parsed before any store is touched, so a malformed dump
// never leaves a partially written database. A line with the wrong number of
// fields aborts the run with ErrMalformedLine; there is no per-line
// recovery.
//
// The returned counts are the number of keys written per direction. They
// include the reserved metadata key, matching pdictcc's behavior.
func (d *Dict) Import(r io.Reader) (int, int, error) {
	forward := map[string]*entry.Entry{}
	reverse := map[string]*entry.Entry{}
	var labels [2]string

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	sawHeader := false
	lineno := 0
	for s.Scan() {
		lineno++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sawHeader {
			m := dumpHeader.FindStringSubmatch(line)
			if m == nil {
				return 0, 0, fmt.Errorf("%w: missing %q header", ErrFormat, "# XX-YY vocabulary database")
			}
			labels = [2]string{m[1] + " => " + m[2], m[2] + " => " + m[1]}
			sawHeader = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return 0, 0, fmt.Errorf("%w: line %d: expected 3 tab-separated fields, got %d", ErrMalformedLine, lineno, len(fields))
		}
		phrase, translation := fields[0], fields[1]
		addRecord(forward, phrase, translation)
		addRecord(reverse, translation, phrase)
	}
	if err := s.Err(); err != nil {
		return 0, 0, fmt.Errorf("reading dump: %w", err)
	}
	if !sawHeader {
		return 0, 0, fmt.Errorf("%w: missing %q header", ErrFormat, "# XX-YY vocabulary database")
	}

	countA, err := d.persist(Directions[0], labels[0], forward)
	if err != nil {
		return 0, 0, err
	}
	countB, err := d.persist(Directions[1], labels[1], reverse)
	if err != nil {
		return 0, 0, err
	}
	return countA, countB, nil
}

// ImportFile imports a dict.cc vocabulary dump file. Files with a .gz or .dz
// extension are decompressed transparently.
func (d *Dict) ImportFile(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".dz":
		// dictzip files are valid gzip streams so both extensions go
		// through the same reader.
		zr, err := gzip.NewReader(f)
		if err != nil {
			return 0, 0, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return d.Import(r)
}

// addRecord indexes one phrase-translation pair under the phrase's headword.
// Phrases without a headword cannot be indexed and are skipped for that
// direction only.
func addRecord(dict map[string]*entry.Entry, phrase, translation string) {
	key := headword.Extract(phrase)
	if key == "" {
		return
	}
	e, ok := dict[key]
	if !ok {
		e = entry.New()
		dict[key] = e
	}
	e.Add(phrase, translation)
}

// persist writes one direction's dictionary into its store, replacing any
// prior store file. The metadata key is written verbatim; every other value
// is entry encoded. All records are written in a single transaction.
func (d *Dict) persist(dir Direction, label string, entries map[string]*entry.Entry) (int, error) {
	s := db.New(d.storePath(dir.ID), true)
	if s.Exists() {
		fmt.Fprintf(d.Out, "Will overwrite %q\n", s.Path())
	}
	if err := s.Acquire(); err != nil {
		return 0, err
	}

	records := make(map[string]string, len(entries)+1)
	records[LangDirKey] = label
	for key, e := range entries {
		records[key] = e.Encode()
	}
	if err := s.SetAll(records); err != nil {
		s.Release()
		return 0, err
	}

	if err := s.Release(); err != nil {
		return 0, err
	}
	return len(records), nil
}

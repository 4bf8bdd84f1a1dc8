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
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-dictcc/entry"
)

// Export writes one direction's contents to w as a dict.cc vocabulary dump
// and returns the number of lines written. The output can be re-imported
// with Import.
//
// The word type column is not persisted in the store and is emitted empty.
// Export requires the direction's language metadata to reconstruct the dump
// header.
func (d *Dict) Export(id string, w io.Writer) (int, error) {
	s := d.store(id)
	if err := s.Acquire(); err != nil {
		return 0, err
	}
	defer s.Release()

	// Header re-acquires the store; the nested acquire shares the handle.
	label, err := d.Header(id)
	if err != nil {
		return 0, err
	}
	src, dst, found := strings.Cut(label, " => ")
	if !found {
		return 0, fmt.Errorf("direction %q: no language metadata to build a dump header from", id)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s-%s vocabulary database\n", src, dst)

	n := 0
	err = s.Iterate(func(key, value string) error {
		if key == LangDirKey {
			return nil
		}
		e, err := entry.Decode(value)
		if err != nil {
			return err
		}
		for _, phrase := range e.Phrases() {
			for _, translation := range e.Translations(phrase) {
				if _, err := fmt.Fprintf(bw, "%s\t%s\t\n", phrase, translation); err != nil {
					return err
				}
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("writing dump: %w", err)
	}
	return n, nil
}

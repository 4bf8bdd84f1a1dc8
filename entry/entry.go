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

// Package entry implements dictionary entries and their database encoding.
//
// An entry collects all phrases, and their translations, that share a single
// headword. Entries are stored as a single database value using a delimited
// text format inherited from pdictcc:
//
//	phrase=<>translation:<>:translation#<>#phrase=<>translation
//
// Phrase groups are separated by "#<>#", a phrase is separated from its
// translations by "=<>", and translations are separated from each other by
// ":<>:". The format has no escaping. Phrases or translations containing one
// of the three delimiter sequences cannot be represented and will corrupt the
// record. This is a known limitation of the format and is kept for
// compatibility with existing pdictcc databases.
package entry

import (
	"errors"
	"fmt"
	"strings"
)

const (
	groupSep       = "#<>#"
	phraseSep      = "=<>"
	translationSep = ":<>:"
)

// ErrMalformed indicates that a stored value is not a valid encoded entry.
var ErrMalformed = errors.New("malformed entry")

// Entry is the collection of all phrases and corresponding translations that
// share a headword. Phrases are unique within an entry and retain insertion
// order. Translations retain insertion order and may repeat.
type Entry struct {
	phrases      []string
	translations map[string][]string
}

// New returns a new empty Entry.
func New() *Entry {
	return &Entry{
		translations: map[string][]string{},
	}
}

// Decode decodes an entry from its database encoding. An empty string decodes
// to an empty entry.
func Decode(encoded string) (*Entry, error) {
	e := New()
	if encoded == "" {
		return e, nil
	}
	for _, group := range strings.Split(encoded, groupSep) {
		phrase, blob, found := strings.Cut(group, phraseSep)
		if !found {
			return nil, fmt.Errorf("%w: phrase group %q", ErrMalformed, group)
		}
		for _, translation := range strings.Split(blob, translationSep) {
			e.add(phrase, translation)
		}
	}
	return e, nil
}

// Add adds a phrase and one of its translations to the entry. Surrounding
// whitespace is trimmed from both.
func (e *Entry) Add(phrase, translation string) {
	e.add(strings.TrimSpace(phrase), strings.TrimSpace(translation))
}

func (e *Entry) add(phrase, translation string) {
	if _, ok := e.translations[phrase]; !ok {
		e.phrases = append(e.phrases, phrase)
	}
	e.translations[phrase] = append(e.translations[phrase], translation)
}

// Empty returns true if the entry contains no phrases.
func (e *Entry) Empty() bool {
	return len(e.phrases) == 0
}

// Phrases returns the entry's phrases in insertion order.
func (e *Entry) Phrases() []string {
	return e.phrases
}

// Translations returns the translations for the given phrase in insertion
// order.
func (e *Entry) Translations(phrase string) []string {
	return e.translations[phrase]
}

// Encode returns the entry in its database encoding. Decode is its inverse
// for phrases and translations free of the delimiter sequences.
func (e *Entry) Encode() string {
	groups := make([]string, 0, len(e.phrases))
	for _, phrase := range e.phrases {
		groups = append(groups, phrase+phraseSep+strings.Join(e.translations[phrase], translationSep))
	}
	return strings.Join(groups, groupSep)
}

// Format returns the entry formatted for terminal output. The compact format
// is a single line per phrase. The default format lists each translation on
// its own indented line.
func (e *Entry) Format(compact bool) string {
	var b strings.Builder
	for i, phrase := range e.phrases {
		if i > 0 {
			b.WriteString("\n")
		}
		if compact {
			b.WriteString("- " + phrase + ": " + strings.Join(e.translations[phrase], " / "))
		} else {
			b.WriteString(phrase + ":\n    - " + strings.Join(e.translations[phrase], "\n    - "))
		}
	}
	return b.String()
}

// String returns the default terminal format of the Entry.
func (e *Entry) String() string {
	return e.Format(false)
}

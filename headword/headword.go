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

// Package headword extracts the database lookup key from a dict.cc phrase.
//
// dict.cc phrases are verbose annotated strings such as
// "to go (away) [coll.]". The headword is the longest word that survives
// removing annotations and is used as the key for constant time lookups.
package headword

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// bracketed matches a parenthesized, braced, or square bracketed span that
// does not itself contain an opening bracket of the same kind. Spans are
// removed in a single pass. Nested or unbalanced brackets leave residue that
// is treated as ordinary tokens.
var bracketed = regexp.MustCompile(`\([^(]*\)|\{[^{]*\}|\[[^\[]*\]`)

// separators maps the punctuation characters '.', ',', '<' and '>' to
// spaces so that they act as word separators.
var separators = runes.Map(func(r rune) rune {
	switch r {
	case '.', ',', '<', '>':
		return ' '
	}
	return r
})

// Extract extracts the headword from a phrase.
//
// The phrase is lowercased, bracketed annotation spans are stripped, and the
// longest remaining word is returned. Ties are broken by first occurrence.
// Word length is measured in runes, not bytes. The empty string is returned
// when no word survives; such phrases cannot be indexed and must be skipped
// by the caller.
func Extract(phrase string) string {
	s := cases.Lower(language.Und).String(phrase)
	s = bracketed.ReplaceAllString(s, "")
	// runes.Map never returns an error.
	s, _, _ = transform.String(separators, s)

	var longest string
	length := 0
	for _, word := range strings.Fields(s) {
		if n := utf8.RuneCountInString(word); n > length {
			longest = word
			length = n
		}
	}
	return longest
}

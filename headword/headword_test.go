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

package headword_test

import (
	"testing"

	"github.com/ianlewis/go-dictcc/headword"
)

// TestExtract tests Extract.
func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phrase string

		expected string
	}{
		{
			name:     "empty phrase",
			phrase:   "",
			expected: "",
		},
		{
			name:     "single word",
			phrase:   "Haus",
			expected: "haus",
		},
		{
			name:     "longest word wins",
			phrase:   "a house",
			expected: "house",
		},
		{
			name: "equal length tie broken by first occurrence",
			// "away" and "coll." are stripped leaving "to" and "go", both
			// two runes long.
			phrase:   "to go (away) [coll.]",
			expected: "to",
		},
		{
			name:     "only brackets",
			phrase:   "(only) [brackets]",
			expected: "",
		},
		{
			name:     "braces stripped",
			phrase:   "Haus {n}",
			expected: "haus",
		},
		{
			name:     "punctuation separates words",
			phrase:   "etw.,jdn. begutachten",
			expected: "begutachten",
		},
		{
			name:     "angle brackets separate words",
			phrase:   "kg <kilogram>",
			expected: "kilogram",
		},
		{
			name:     "length measured in runes",
			phrase:   "Tür raum",
			expected: "raum",
		},
		{
			name: "nested brackets stripped non-recursively",
			// The inner span "(nested)" is removed in a single pass. The
			// unbalanced leftovers become ordinary tokens.
			phrase:   "((nested) brackets) x",
			expected: "brackets)",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := headword.Extract(test.phrase)
			if got != test.expected {
				t.Errorf("Extract(%q): expected %q, got %q", test.phrase, test.expected, got)
			}
		})
	}
}

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
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ianlewis/go-dictcc/entry"
)

// Mode is a query evaluation strategy.
type Mode int

const (
	// ModeSimple is an exact headword lookup. O(1).
	ModeSimple Mode = iota

	// ModeRegexp matches a regular expression against the start of every
	// headword. O(n) over stored entries.
	ModeRegexp

	// ModeFulltext searches a case-insensitive regular expression anywhere
	// in every stored entry. O(n) over stored entries.
	ModeFulltext
)

// Query mode prefixes.
const (
	regexpPrefix   = ":r:"
	fulltextPrefix = ":f:"
)

// NoResults is returned by Query when no direction yields any result.
const NoResults = "No results."

// headerLine formats a direction's section header.
func headerLine(label string) string {
	bar := strings.Repeat("=", 15)
	return bar + " [ " + label + " ] " + bar
}

// parseQuery resolves the query mode from the raw query's prefix. The prefix
// is stripped and the remaining query text is lowercased in every mode.
func parseQuery(raw string) (Mode, string) {
	switch {
	case strings.HasPrefix(raw, regexpPrefix):
		return ModeRegexp, strings.ToLower(raw[len(regexpPrefix):])
	case strings.HasPrefix(raw, fulltextPrefix):
		return ModeFulltext, strings.ToLower(raw[len(fulltextPrefix):])
	default:
		return ModeSimple, strings.ToLower(raw)
	}
}

// Query executes a query against both dictionary directions and returns the
// formatted results.
//
// A query may be prefixed with ":r:" to match a regular expression against
// headwords or with ":f:" for a full text search. Both scan linearly over
// the store; unprefixed queries are constant time exact lookups.
//
// Directions are scanned in fixed order. A failure opening one direction
// does not prevent scanning the other; such failures are joined into the
// returned error alongside any results.
func (d *Dict) Query(raw string, compact bool) (string, error) {
	mode, query := parseQuery(raw)

	var rx *regexp.Regexp
	var err error
	switch mode {
	case ModeRegexp:
		// Anchored at the start of the headword, not a full match.
		rx, err = regexp.Compile(`\A(?:` + query + `)`)
	case ModeFulltext:
		rx, err = regexp.Compile(`(?i)` + query)
	case ModeSimple:
	}
	if err != nil {
		return "", fmt.Errorf("invalid query pattern %q: %w", query, err)
	}

	var sections []string
	var errs []error
	for _, dir := range Directions {
		section, err := d.queryDirection(dir, mode, query, rx, compact)
		if err != nil {
			errs = append(errs, fmt.Errorf("direction %q: %w", dir.ID, err))
			continue
		}
		// Directions without results are omitted entirely.
		if section != "" {
			sections = append(sections, section)
		}
	}

	if len(errs) > 0 {
		return strings.Join(sections, "\n"), errors.Join(errs...)
	}
	if len(sections) == 0 {
		return NoResults, nil
	}
	return strings.Join(sections, "\n"), nil
}

// queryDirection runs the selected strategy against one direction's store
// and returns the formatted section, or the empty string if the direction
// yields no results.
func (d *Dict) queryDirection(dir Direction, mode Mode, query string, rx *regexp.Regexp, compact bool) (string, error) {
	s := d.store(dir.ID)
	if err := s.Acquire(); err != nil {
		return "", err
	}
	defer s.Release()

	// Header re-acquires the store; the nested acquire shares the handle.
	label, err := d.Header(dir.ID)
	if err != nil {
		return "", err
	}
	if label == "" {
		label = dir.Label
	}

	var entries []*entry.Entry
	collect := func(value string) error {
		e, err := entry.Decode(value)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	}

	switch mode {
	case ModeSimple:
		value, err := s.GetDefault(query, "")
		if err != nil {
			return "", err
		}
		if err := collect(value); err != nil {
			return "", err
		}
	case ModeRegexp:
		err = s.Iterate(func(key, value string) error {
			// The metadata value is not an encoded entry.
			if key == LangDirKey || !rx.MatchString(key) {
				return nil
			}
			return collect(value)
		})
	case ModeFulltext:
		err = s.Iterate(func(key, value string) error {
			if key == LangDirKey || !rx.MatchString(value) {
				return nil
			}
			return collect(value)
		})
	}
	if err != nil {
		return "", err
	}

	var formatted []string
	for _, e := range entries {
		if !e.Empty() {
			formatted = append(formatted, e.Format(compact))
		}
	}
	if len(formatted) == 0 {
		return "", nil
	}
	return headerLine(label) + "\n" + strings.Join(formatted, "\n"), nil
}

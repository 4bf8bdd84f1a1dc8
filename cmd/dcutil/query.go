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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Aliases:   []string{"q"},
	Usage:     "Query the dictionary",
	ArgsUsage: "QUERY...",
	Description: "Query both translation directions. Queries may be prefixed with\n" +
		"`:r:` for a regular expression match over headwords or `:f:` for a\n" +
		"fulltext search. Unprefixed queries are exact headword lookups.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "regexp",
			Usage:   "match QUERY as a regular expression against headwords",
			Aliases: []string{"r"},
		},
		&cli.BoolFlag{
			Name:    "fulltext",
			Usage:   "search QUERY as a regular expression in full entries",
			Aliases: []string{"f"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no query given", ErrFlagParse)
		}

		queries := c.Args().Slice()
		for i, q := range queries {
			switch {
			case c.Bool("regexp"):
				queries[i] = ":r:" + q
			case c.Bool("fulltext"):
				queries[i] = ":f:" + q
			}
		}
		return runQueries(c, queries)
	},
}

// runQueries executes each query in order and prints the formatted results.
func runQueries(c *cli.Context, queries []string) error {
	d := openDict(c)
	for _, q := range queries {
		result, err := d.Query(q, c.Bool("compact"))
		if result != "" {
			fmt.Fprintln(c.App.Writer, result)
		}
		if err != nil {
			return fmt.Errorf("querying %q: %w", q, err)
		}
	}
	return nil
}

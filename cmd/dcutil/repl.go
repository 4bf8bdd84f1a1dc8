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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// runREPL runs the interactive query loop. It reads queries from stdin until
// EOF.
func runREPL(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, "Welcome to the interactive mode: You can type queries here.")
	fmt.Fprintln(c.App.Writer, "Prefix your query with `:r:` to issue a regular expression query and with `:f:` for a fulltext query.")
	fmt.Fprintln(c.App.Writer, "Enter C-d (Ctrl + d) to exit.")

	d := openDict(c)
	s := bufio.NewScanner(os.Stdin)
	fmt.Fprint(c.App.Writer, "=> ")
	for s.Scan() {
		query := strings.TrimSpace(s.Text())
		if query != "" {
			result, err := d.Query(query, c.Bool("compact"))
			if result != "" {
				fmt.Fprintln(c.App.Writer, result)
			}
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
			}
		}
		fmt.Fprint(c.App.Writer, "=> ")
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading query: %w", err)
	}
	fmt.Fprintln(c.App.Writer)
	return nil
}

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

var importCommand = &cli.Command{
	Name:      "import",
	Aliases:   []string{"i"},
	Usage:     "Import a dict.cc vocabulary dump",
	ArgsUsage: "FILE",
	Description: "Import a tab-separated dict.cc vocabulary dump into the dictionary\n" +
		"directory, building both translation directions. Files ending in .gz or\n" +
		".dz are decompressed transparently. Existing databases are overwritten.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one dump file", ErrFlagParse)
		}
		path := c.Args().Get(0)

		d := openDict(c)
		fmt.Fprintf(c.App.Writer, "Importing from %q\n", path)
		countA, countB, err := d.ImportFile(path)
		if err != nil {
			return fmt.Errorf("importing %q: %w", path, err)
		}
		fmt.Fprintf(c.App.Writer, "Imported %d (A => B) and %d (B => A) entries\n", countA, countB)
		return nil
	},
}

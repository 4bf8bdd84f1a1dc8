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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	dictcc "github.com/ianlewis/go-dictcc"
)

var sizeCommand = &cli.Command{
	Name:    "size",
	Aliases: []string{"S"},
	Usage:   "Show the number of entries in each direction",
	Action: func(c *cli.Context) error {
		d := openDict(c)

		tbl := table.New("Direction", "Languages", "Entries").WithWriter(c.App.Writer)
		for _, dir := range dictcc.Directions {
			label, err := d.Header(dir.ID)
			if err != nil {
				return fmt.Errorf("reading header %q: %w", dir.ID, err)
			}
			if label == "" {
				label = dir.Label
			}

			n, err := d.Size(dir.ID)
			if err != nil {
				return fmt.Errorf("counting entries %q: %w", dir.ID, err)
			}

			tbl.AddRow(dir.ID, label, n)
		}
		tbl.Print()
		return nil
	},
}

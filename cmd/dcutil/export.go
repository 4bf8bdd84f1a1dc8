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
	"io"
	"os"

	"github.com/ianlewis/go-dictzip"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export a direction back to a dict.cc vocabulary dump",
	ArgsUsage: "FILE",
	Description: "Write a direction's contents as a dict.cc vocabulary dump that can\n" +
		"be re-imported. The word type column is not stored and is left empty.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "direction",
			Usage: "direction to export (\"a\" or \"b\")",
			Value: "a",
		},
		&cli.BoolFlag{
			Name:    "dictzip",
			Usage:   "compress the dump with dictzip",
			Aliases: []string{"z"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one output file", ErrFlagParse)
		}
		path := c.Args().Get(0)

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %q: %w", path, err)
		}

		var w io.Writer = f
		var zw *dictzip.Writer
		if c.Bool("dictzip") {
			zw, err = dictzip.NewWriter(f)
			if err != nil {
				f.Close()
				return fmt.Errorf("creating %q: %w", path, err)
			}
			w = zw
		}

		d := openDict(c)
		n, exportErr := d.Export(c.String("direction"), w)
		if zw != nil {
			if err := zw.Close(); err != nil && exportErr == nil {
				exportErr = err
			}
		}
		if err := f.Close(); err != nil && exportErr == nil {
			exportErr = err
		}
		if exportErr != nil {
			return fmt.Errorf("exporting to %q: %w", path, exportErr)
		}

		fmt.Fprintf(c.App.Writer, "Exported %d entries to %q\n", n, path)
		return nil
	},
}

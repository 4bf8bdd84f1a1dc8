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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	dictcc "github.com/ianlewis/go-dictcc"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrDCUtil is a parent error for all command errors.
var ErrDCUtil = errors.New("dcutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDCUtil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `dcutil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// openDict opens the dictionary for the configured root directory.
func openDict(c *cli.Context) *dictcc.Dict {
	d := dictcc.New(c.String("directory"))
	d.Out = c.App.Writer
	return d
}

func newDCUtilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Offline dictionary lookup for dict.cc databases.",
		Description: strings.Join([]string{
			"dict.cc dictionary utility written in Go.",
			"http://github.com/ianlewis/go-dictcc",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "directory",
				Usage:   "use `PATH` instead of the default dictionary directory",
				Aliases: []string{"d"},
				Value:   dictcc.DefaultDir(),
			},
			&cli.BoolFlag{
				Name:    "compact",
				Usage:   "use the compact output format",
				Aliases: []string{"c"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			switch {
			case c.Bool("version"):
				return printVersion(c)
			case c.Bool("help"):
				check(cli.ShowAppHelp(c))
				return nil
			case c.Args().Len() > 0:
				// Bare arguments are treated as queries.
				return runQueries(c, c.Args().Slice())
			default:
				return runREPL(c)
			}
		},
		Commands: []*cli.Command{
			importCommand,
			queryCommand,
			sizeCommand,
			exportCommand,
		},
	}
}

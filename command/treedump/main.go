// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "treedump"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "draw a tree built from the supplied keys",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: " comma separated integer `KEYS`",
				},
				cli.BoolFlag{
					Name:  "heights, H",
					Usage: " show height and balance of every node",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "script",
			Usage:     "apply operations from a file then draw the result",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "heights, H",
					Usage: " show height and balance of every node",
				},
			},
			Action: runScript,
		},
		{
			Name:      "traverse",
			Usage:     "print one traversal of a tree built from the supplied keys",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: " comma separated integer `KEYS`",
				},
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [pre|in|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "levels",
			Usage:     "list node items level by level",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: " comma separated integer `KEYS`",
				},
			},
			Action: runLevels,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/searchtree/avl"
)

type metadata struct {
	kind    string
	json    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "tree-cli"
	app.Usage = "build a binary search tree and query it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "avl, a",
			Usage: " keep the tree balanced",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " JSON output",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "display the tree",
			ArgsUsage: "KEY…",
			Action:    runPrint,
		},
		{
			Name:      "search",
			Usage:     "find a key in the tree",
			ArgsUsage: "KEY…\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*key to find `NUMBER`",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "delete",
			Usage:     "delete a key then display the tree",
			ArgsUsage: "KEY…\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "key, k",
					Usage: "*key to delete, may be repeated `NUMBER`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "traverse",
			Usage:     "list the keys in a traversal order",
			ArgsUsage: "KEY…",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "inorder",
					Usage: " preorder|inorder|postorder|levelorder `ORDER`",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "complete",
			Usage:     "rebuild the keys as a complete tree",
			ArgsUsage: "KEY…",
			Action:    runComplete,
		},
		{
			Name:  "version",
			Usage: "display tree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		kind := avl.KindBST
		if c.GlobalBool("avl") {
			kind = avl.KindAVL
		}

		c.App.Metadata["config"] = &metadata{
			kind:    kind,
			json:    c.GlobalBool("json"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

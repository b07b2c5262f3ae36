// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, makeTreeInfo(tree))
	}
	tree.Fprint(m.w)
	return nil
}

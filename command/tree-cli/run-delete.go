// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/fault"
)

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	deletes := c.IntSlice("key")
	if 0 == len(deletes) {
		return fmt.Errorf("delete %w", fault.ErrMissingKeys)
	}

	tree, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	for _, k := range deletes {
		if !tree.Delete(avl.Int(k)) && m.verbose {
			fmt.Fprintf(m.e, "key: %d  ignored: %s\n", k, fault.ErrKeyNotFound)
		}
	}

	if m.json {
		return printJson(m.w, makeTreeInfo(tree))
	}
	tree.Fprint(m.w)
	return nil
}

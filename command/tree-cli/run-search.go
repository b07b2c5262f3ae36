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

type searchResult struct {
	Key     int  `json:"key"`
	Height  int  `json:"height"`
	Balance int  `json:"balance"`
	Left    *int `json:"left"`
	Right   *int `json:"right"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("key") {
		return fmt.Errorf("search %w", fault.ErrMissingKeys)
	}
	key := avl.Int(c.Int("key"))

	tree, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	node := tree.Search(key)
	if nil == node {
		return fmt.Errorf("%w: %d", fault.ErrKeyNotFound, int(key))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "found: %s\n", node)
	}

	if m.json {
		result := searchResult{
			Key:     int(key),
			Height:  node.Height(),
			Balance: node.Left().Height() - node.Right().Height(),
			Left:    keyOf(node.Left()),
			Right:   keyOf(node.Right()),
		}
		return printJson(m.w, result)
	}

	fmt.Fprintf(m.w, "%s  height: %d  left: %s  right: %s\n", node, node.Height(), node.Left(), node.Right())
	return nil
}

func keyOf(node *avl.Node) *int {
	if nil == node {
		return nil
	}
	k := int(node.Key().(avl.Int))
	return &k
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/fault"
)

type completeResult struct {
	LevelOrder []int     `json:"levelOrder"`
	Tree       *treeInfo `json:"tree"`
}

// arguments may be in any order, duplicates are dropped
func runComplete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	sort.Slice(keys, func(i, j int) bool {
		return -1 == keys[i].Compare(keys[j])
	})
	sorted := make([]avl.Item, 0, len(keys))
	for i, k := range keys {
		if 0 == i || 0 != keys[i-1].Compare(k) {
			sorted = append(sorted, k)
		}
	}

	// sorted and unique, so this cannot fail
	tree, err := avl.NewComplete(sorted)
	if nil != err {
		fault.PanicWithError("complete tree from sorted keys", err)
	}
	levelOrder, err := tree.Traverse(avl.LevelOrder)
	if nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, completeResult{
			LevelOrder: toInts(levelOrder),
			Tree:       makeTreeInfo(tree),
		})
	}
	fmt.Fprintf(m.w, "levelorder: %v\n", levelOrder)
	tree.Fprint(m.w)
	return nil
}

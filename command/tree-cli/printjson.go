// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/searchtree/avl"
)

type treeInfo struct {
	Kind     string `json:"kind"`
	Count    int    `json:"count"`
	Height   int    `json:"height"`
	Balance  int    `json:"balance"`
	Balanced bool   `json:"balanced"`
	Root     *int   `json:"root"`
	Keys     []int  `json:"keys"`
}

func makeTreeInfo(tree *avl.Tree) *treeInfo {
	info := &treeInfo{
		Kind:     tree.Kind(),
		Count:    tree.Count(),
		Height:   tree.Height(),
		Balance:  tree.Balance(),
		Balanced: tree.IsBalanced(),
		Keys:     toInts(tree.Keys()),
	}
	if root := tree.Root(); nil != root {
		r := int(root.Key().(avl.Int))
		info.Root = &r
	}
	return info
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

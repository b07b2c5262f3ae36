// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/searchtree/avl"
)

type traversal struct {
	Order string `json:"order"`
	Keys  []int  `json:"keys"`
}

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order, err := avl.ParseOrder(c.String("order"))
	if nil != err {
		return fmt.Errorf("%w: %q", err, c.String("order"))
	}

	tree, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	keys, err := tree.Traverse(order)
	if nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, traversal{
			Order: order.String(),
			Keys:  toInts(keys),
		})
	}
	fmt.Fprintf(m.w, "%s: %v\n", order, keys)
	return nil
}

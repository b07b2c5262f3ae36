// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/searchtree/counter"
)

// Node - a node in the tree
//
// each node exclusively owns its two children
type Node struct {
	left  *Node // left sub-tree
	right *Node // right sub-tree
	key   Item  // key part for ordering
}

// global data for allocator
var (
	totalNodes    counter.Counter // total nodes created
	releasedNodes counter.Counter // nodes removed from any tree
)

// allocate a new leaf node
func newNode(key Item) *Node {
	totalNodes.Increment()
	return &Node{
		key: key,
	}
}

// detach a node that has been removed from a tree
//
// the key is kept so that a caller still holding the node from an
// earlier search can read it
func freeNode(node *Node) {
	node.left = nil
	node.right = nil
	releasedNodes.Increment()
}

// Stats - number of nodes created and released by all trees
func Stats() (created uint64, released uint64) {
	return totalNodes.Uint64(), releasedNodes.Uint64()
}

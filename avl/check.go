// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/searchtree/fault"
)

// Check - verify ordering for every tree and balance for an AVL tree
func (tree *Tree) Check() error {
	if !tree.CheckOrder() {
		return fault.ErrUnorderedTree
	}
	if KindAVL == tree.kind && !tree.IsBalanced() {
		return fault.ErrUnbalancedTree
	}
	return nil
}

// CheckOrder - every left key is lower and every right key higher
// than its ancestor
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker, keys must lie strictly between low
// and high when those are set
func checkOrder(p *Node, low Item, high Item) bool {
	if nil == p {
		return true
	}
	if nil != low && +1 != p.key.Compare(low) {
		fmt.Printf("fail at node: %v  not above: %v\n", p.key, low)
		return false
	}
	if nil != high && -1 != p.key.Compare(high) {
		fmt.Printf("fail at node: %v  not below: %v\n", p.key, high)
		return false
	}
	if !checkOrder(p.left, low, p.key) {
		return false
	}
	return checkOrder(p.right, p.key, high)
}

// IsBalanced - the heights of the two subtrees of every node differ
// by at most one
func (tree *Tree) IsBalanced() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns height so each subtree is only measured once
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

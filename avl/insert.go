// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly updated subtree root
func (tree *Tree) insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case -1: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default:
		// duplicate: leave the tree as it is
	}
	if nil != tree.inserted {
		p = tree.inserted(tree, p, key)
	}
	return p, added
}

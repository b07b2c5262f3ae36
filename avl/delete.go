// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the key was not in the tree
func (tree *Tree) Delete(key Item) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
// returns the possibly updated subtree root
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case -1: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left {
			// splice right child, also covers a leaf
			q := p.right
			freeNode(p)
			return q, true
		}
		if nil == p.right {
			q := p.left
			freeNode(p)
			return q, true
		}

		// two children: take over the in-order successor's key
		// and remove the successor, which has no left child
		successor := p.right.Leftmost()
		p.key = successor.key
		p.right, _ = tree.delete(successor.key, p.right)
		removed = true
	}
	if nil != tree.deleted {
		p = tree.deleted(tree, p, key)
	}
	return p, removed
}

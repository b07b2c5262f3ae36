// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/fault"
)

// tree kinds
const (
	KindBST = "bst"
	KindAVL = "avl"
)

// applied at each node on the way back up from an insert or delete,
// returns the root of the possibly rotated subtree
type rebalancer func(tree *Tree, p *Node, key Item) *Node

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	kind     string
	inserted rebalancer
	deleted  rebalancer
	log      *logger.L
	observer Observer
}

// NewBinarySearchTree - create an initially empty unbalanced tree
func NewBinarySearchTree() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		kind:  KindBST,
	}
}

// New - create an initially empty AVL tree
func New() *Tree {
	return &Tree{
		root:     nil,
		count:    0,
		kind:     KindAVL,
		inserted: balanceAfterInsert,
		deleted:  balanceAfterDelete,
	}
}

// NewKind - create an empty tree of the named kind: "bst" or "avl"
func NewKind(kind string) (*Tree, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindBST:
		return NewBinarySearchTree(), nil
	case KindAVL:
		return New(), nil
	default:
		return nil, fault.ErrInvalidTreeKind
	}
}

// SetLogger - log each rotation on this channel at debug level
func (tree *Tree) SetLogger(log *logger.L) {
	tree.log = log
}

// SetObserver - receive a callback for each rotation
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// Kind - "bst" or "avl"
func (tree *Tree) Kind() string {
	return tree.kind
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Balance - balance factor at the root, zero when empty
func (tree *Tree) Balance() int {
	return tree.root.balance()
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - one more than the taller child, zero for a nil node
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// height of left sub-tree minus height of right sub-tree
func (p *Node) balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// String - Node<key>
func (p *Node) String() string {
	if nil == p {
		return "<nil>"
	}
	return fmt.Sprintf("Node<%v>", p.key)
}

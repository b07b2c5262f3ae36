// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/searchtree/fault"
)

// Order - traversal order
type Order int

// traversal orders
const (
	PreOrder   Order = iota
	InOrder    Order = iota
	PostOrder  Order = iota
	LevelOrder Order = iota
)

var orderNames = map[Order]string{
	PreOrder:   "preorder",
	InOrder:    "inorder",
	PostOrder:  "postorder",
	LevelOrder: "levelorder",
}

// String - lower case name of the order
func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return "invalid"
}

// ParseOrder - convert a name to an order, "-" and "_" are ignored
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "", "_", "").Replace(s)
	for o, name := range orderNames {
		if s == name {
			return o, nil
		}
	}
	return InOrder, fault.ErrInvalidTraversalOrder
}

// Traverse - copy of the keys visited in the given order
func (tree *Tree) Traverse(order Order) ([]Item, error) {
	keys := make([]Item, 0, tree.count)
	switch order {
	case PreOrder:
		return preOrder(tree.root, keys), nil
	case InOrder:
		return tree.Keys(), nil
	case PostOrder:
		return postOrder(tree.root, keys), nil
	case LevelOrder:
		if nil == tree.root {
			return keys, nil
		}
		for depth := uint(0); ; depth += 1 {
			level := tree.root.GetChildrenByDepth(depth)
			if 0 == len(level) {
				return keys, nil
			}
			for _, p := range level {
				keys = append(keys, p.key)
			}
		}
	default:
		return nil, fault.ErrInvalidTraversalOrder
	}
}

func preOrder(p *Node, keys []Item) []Item {
	if nil == p {
		return keys
	}
	keys = append(keys, p.key)
	keys = preOrder(p.left, keys)
	return preOrder(p.right, keys)
}

func postOrder(p *Node, keys []Item) []Item {
	if nil == p {
		return keys
	}
	keys = postOrder(p.left, keys)
	keys = postOrder(p.right, keys)
	return append(keys, p.key)
}

// CompleteLevelOrder - level order of the complete binary tree,
// filled from the left, whose in-order sequence is the given keys
//
// the mapping is by position only, so the keys need not be ordered
func CompleteLevelOrder(inOrder []Item) []Item {
	n := len(inOrder)
	levelOrder := make([]Item, n)
	next := 0

	// visit the heap positions in order, handing out keys in sequence
	var fill func(i int)
	fill = func(i int) {
		if i >= n {
			return
		}
		fill(2*i + 1)
		levelOrder[i] = inOrder[next]
		next += 1
		fill(2*i + 2)
	}
	fill(0)

	return levelOrder
}

// NewComplete - build an unbalanced tree shaped as the complete
// binary tree holding the sorted keys
func NewComplete(sorted []Item) (*Tree, error) {
	for i := 1; i < len(sorted); i += 1 {
		if -1 != sorted[i-1].Compare(sorted[i]) {
			return nil, fault.ErrNotAscending
		}
	}
	levelOrder := CompleteLevelOrder(sorted)
	tree := NewBinarySearchTree()
	tree.root = fromLevelOrder(levelOrder, 0)
	tree.count = len(levelOrder)
	return tree, nil
}

// children of position i are at 2i+1 and 2i+2
func fromLevelOrder(levelOrder []Item, i int) *Node {
	if i >= len(levelOrder) {
		return nil
	}
	p := newNode(levelOrder[i])
	p.left = fromLevelOrder(levelOrder, 2*i+1)
	p.right = fromLevelOrder(levelOrder, 2*i+2)
	return p
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item in ascending order
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	n, _ := get(index, tree.root)
	return n
}

// returns the node if found, otherwise the number of nodes skipped
func get(index int, tree *Node) (*Node, int) {
	if nil == tree {
		return nil, 0
	}

	n, nl := get(index, tree.left)
	if nil != n {
		return n, 0
	}
	if index == nl {
		return tree, 0
	}
	n, nr := get(index-nl-1, tree.right)
	if nil != n {
		return n, 0
	}
	return nil, nl + 1 + nr
}

// InorderNodes - all nodes in ascending order
//
// the slice is new on every call, but the nodes are still those of
// the tree
func (tree *Tree) InorderNodes() []*Node {
	nodes := make([]*Node, 0, tree.count)
	return inorderNodes(tree.root, nodes)
}

func inorderNodes(p *Node, nodes []*Node) []*Node {
	if nil == p {
		return nodes
	}
	nodes = inorderNodes(p.left, nodes)
	nodes = append(nodes, p)
	return inorderNodes(p.right, nodes)
}

// Keys - copy of all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	for _, p := range tree.InorderNodes() {
		keys = append(keys, p.key)
	}
	return keys
}

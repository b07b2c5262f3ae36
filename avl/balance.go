// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/searchtree/fault"
)

// Direction - of a rotation
type Direction int

// rotation directions
const (
	Left  Direction = iota
	Right Direction = iota
)

// String - "left" or "right"
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Observer - receives notice of every rotation
//
//go:generate mockgen -source=balance.go -destination=mocks/observer.go -package=mocks
type Observer interface {
	Rotated(direction Direction, pivot Item)
}

// insert: choose the rotation by where the new key went
func balanceAfterInsert(tree *Tree, p *Node, key Item) *Node {
	bf := p.balance()
	if bf > 1 {
		if +1 == p.left.key.Compare(key) { // key < p.left.key
			// single LL rotation
			return tree.rotateRight(p)
		}
		// double LR rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)
	}
	if bf < -1 {
		if -1 == p.right.key.Compare(key) { // key > p.right.key
			// single RR rotation
			return tree.rotateLeft(p)
		}
		// double RL rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p)
	}
	return p
}

// delete: choose the rotation by the shape of the heavy child, the
// removed key says nothing about which grandchild is taller
func balanceAfterDelete(tree *Tree, p *Node, key Item) *Node {
	bf := p.balance()
	if bf > 1 {
		if p.left.balance() >= 0 {
			return tree.rotateRight(p)
		}
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)
	}
	if bf < -1 {
		if p.right.balance() <= 0 {
			return tree.rotateLeft(p)
		}
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p)
	}
	return p
}

// right child becomes the subtree root
func (tree *Tree) rotateLeft(p *Node) *Node {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("left rotate at: %v error: %s", p.key, fault.ErrRotationWithoutPivot)
	}
	tree.rotated(Left, p)

	p.right = p1.left
	p1.left = p
	return p1
}

// left child becomes the subtree root
func (tree *Tree) rotateRight(p *Node) *Node {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("right rotate at: %v error: %s", p.key, fault.ErrRotationWithoutPivot)
	}
	tree.rotated(Right, p)

	p.left = p1.right
	p1.right = p
	return p1
}

func (tree *Tree) rotated(direction Direction, p *Node) {
	if nil != tree.log {
		tree.log.Debugf("%s rotate: %s", direction, p)
	}
	if nil != tree.observer {
		tree.observer.Rotated(direction, p.key)
	}
}

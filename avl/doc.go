// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - binary search trees with optional AVL balancing
//
// A Tree is either a plain unbalanced binary search tree or an AVL
// tree.  Both share one recursive insert/delete routine; an AVL tree
// supplies a rebalance step that is applied at every ancestor as the
// recursion unwinds and the possibly rotated subtree is linked back
// into its parent.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Duplicate keys are ignored by insert, and deleting an absent key
// does nothing.  A node holding two children is deleted by copying
// its in-order successor's key into it and then deleting the
// successor from the right subtree.
//
// Heights are not stored in the nodes, they are computed from the
// subtree shape each time they are needed.
package avl

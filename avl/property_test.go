// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/searchtree/avl"
)

// model of a tree: the set of keys it should contain
type treeState struct {
	tree     *avl.Tree
	balanced bool
	present  map[int]struct{}
}

func (s *treeState) Insert(r *rapid.T) {
	k := rapid.IntRange(-64, 64).Draw(r, "insert")
	_, exists := s.present[k]

	before := s.tree.Keys()
	added := s.tree.Insert(avl.Int(k))
	require.Equal(r, !exists, added, "insert: %d", k)
	if exists {
		require.Equal(r, before, s.tree.Keys(), "duplicate insert changed tree: %d", k)
	}
	s.present[k] = struct{}{}
}

func (s *treeState) Delete(r *rapid.T) {
	k := rapid.IntRange(-64, 64).Draw(r, "delete")
	_, exists := s.present[k]

	removed := s.tree.Delete(avl.Int(k))
	require.Equal(r, exists, removed, "delete: %d", k)
	delete(s.present, k)
}

func (s *treeState) Search(r *rapid.T) {
	k := rapid.IntRange(-64, 64).Draw(r, "search")
	_, exists := s.present[k]

	node := s.tree.Search(avl.Int(k))
	if exists {
		require.NotNil(r, node, "search: %d", k)
		require.Equal(r, avl.Int(k), node.Key(), "search: %d", k)
	} else {
		require.Nil(r, node, "search: %d", k)
	}
}

func (s *treeState) Check(r *rapid.T) {
	expected := make([]int, 0, len(s.present))
	for k := range s.present {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	require.Equal(r, avl.Ints(expected...), s.tree.Keys(), "wrong keys")
	require.Equal(r, len(expected), s.tree.Count(), "wrong count")
	require.Equal(r, len(expected), len(s.tree.InorderNodes()), "wrong node count")
	require.True(r, s.tree.CheckOrder(), "not ordered")
	if s.balanced {
		require.True(r, s.tree.IsBalanced(), "not balanced")
		b := s.tree.Balance()
		require.True(r, b >= -1 && b <= 1, "root balance: %d", b)
	}
}

func TestBalancedTreeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := &treeState{
			tree:     avl.New(),
			balanced: true,
			present:  make(map[int]struct{}),
		}
		t.Repeat(rapid.StateMachineActions(s))
	})
}

func TestSearchTreeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := &treeState{
			tree:     avl.NewBinarySearchTree(),
			balanced: false,
			present:  make(map[int]struct{}),
		}
		t.Repeat(rapid.StateMachineActions(s))
	})
}

// inserting any list and deleting a subset leaves exactly the rest
func TestMembership(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inserts := rapid.SliceOf(rapid.IntRange(0, 200)).Draw(t, "inserts")
		deletes := rapid.SliceOf(rapid.IntRange(0, 200)).Draw(t, "deletes")

		tree := avl.New()
		present := make(map[int]bool)
		for _, k := range inserts {
			tree.Insert(avl.Int(k))
			present[k] = true
		}
		unique := len(present)
		removed := 0
		for _, k := range deletes {
			if tree.Delete(avl.Int(k)) {
				removed += 1
			}
			delete(present, k)
		}

		for k := 0; k <= 200; k += 1 {
			require.Equal(t, present[k], nil != tree.Search(avl.Int(k)), "search: %d", k)
		}
		require.Equal(t, len(present), tree.Count(), "wrong count")
		require.Equal(t, unique-removed, tree.Count(), "count not conserved")
		require.True(t, tree.IsBalanced(), "not balanced")
	})
}

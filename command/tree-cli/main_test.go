// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/searchtree/fault"
)

func run(t *testing.T, arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"tree-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestPrint(t *testing.T) {
	out, _, err := run(t, "print", "5", "4", "7", "2", "11")
	require.NoError(t, err, "print")

	expected := "R----5\n" +
		"     L----4\n" +
		"     |    L----2\n" +
		"     R----7\n" +
		"          R----11\n"
	assert.Equal(t, expected, out, "wrong tree")
}

func TestPrintBalanced(t *testing.T) {
	out, _, err := run(t, "--avl", "print", "1,2", "3")
	require.NoError(t, err, "print")

	expected := "R----2\n" +
		"     L----1\n" +
		"     R----3\n"
	assert.Equal(t, expected, out, "wrong tree")
}

func TestPrintJSON(t *testing.T) {
	out, _, err := run(t, "--json", "print", "1", "2", "3")
	require.NoError(t, err, "print")

	info := treeInfo{}
	require.NoError(t, json.Unmarshal([]byte(out), &info), "unmarshal")

	assert.Equal(t, "bst", info.Kind, "kind")
	assert.Equal(t, 3, info.Count, "count")
	assert.Equal(t, 3, info.Height, "height")
	assert.Equal(t, -2, info.Balance, "balance")
	assert.False(t, info.Balanced, "balanced")
	require.NotNil(t, info.Root, "root")
	assert.Equal(t, 1, *info.Root, "root")
	assert.Equal(t, []int{1, 2, 3}, info.Keys, "keys")
}

func TestVerboseDuplicates(t *testing.T) {
	out, errOut, err := run(t, "-v", "print", "1", "1")
	require.NoError(t, err, "print")

	assert.Equal(t, "R----1\n", out, "wrong tree")
	assert.Contains(t, errOut, "key: 1  ignored: duplicate key", "missing duplicate report")
	assert.Contains(t, errOut, "bst tree: 1 keys  height: 1", "missing summary")
}

func TestSearch(t *testing.T) {
	out, _, err := run(t, "search", "--key=7", "5", "4", "7", "2", "11")
	require.NoError(t, err, "search")
	assert.Equal(t, "Node<7>  height: 2  left: <nil>  right: Node<11>\n", out, "wrong result")

	_, _, err = run(t, "search", "-k", "9", "5", "4", "7")
	require.Error(t, err, "search for absent key")
	assert.Equal(t, "key not found: 9", err.Error(), "wrong error")
	assert.True(t, errors.Is(err, fault.ErrKeyNotFound), "wrong error: %s", err)
	assert.True(t, fault.IsErrNotFound(err), "wrong error class: %s", err)

	_, _, err = run(t, "search", "5", "4", "7")
	assert.True(t, errors.Is(err, fault.ErrMissingKeys), "search without key: %v", err)
}

func TestSearchJSON(t *testing.T) {
	out, _, err := run(t, "-j", "search", "--key=4", "5", "4", "7", "2", "11")
	require.NoError(t, err, "search")

	result := searchResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "unmarshal")
	assert.Equal(t, 4, result.Key, "key")
	assert.Equal(t, 2, result.Height, "height")
	assert.Equal(t, 1, result.Balance, "balance")
	require.NotNil(t, result.Left, "left")
	assert.Equal(t, 2, *result.Left, "left")
	assert.Nil(t, result.Right, "right")
}

func TestDelete(t *testing.T) {
	out, errOut, err := run(t, "--avl", "--verbose", "delete", "--key=5", "--key=99", "5", "4", "7", "2", "11")
	require.NoError(t, err, "delete")

	expected := "R----7\n" +
		"     L----4\n" +
		"     |    L----2\n" +
		"     R----11\n"
	assert.Equal(t, expected, out, "wrong tree")
	assert.Contains(t, errOut, "key: 99  ignored: key not found", "missing absent key report")

	_, _, err = run(t, "delete", "5", "4")
	assert.True(t, errors.Is(err, fault.ErrMissingKeys), "delete without key: %v", err)
}

func TestTraverse(t *testing.T) {
	orders := []struct {
		order    string
		expected string
	}{
		{"preorder", "preorder: [5 4 2 7 11]\n"},
		{"inorder", "inorder: [2 4 5 7 11]\n"},
		{"post-order", "postorder: [2 4 11 7 5]\n"},
		{"level_order", "levelorder: [5 4 7 2 11]\n"},
	}

	for _, item := range orders {
		out, _, err := run(t, "traverse", "--order", item.order, "5", "4", "7", "2", "11")
		require.NoError(t, err, "traverse: %s", item.order)
		assert.Equal(t, item.expected, out, "order: %s", item.order)
	}

	_, _, err := run(t, "traverse", "-o", "sideways", "5")
	require.Error(t, err, "invalid order")
	assert.True(t, errors.Is(err, fault.ErrInvalidTraversalOrder), "wrong error: %s", err)
}

func TestTraverseJSON(t *testing.T) {
	out, _, err := run(t, "--json", "traverse", "3", "1", "2")
	require.NoError(t, err, "traverse")

	result := traversal{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "unmarshal")
	assert.Equal(t, "inorder", result.Order, "order")
	assert.Equal(t, []int{1, 2, 3}, result.Keys, "keys")
}

func TestComplete(t *testing.T) {
	out, _, err := run(t, "complete", "3", "1", "2", "2")
	require.NoError(t, err, "complete")

	expected := "levelorder: [2 1 3]\n" +
		"R----2\n" +
		"     L----1\n" +
		"     R----3\n"
	assert.Equal(t, expected, out, "wrong tree")

	out, _, err = run(t, "--json", "complete", "10", "9", "8", "7", "6", "5", "4", "3", "2", "1")
	require.NoError(t, err, "complete")

	result := completeResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "unmarshal")
	assert.Equal(t, []int{7, 4, 9, 2, 6, 8, 10, 1, 3, 5}, result.LevelOrder, "level order")
	assert.Equal(t, 4, result.Tree.Height, "height")
	assert.True(t, result.Tree.Balanced, "balanced")
}

func TestInvalidKeys(t *testing.T) {
	_, _, err := run(t, "print")
	assert.Equal(t, fault.ErrMissingKeys, err, "no keys")

	_, _, err = run(t, "print", "1", "two")
	require.Error(t, err, "bad key")
	assert.Equal(t, `invalid key: "two"`, err.Error(), "wrong error")
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "wrong error: %s", err)
}

// duplicates and any argument order still give a sorted complete tree
func TestCompleteUnsorted(t *testing.T) {
	assert.NotPanics(t, func() {
		out, _, err := run(t, "complete", "5,5,4", "3", "5", "1", "2", "1")
		require.NoError(t, err, "complete")
		assert.Contains(t, out, "levelorder: [4 2 5 1 3]\n", "wrong level order")
	}, "complete panicked")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err, "version")
	assert.Equal(t, "zero\n", out, "wrong version")
}

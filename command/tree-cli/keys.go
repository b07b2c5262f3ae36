// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/fault"
)

// convert arguments to keys, commas also separate keys
func parseKeys(arguments []string) ([]avl.Item, error) {
	keys := make([]avl.Item, 0, len(arguments))
	for _, a := range arguments {
		for _, s := range strings.Split(a, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			n, err := strconv.Atoi(s)
			if nil != err {
				return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
			}
			keys = append(keys, avl.Int(n))
		}
	}
	if 0 == len(keys) {
		return nil, fault.ErrMissingKeys
	}
	return keys, nil
}

// insert keys in argument order
func buildTree(m *metadata, arguments []string) (*avl.Tree, error) {
	keys, err := parseKeys(arguments)
	if nil != err {
		return nil, err
	}

	tree, err := avl.NewKind(m.kind)
	if nil != err {
		return nil, err
	}
	for _, key := range keys {
		if !tree.Insert(key) && m.verbose {
			fmt.Fprintf(m.e, "key: %v  ignored: %s\n", key, fault.ErrDuplicateKey)
		}
	}
	if m.verbose {
		fmt.Fprintf(m.e, "%s tree: %d keys  height: %d\n", tree.Kind(), tree.Count(), tree.Height())
	}
	return tree, nil
}

func toInts(keys []avl.Item) []int {
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = int(k.(avl.Int))
	}
	return values
}

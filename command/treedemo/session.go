// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/fault"
)

// reports each rotation in the session output
type rotationPrinter struct {
	w io.Writer
}

func (r *rotationPrinter) Rotated(direction avl.Direction, pivot avl.Item) {
	fmt.Fprintf(r.w, "rotate %s at: %v\n", direction, pivot)
}

// replay one session on a new tree
func runSession(w io.Writer, log *logger.L, session *SessionType) (*avl.Tree, error) {

	tree, err := avl.NewKind(session.Kind)
	if nil != err {
		return nil, err
	}
	tree.SetLogger(log)
	tree.SetObserver(&rotationPrinter{w: w})

	if "" != session.Title {
		fmt.Fprintf(w, "%s\n", session.Title)
	}

	for i, step := range session.Steps {
		log.Debugf("%s step[%d]: %s %v", session.Kind, i, step.Action, step.Keys)

		if "" != step.Text {
			fmt.Fprintf(w, "%s\n", step.Text)
		}

		switch step.Action {
		case "insert":
			for _, k := range step.Keys {
				if !tree.Insert(avl.Int(k)) {
					fmt.Fprintf(w, "insert %d: %s\n", k, fault.ErrDuplicateKey)
				}
			}

		case "delete":
			for _, k := range step.Keys {
				if !tree.Delete(avl.Int(k)) {
					fmt.Fprintf(w, "delete %d: %s\n", k, fault.ErrKeyNotFound)
				}
			}

		case "search":
			for _, k := range step.Keys {
				node := tree.Search(avl.Int(k))
				if nil == node {
					fmt.Fprintf(w, "search %d: %s\n", k, fault.ErrKeyNotFound)
					continue
				}
				fmt.Fprintf(w, "search %d: %s  left: %s  right: %s  height: %d\n", k, node, node.Left(), node.Right(), node.Height())
			}

		case "print":
			tree.Fprint(w)

		case "inorder":
			fmt.Fprintf(w, "inorder: %v\n", tree.InorderNodes())

		case "traverse":
			order, err := avl.ParseOrder(step.Order)
			if nil != err {
				return tree, err
			}
			keys, err := tree.Traverse(order)
			if nil != err {
				return tree, err
			}
			fmt.Fprintf(w, "%s: %v\n", order, keys)

		case "root":
			fmt.Fprintf(w, "root: %s\n", tree.Root())

		case "balance":
			fmt.Fprintf(w, "balance factor: %d\n", tree.Balance())

		case "echo": // text only

		case "check":
			if err := tree.Check(); nil != err {
				fault.Criticalf("%s step[%d]: check failed: %s", session.Kind, i, err)
				return tree, err
			}
			fmt.Fprintf(w, "check: %d keys  height: %d\n", tree.Count(), tree.Height())

		default:
			return tree, fmt.Errorf("step[%d] action: %q  error: %w", i, step.Action, fault.ErrUnsupportedTreeCommand)
		}
	}
	return tree, nil
}

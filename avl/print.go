// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on stdout
func (tree *Tree) Print() int {
	return tree.Fprint(os.Stdout)
}

// Fprint - display an ASCII graphic representation of the tree
//
//   R----7
//        L----4
//        |    L----2
//        R----11
//
// returns the maximum depth of the tree
func (tree *Tree) Fprint(w io.Writer) int {
	return printTree(w, tree.root, "", right)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	switch br {
	case right:
		fmt.Fprintf(w, "%sR----%v\n", prefix, tree.key)
		prefix += "     "
	case left:
		fmt.Fprintf(w, "%sL----%v\n", prefix, tree.key)
		prefix += "|    "
	}
	ld := printTree(w, tree.left, prefix, left)
	rd := printTree(w, tree.right, prefix, right)
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}

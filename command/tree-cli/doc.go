// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// tree-cli - build a search tree from the command line and query it
//
// each command inserts its integer arguments, in order, into an empty
// tree; use --avl for a balanced tree.  Negative keys must follow a
// "--" argument.
//
//   tree-cli print 5 4 7 2 11
//   tree-cli --avl delete --key=5 5 4 7 2 11
//   tree-cli --json traverse --order=postorder 5 4 7 2 11
package main

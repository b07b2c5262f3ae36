// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treedemo - replay scripted sessions on binary search trees
//
// without a configuration file the built-in sessions build a plain
// tree from 5 4 7 2 11, edit and query it, then take an AVL tree
// through the same edits until it rotates.  A Lua configuration file
// (see treedemo.conf.sample) can supply other sessions.
package main

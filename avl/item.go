// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal
// to or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Int - integer key
type Int int

// Compare - integer ordering
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal form of the key
func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// String - string key, ordered bytewise
type String string

// Compare - string ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the key itself
func (s String) String() string {
	return string(s)
}

// Ints - convert a list of integers to key items
func Ints(values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Int(v)
	}
	return items
}

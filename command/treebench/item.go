// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/google/btree"
)

// benchItem - key for the avl and pathavl trees
//
// the same concrete type satisfies both tree interfaces as they
// share the Less(interface{}) method shape
type benchItem int64

// Less - ordering for tree descent
func (item benchItem) Less(x interface{}) bool {
	return item < x.(benchItem)
}

// btreeItem - key for the reference B-tree
//
// a separate type is needed as btree.Item requires a
// Less(btree.Item) method which cannot coexist with the
// Less(interface{}) form on one type
type btreeItem int64

// Less - ordering for the reference B-tree
func (item btreeItem) Less(than btree.Item) bool {
	return item < than.(btreeItem)
}

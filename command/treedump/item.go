// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
)

// dumpItem - integer key for display trees
type dumpItem int64

// Less - ordering for tree descent
func (item dumpItem) Less(x interface{}) bool {
	return item < x.(dumpItem)
}

// String - decimal form for tree drawing
func (item dumpItem) String() string {
	return strconv.FormatInt(int64(item), 10)
}

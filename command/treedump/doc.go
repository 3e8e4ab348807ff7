// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Display program for the AVL tree library
//
// e.g. to draw the tree resulting from a few inserts:
//
//   treedump print --keys "23,-43,0,234,78"
//
// or to apply a scripted operation sequence from a file:
//
//   treedump script demo.txt
package main

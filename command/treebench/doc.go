// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Benchmark program for the AVL tree implementations
//
// This program loads identical key sequences into the parent pointer
// tree, the path recording tree and a reference B-tree, verifies that
// all three return the same ordering and reports the request rate of
// each operation suite.
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pathavl - the same height balanced search tree as package
// avl but without parent pointers on the nodes
//
// Each mutating call records the chain of links it descends through
// in a small slice owned by the tree, then walks that chain
// backwards re-checking balance, innermost node first.  The slice is
// reused from call to call so a mutation allocates nothing beyond
// its node.
//
// Without parent links there are no standalone iterators; traversal
// is through the recursive sink routines or through Ascend, which
// keeps an explicit stack of pending nodes.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package pathavl

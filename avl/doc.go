// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree with the
// addition of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm is the height balanced tree of Adelson-Velskii
// and Landis: every node caches the height of its sub-tree and after
// each insert or delete the path back to the root is re-checked,
// rotating wherever one branch has grown two levels taller than the
// other.  Any root to leaf path therefore stays within about
// 1.44*log2(n) links.
//
// Items are ordered only by their Less method.  Equal items are all
// kept: a later insert of an equal item descends to the left of the
// earlier one and occupies a node of its own.
//
// First/Last fetch the end nodes and Next/Prev step between
// neighbours in item order, returning nil after the last node; the
// nil result is the end marker and calling Next, Prev or Item on it
// panics.  Deleting a node that has two children moves the item of
// an in-order neighbour into it and unlinks the neighbour's node
// instead, so a delete can invalidate an iterator resting on that
// neighbour.
package avl

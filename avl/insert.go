// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an item to the tree
//
// always succeeds and allocates exactly one node; an item equal to
// one already stored descends to its left, so duplicates are kept
// and each occupies a separate node; returns the new node
func (tree *Tree) Insert(item Item) *Node {
	p := newNode(item)
	tree.count += 1

	if nil == tree.root {
		tree.root = p
		return p
	}

	q := tree.root
	for {
		if q.item.Less(item) {
			if nil == q.right {
				q.right = p
				break
			}
			q = q.right
		} else { // equal items go left
			if nil == q.left {
				q.left = p
				break
			}
			q = q.left
		}
	}
	p.up = q

	tree.rebalance(q)
	return p
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pathavl

// Insert - add an item to the tree
//
// always succeeds; an item equal to one already stored descends to
// its left, so duplicates are kept and each occupies a separate node
func (tree *Tree) Insert(item Item) {
	tree.path = tree.path[:0]

	slot := &tree.root
	for nil != *slot {
		tree.path = append(tree.path, slot)
		p := *slot
		if p.item.Less(item) {
			slot = &p.right
		} else { // equal items go left
			slot = &p.left
		}
	}
	*slot = &node{
		item:   item,
		height: 0,
	}
	tree.count += 1

	tree.rebalancePath()
}

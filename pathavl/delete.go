// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pathavl

// Delete - remove one item from the tree
//
// returns false, leaving the tree unchanged, when no equal item is
// stored; when duplicates are present only one node is removed
func (tree *Tree) Delete(item Item) bool {
	tree.path = tree.path[:0]

	// locate the doomed node, recording the slots descended through
	slot := &tree.root
	for {
		if nil == *slot {
			tree.path = tree.path[:0]
			return false
		}
		p := *slot
		if p.item.Less(item) {
			tree.path = append(tree.path, slot)
			slot = &p.right
		} else if item.Less(p.item) {
			tree.path = append(tree.path, slot)
			slot = &p.left
		} else {
			break
		}
	}

	target := *slot

	// an inner node takes over the item of an in-order neighbour
	// and that neighbour's node is unlinked instead; the descent to
	// the neighbour extends the recorded path
	if nil != target.left {
		tree.path = append(tree.path, slot)
		r := &target.left // then rightmost: in-order predecessor
		for nil != (*r).right {
			tree.path = append(tree.path, r)
			r = &(*r).right
		}
		target.item = (*r).item
		slot = r
	} else if nil != target.right {
		tree.path = append(tree.path, slot)
		r := &target.right // then leftmost: in-order successor
		for nil != (*r).left {
			tree.path = append(tree.path, r)
			r = &(*r).left
		}
		target.item = (*r).item
		slot = r
	}

	// the node in slot has at most one child now
	p := *slot
	child := p.left
	if nil == child {
		child = p.right
	}
	*slot = child

	tree.count -= 1

	// unlike insert a delete can trigger rotations at several
	// levels, so every recorded slot is re-checked
	tree.rebalancePath()
	return true
}

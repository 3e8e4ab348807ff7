// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove one item from the tree
//
// returns false, leaving the tree unchanged, when no equal item is
// stored; when duplicates are present only one node is removed
func (tree *Tree) Delete(item Item) bool {
	p := tree.Search(item)
	if nil == p {
		return false
	}
	tree.DeleteNode(p)
	return true
}

// DeleteNode - remove a specific node from the tree
//
// the node must belong to this tree, i.e. it came from Insert,
// Search or iteration and was not deleted since; afterwards the node
// must not be used again
//
// a node with two children takes over the item of an in-order
// neighbour and that neighbour's node is unlinked instead, so a
// delete can invalidate an iterator resting on the neighbour
func (tree *Tree) DeleteNode(p *Node) {

	if nil != p.left {
		r := p.left.last() // in-order predecessor
		p.item = r.item
		p = r
	} else if nil != p.right {
		r := p.right.first() // in-order successor
		p.item = r.item
		p = r
	}

	// p has at most one child now
	child := p.left
	if nil == child {
		child = p.right
	}
	if nil != child {
		child.up = p.up
	}
	up := p.up
	*tree.slot(p) = child

	freeNode(p) // return deleted node to pool
	tree.count -= 1

	// unlike insert a delete can trigger rotations at several
	// levels, so the whole path up to the root is re-checked
	tree.rebalance(up)
}

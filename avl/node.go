// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - an item must implement the Less function
//
// only a strict "<" ordering is required; two items are treated as
// equal when neither is Less than the other
type Item interface {
	Less(interface{}) bool // for left/right ordering of items
}

// Node - an element of the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node
	item   Item  // item part for ordering
	height int   // longest link count down to a leaf, leaf = 0
}

// height of a possibly missing sub-tree
// a nil link counts as -1 so a leaf computes to zero
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// refresh the stored height from the two sub-trees
func (p *Node) updateHeight() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// left height minus right height
// outside -1..+1 the node needs rebalancing
func (p *Node) balanceFactor() int {
	return height(p.left) - height(p.right)
}

// rotate the sub-tree at *slot to the right
//
// slot is the address of whichever link holds the node: a left or
// right link of the parent, or the root link of the tree itself; the
// left child is promoted into that slot
func rotateRight(slot **Node) {
	p := *slot
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p1.up = p.up
	p.up = p1
	*slot = p1

	p.updateHeight()
	p1.updateHeight()
}

// mirror image of rotateRight
func rotateLeft(slot **Node) {
	p := *slot
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p1.up = p.up
	p.up = p1
	*slot = p1

	p.updateHeight()
	p1.updateHeight()
}

// restore the balance invariant at a single node
//
// refreshes the stored height, then applies a single or double
// rotation if one branch has become two levels taller than the
// other; a balanced node is left untouched
func checkRotations(slot **Node) {
	p := *slot
	if nil == p {
		return
	}
	p.updateHeight()
	bf := p.balanceFactor()
	if bf > 1 {
		if p.left.balanceFactor() < 0 {
			rotateLeft(&p.left) // double LR rotation
		}
		rotateRight(slot) // single LL rotation
	} else if bf < -1 {
		if p.right.balanceFactor() > 0 {
			rotateRight(&p.right) // double RL rotation
		}
		rotateLeft(slot) // single RR rotation
	}
}

// address of the link that holds p
//
// the root node is held by the tree itself, any other node by one
// child link of its parent
func (tree *Tree) slot(p *Node) **Node {
	up := p.up
	if nil == up {
		return &tree.root
	}
	if up.left == p {
		return &up.left
	}
	return &up.right
}

// walk from p back up to the root restoring balance at every level
//
// an insert needs at most one rotation, a delete may rotate at
// several levels; either way every stored height along the path is
// refreshed
func (tree *Tree) rebalance(p *Node) {
	for nil != p {
		up := p.up // a rotation below would change p.up
		checkRotations(tree.slot(p))
		p = up
	}
}

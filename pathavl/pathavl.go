// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pathavl

// Item - an item must implement the Less function
//
// only a strict "<" ordering is required; two items are treated as
// equal when neither is Less than the other
type Item interface {
	Less(interface{}) bool // for left/right ordering of items
}

// node - an element of the tree
//
// there is no parent link, mutations record the descended slots in
// the path buffer of the tree instead
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	item   Item  // item part for ordering
	height int   // longest link count down to a leaf, leaf = 0
}

// Tree - holds the root node and the reusable descent path
type Tree struct {
	root  *node
	count int
	path  []**node // slot addresses recorded by the last descent
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		path:  make([]**node, 0, 48),
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - longest link count from the root down to a leaf
// -1 for an empty tree and 0 for a single node
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Search - find a specific item
//
// the second result is false when no equal item is stored; when
// duplicates are present the match nearest the root is returned
func (tree *Tree) Search(item Item) (Item, bool) {
	p := tree.root
	for nil != p {
		if p.item.Less(item) {
			p = p.right
		} else if item.Less(p.item) {
			p = p.left
		} else {
			return p.item, true
		}
	}
	return nil, false
}

// height of a possibly missing sub-tree
// a nil link counts as -1 so a leaf computes to zero
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// refresh the stored height from the two sub-trees
func (p *node) updateHeight() {
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
func (p *node) balanceFactor() int {
	return height(p.left) - height(p.right)
}

// rotate the sub-tree at *slot to the right
//
// slot is the address of whichever link holds the node; nodes carry
// no parent link so only the slot itself and the heights change
func rotateRight(slot **node) {
	p := *slot
	p1 := p.left

	p.left = p1.right
	p1.right = p
	*slot = p1

	p.updateHeight()
	p1.updateHeight()
}

// mirror image of rotateRight
func rotateLeft(slot **node) {
	p := *slot
	p1 := p.right

	p.right = p1.left
	p1.left = p
	*slot = p1

	p.updateHeight()
	p1.updateHeight()
}

// restore the balance invariant at a single node
func checkRotations(slot **node) {
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

// walk the recorded descent backwards restoring balance
//
// slot addresses stay valid across rotations: a rotation rewrites
// what a slot points at, never where the slot itself lives
func (tree *Tree) rebalancePath() {
	for i := len(tree.path) - 1; i >= 0; i -= 1 {
		checkRotations(tree.path[i])
	}
	tree.path = tree.path[:0]
}

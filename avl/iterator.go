// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest item
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest item
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the following node in item order or
// nil if no more nodes
//
// the climb checks node identity rather than comparing items, so
// equal items are stepped through one node at a time
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && up.right == p {
		p = up
		up = p.up
	}
	return up
}

// Prev - given a node, return the preceding node in item order or
// nil if no more nodes
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	up := p.up
	for nil != up && up.left == p {
		p = up
		up = p.up
	}
	return up
}

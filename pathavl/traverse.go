// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pathavl

// Appender - sink for traversal output
type Appender interface {
	Append(Item)
}

// ItemList - a simple Appender backed by a slice
type ItemList []Item

// Append - store an item at the end of the list
func (list *ItemList) Append(item Item) {
	*list = append(*list, item)
}

// PreOrder - visit each node before its sub-trees
func (tree *Tree) PreOrder(out Appender) {
	preOrder(tree.root, out)
}

func preOrder(p *node, out Appender) {
	if nil == p {
		return
	}
	out.Append(p.item)
	preOrder(p.left, out)
	preOrder(p.right, out)
}

// InOrder - visit left sub-tree, node, then right sub-tree
// items arrive in non-decreasing order
func (tree *Tree) InOrder(out Appender) {
	inOrder(tree.root, out)
}

func inOrder(p *node, out Appender) {
	if nil == p {
		return
	}
	inOrder(p.left, out)
	out.Append(p.item)
	inOrder(p.right, out)
}

// PostOrder - visit both sub-trees before the node itself
func (tree *Tree) PostOrder(out Appender) {
	postOrder(tree.root, out)
}

func postOrder(p *node, out Appender) {
	if nil == p {
		return
	}
	postOrder(p.left, out)
	postOrder(p.right, out)
	out.Append(p.item)
}

// Ascend - hand every item to fn in order, stopping early when fn
// returns false
//
// the walk keeps an explicit stack of pending nodes since there are
// no parent links to climb back through
func (tree *Tree) Ascend(fn func(Item) bool) {
	stack := make([]*node, 0, height(tree.root)+1)
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.item) {
			return
		}
		p = p.right
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Appender - sink for traversal output
//
// the traversal routines hand every stored item to Append in visit
// order
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

func preOrder(p *Node, out Appender) {
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

func inOrder(p *Node, out Appender) {
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

func postOrder(p *Node, out Appender) {
	if nil == p {
		return
	}
	postOrder(p.left, out)
	postOrder(p.right, out)
	out.Append(p.item)
}

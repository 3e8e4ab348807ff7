// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns nil when no equal item is stored; when duplicates are
// present the match nearest the root is returned
func (tree *Tree) Search(item Item) *Node {
	return search(item, tree.root)
}

// internal routine for search
func search(item Item, p *Node) *Node {
	if nil == p {
		return nil
	}
	if p.item.Less(item) {
		return search(item, p.right)
	}
	if item.Less(p.item) {
		return search(item, p.left)
	}
	return p
}

// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pathavl

import (
	"fmt"
)

// HeightsCorrect - check that every stored height is the true height
func (tree *Tree) HeightsCorrect() bool {
	ok := true
	checkHeight(tree.root, &ok)
	return ok
}

// internal: recompute the height of every sub-tree
func checkHeight(p *node, ok *bool) int {
	if nil == p {
		return -1
	}
	l := checkHeight(p.left, ok)
	r := checkHeight(p.right, ok)
	h := 1 + l
	if r > l {
		h = 1 + r
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v  stored: %d  actual: %d\n", p.item, p.height, h)
		*ok = false
	}
	return h
}

// IsBalanced - check the AVL property over the whole tree
func (tree *Tree) IsBalanced() bool {
	return isBalanced(tree.root)
}

// internal: balance factor range checker
func isBalanced(p *node) bool {
	if nil == p {
		return true
	}
	bf := p.balanceFactor()
	if bf < -1 || bf > 1 {
		fmt.Printf("balance fail at node: %v  factor: %d\n", p.item, bf)
		return false
	}
	return isBalanced(p.left) && isBalanced(p.right)
}

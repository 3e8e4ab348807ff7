// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runLevels(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c)
	if nil != err {
		return err
	}

	tree := buildTree(keys)
	if tree.IsEmpty() {
		fmt.Fprintf(m.w, "tree is empty\n")
		return nil
	}

	root := tree.Root()
	for depth := uint(0); depth <= uint(tree.Height()); depth += 1 {
		nodes := root.ChildrenByDepth(depth)
		s := make([]string, len(nodes))
		for i, node := range nodes {
			s[i] = fmt.Sprintf("%v", node.Item())
		}
		fmt.Fprintf(m.w, "depth %d: %s\n", depth, strings.Join(s, " "))
	}
	return nil
}

// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c)
	if nil != err {
		return err
	}
	tree := buildTree(keys)

	list := avl.ItemList{}
	order := c.String("order")
	switch order {
	case "pre":
		tree.PreOrder(&list)
	case "in":
		tree.InOrder(&list)
	case "post":
		tree.PostOrder(&list)
	default:
		return fmt.Errorf("invalid order: %q", order)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s order traversal of %d nodes\n", order, tree.Count())
	}

	s := make([]string, len(list))
	for i, item := range list {
		s[i] = fmt.Sprintf("%v", item)
	}
	fmt.Fprintf(m.w, "%s\n", strings.Join(s, " "))
	return nil
}

// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "building tree from %d keys\n", len(keys))
	}

	tree := buildTree(keys)
	if tree.IsEmpty() {
		fmt.Fprintf(m.w, "tree is empty\n")
		return nil
	}

	tree.Print(c.Bool("heights"))
	printSummary(m.w, tree)
	return nil
}

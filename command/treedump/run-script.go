// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != len(c.Args()) {
		return fmt.Errorf("script needs exactly one file argument")
	}
	fileName := c.Args().Get(0)

	file, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer file.Close()

	ops, lineNumber, err := parseScript(file)
	if nil != err {
		return fmt.Errorf("%s line %d: %s", fileName, lineNumber, err)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "applying %d operations\n", len(ops))
	}

	tree := avl.New()
	for _, op := range ops {
		switch op.verb {
		case verbInsert:
			tree.Insert(dumpItem(op.key))
		case verbDelete:
			if !tree.Delete(dumpItem(op.key)) {
				fmt.Fprintf(m.w, "delete %d: not found\n", op.key)
			}
		case verbSearch:
			if nil == tree.Search(dumpItem(op.key)) {
				fmt.Fprintf(m.w, "search %d: not found\n", op.key)
			} else {
				fmt.Fprintf(m.w, "search %d: found\n", op.key)
			}
		}
	}

	if tree.IsEmpty() {
		fmt.Fprintf(m.w, "tree is empty\n")
		return nil
	}

	tree.Print(c.Bool("heights"))
	printSummary(m.w, tree)
	return nil
}

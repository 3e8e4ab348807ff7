// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// gather keys from the --keys option and positional arguments
func parseKeys(c *cli.Context) ([]int64, error) {
	words := []string{}
	if s := c.String("keys"); "" != s {
		words = append(words, strings.Split(s, ",")...)
	}
	words = append(words, c.Args()...)
	return parseKeyWords(words)
}

// convert key words to integers, blank words are skipped
func parseKeyWords(words []string) ([]int64, error) {
	keys := make([]int64, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if "" == w {
			continue
		}
		key, err := strconv.ParseInt(w, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// build a tree by inserting keys in the given order
func buildTree(keys []int64) *avl.Tree {
	tree := avl.New()
	for _, key := range keys {
		tree.Insert(dumpItem(key))
	}
	return tree
}

// one line count, height and balance summary
func printSummary(w io.Writer, tree *avl.Tree) {
	fmt.Fprintf(w, "count: %d  height: %d  balanced: %t\n",
		tree.Count(), tree.Height(), tree.IsBalanced())
}

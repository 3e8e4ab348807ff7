// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/btree"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/pathavl"
)

const (
	benchLoggerPrefix = "bench"
)

// names of all benchmark suites in run order
var allSuites = []string{"insert", "search", "delete", "iterate", "compare"}

// degree of the reference B-tree
const btreeDegree = 32

// cap on the key count used by the pre-run agreement check
const quickCheckLimit = 10000

// treeUnderTest - the operations each benched implementation must provide
type treeUnderTest interface {
	name() string
	insert(key int64)
	remove(key int64) bool
	search(key int64) bool
	ascend(fn func(key int64) bool)
	size() int
}

// parent pointer AVL tree
type avlTree struct {
	tree *avl.Tree
}

func (t *avlTree) name() string {
	return "avl"
}

func (t *avlTree) insert(key int64) {
	t.tree.Insert(benchItem(key))
}

func (t *avlTree) remove(key int64) bool {
	return t.tree.Delete(benchItem(key))
}

func (t *avlTree) search(key int64) bool {
	return nil != t.tree.Search(benchItem(key))
}

func (t *avlTree) ascend(fn func(key int64) bool) {
	for p := t.tree.First(); nil != p; p = p.Next() {
		if !fn(int64(p.Item().(benchItem))) {
			return
		}
	}
}

func (t *avlTree) size() int {
	return t.tree.Count()
}

// path recording AVL tree
type pathTree struct {
	tree *pathavl.Tree
}

func (t *pathTree) name() string {
	return "pathavl"
}

func (t *pathTree) insert(key int64) {
	t.tree.Insert(benchItem(key))
}

func (t *pathTree) remove(key int64) bool {
	return t.tree.Delete(benchItem(key))
}

func (t *pathTree) search(key int64) bool {
	_, ok := t.tree.Search(benchItem(key))
	return ok
}

func (t *pathTree) ascend(fn func(key int64) bool) {
	t.tree.Ascend(func(item pathavl.Item) bool {
		return fn(int64(item.(benchItem)))
	})
}

func (t *pathTree) size() int {
	return t.tree.Count()
}

// reference B-tree
type referenceTree struct {
	tree *btree.BTree
}

func (t *referenceTree) name() string {
	return "btree"
}

func (t *referenceTree) insert(key int64) {
	t.tree.ReplaceOrInsert(btreeItem(key))
}

func (t *referenceTree) remove(key int64) bool {
	return nil != t.tree.Delete(btreeItem(key))
}

func (t *referenceTree) search(key int64) bool {
	return nil != t.tree.Get(btreeItem(key))
}

func (t *referenceTree) ascend(fn func(key int64) bool) {
	t.tree.Ascend(func(i btree.Item) bool {
		return fn(int64(i.(btreeItem)))
	})
}

func (t *referenceTree) size() int {
	return t.tree.Len()
}

// one empty tree per implementation
func implementations() []treeUnderTest {
	return []treeUnderTest{
		&avlTree{tree: avl.New()},
		&pathTree{tree: pathavl.New()},
		&referenceTree{tree: btree.New(btreeDegree)},
	}
}

// distinct keys in shuffled order
//
// the reference B-tree replaces duplicates so the shared key set
// must not contain any
func makeKeys(count int, seed int64) []int64 {
	r := rand.New(rand.NewSource(seed))
	keys := make([]int64, count)
	for i, n := range r.Perm(count) {
		keys[i] = int64(n)
	}
	return keys
}

// copy of keys in a different shuffled order
func shuffleKeys(keys []int64, seed int64) []int64 {
	r := rand.New(rand.NewSource(seed))
	shuffled := make([]int64, len(keys))
	copy(shuffled, keys)
	r.Shuffle(len(shuffled), func(i int, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// collect the full ascending key sequence
func ascendingKeys(tree treeUnderTest) []int64 {
	keys := make([]int64, 0, tree.size())
	tree.ascend(func(key int64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func validSuite(name string) bool {
	for _, s := range allSuites {
		if name == s {
			return true
		}
	}
	return false
}

// verifyConsistency - run one identical operation sequence on every
// implementation and require identical ascending output
func verifyConsistency(log *logger.L, items int, seed int64) error {
	keys := makeKeys(items, seed)
	deletions := shuffleKeys(keys, seed+1)[:len(keys)/2]

	trees := implementations()
	results := make([][]int64, len(trees))
	for i, tree := range trees {
		for _, key := range keys {
			tree.insert(key)
		}
		for _, key := range deletions {
			if !tree.remove(key) {
				log.Errorf("%s: remove missed key: %d", tree.name(), key)
				return fault.ErrMismatchedTrees
			}
		}
		results[i] = ascendingKeys(tree)
	}

	first := results[0]
	for i := 1; i < len(results); i += 1 {
		if len(first) != len(results[i]) {
			log.Errorf("%s: %d keys  %s: %d keys",
				trees[0].name(), len(first),
				trees[i].name(), len(results[i]))
			return fault.ErrMismatchedTrees
		}
		for j, key := range results[i] {
			if first[j] != key {
				log.Errorf("%s and %s differ at position: %d", trees[0].name(), trees[i].name(), j)
				return fault.ErrMismatchedTrees
			}
		}
	}
	return nil
}

type suiteResult struct {
	implementation string
	total          int
	seconds        float64
}

// time one suite over every implementation
func runTimedSuite(name string, items int, iterations int, seed int64) ([]suiteResult, error) {

	keys := makeKeys(items, seed)
	probes := shuffleKeys(keys, seed+1)

	results := make([]suiteResult, 0, 3)

	for _, tree := range implementations() {
		total := 0
		var start time.Time

		switch name {
		case "insert":
			start = time.Now()
			for _, key := range keys {
				tree.insert(key)
			}
			total = len(keys)

		case "search":
			for _, key := range keys {
				tree.insert(key)
			}
			start = time.Now()
			for _, key := range probes {
				tree.search(key)
			}
			total = len(probes)

		case "delete":
			for _, key := range keys {
				tree.insert(key)
			}
			start = time.Now()
			for _, key := range probes {
				tree.remove(key)
			}
			total = len(probes)

		case "iterate":
			for _, key := range keys {
				tree.insert(key)
			}
			start = time.Now()
			for i := 0; i < iterations; i += 1 {
				n := 0
				tree.ascend(func(key int64) bool {
					n += 1
					return true
				})
				total += n
			}

		default:
			return nil, fault.ErrNotFoundSuite
		}

		results = append(results, suiteResult{
			implementation: tree.name(),
			total:          total,
			seconds:        time.Since(start).Seconds(),
		})
	}

	return results, nil
}

// runSuites - agreement check then the selected benchmark suites
//
// an empty suite list selects all of them
func runSuites(log *logger.L, cfg *Configuration, suites []string, verbose bool, quiet bool) error {

	if cfg.Items <= 0 {
		return fault.ErrInvalidItemCount
	}

	seed := cfg.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("items: %d  iterations: %d  seed: %d", cfg.Items, cfg.Iterations, seed)

	if 0 == len(suites) {
		suites = allSuites
	}
	for _, name := range suites {
		if !validSuite(name) {
			log.Errorf("unknown suite: %q", name)
			return fault.ErrNotFoundSuite
		}
	}

	// all implementations must agree before any timing is reported
	checkItems := cfg.Items
	if checkItems > quickCheckLimit {
		checkItems = quickCheckLimit
	}
	if err := verifyConsistency(log, checkItems, seed); nil != err {
		return err
	}
	if verbose {
		fmt.Printf("checked: %8d keys   all implementations agree\n", checkItems)
	}

	for _, name := range suites {
		log.Infof("running suite: %s", name)

		if "compare" == name {
			if err := verifyConsistency(log, cfg.Items, seed); nil != err {
				return err
			}
			if !quiet {
				fmt.Printf("compare: %8d keys   all implementations agree\n", cfg.Items)
			}
			continue
		}

		results, err := runTimedSuite(name, cfg.Items, cfg.Iterations, seed)
		if nil != err {
			return err
		}
		for _, r := range results {
			if !quiet {
				fmt.Printf("suite: %s  implementation: %s\n", name, r.implementation)
			}
			fmt.Printf("total: %8d   requests in: %7.1f seconds\n", r.total, r.seconds)
			fmt.Printf("rate:  %10.1f requests/second\n", float64(r.total)/r.seconds)
		}
	}

	return nil
}

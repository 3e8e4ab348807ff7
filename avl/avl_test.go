// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Less(x interface{}) bool {
	return s.s < x.(stringItem).s
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// to make sure that lots of duplicates keep separate nodes and that
// each delete call removes exactly one of them
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"3630"}, {"1427"}, {"5843"}, {"9549"}, {"5433"},
		{"1274"}, {"9034"}, {"4724"}, {"6179"}, {"5072"},
		{"9272"}, {"4030"}, {"4205"}, {"3363"}, {"8582"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
		{"2791"}, {"1504"}, {"3469"}, {"9701"}, {"5077"},
		{"7928"}, {"7978"}, {"5383"}, {"4319"}, {"8197"},
		{"9227"}, {"1166"}, {"4216"}, {"0866"}, {"1791"},
		{"5395"}, {"4310"}, {"4452"}, {"6140"}, {"1494"},
		{"8859"}, {"3394"}, {"5507"}, {"7295"}, {"5408"},
		{"7789"}, {"8237"}, {"6990"}, {"6882"}, {"8243"},
		{"8894"}, {"4352"}, {"6727"}, {"7019"}, {"3126"},
		{"3102"}, {"2948"}, {"8242"}, {"5027"}, {"8892"},
		{"3492"}, {"1323"}, {"1101"}, {"4526"}, {"5177"},
		{"6175"}, {"6664"}, {"2742"}, {"6094"}, {"9877"},
		{"2534"}, {"2105"}, {"6588"}, {"9982"}, {"3696"},
		{"3480"}, {"2244"}, {"7487"}, {"2844"}, {"3199"},
		{"5829"}, {"6952"}, {"6915"}, {"0905"}, {"7615"},
	}

	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// stop the test with a tree dump if any structure invariant fails
func checkInvariants(t *testing.T, tree *avl.Tree, phase string) {
	if !tree.CheckUp() {
		t.Errorf("%s: inconsistent up links", phase)
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent tree")
	}
	if !tree.HeightsCorrect() {
		t.Errorf("%s: stored heights wrong", phase)
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent tree")
	}
	if !tree.IsBalanced() {
		t.Errorf("%s: unbalanced tree", phase)
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent tree")
	}
}

func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		//t.Logf("delete size: %d", i)
		tree := avl.New()
		for _, key := range addList {
			//t.Logf("add item: %q", key)
			tree.Insert(key)
		}

		if len(addList) != tree.Count() {
			t.Fatalf("insert count: actual: %d  expected: %d", tree.Count(), len(addList))
		}

		checkInvariants(t, tree, "add")

		for _, key := range addList[:i] {
			//t.Logf("delete item: %q", key)
			if !tree.Delete(key) {
				t.Fatalf("delete failed for: %q", key)
			}
		}

		if len(addList)-i != tree.Count() {
			t.Fatalf("delete count: actual: %d  expected: %d", tree.Count(), len(addList)-i)
		}

		checkInvariants(t, tree, "delete")

		for _, key := range addList[i:] {
			//t.Logf("delete item: %q", key)
			if !tree.Delete(key) {
				t.Fatalf("delete failed for: %q", key)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder:remaining nodes")
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
// duplicate keys must show up once per inserted occurrence
func doTraverse(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key)
	}

	expected := make([]string, len(addList))
	for i, key := range addList {
		expected[i] = key.s
	}
	sort.Strings(expected)

	p := tree.First()
	if nil == p {
		t.Fatal("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if s := p.Item().(stringItem).s; s != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", s, expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatal("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if s := p.Item().(stringItem).s; s != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", s, expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, key := range addList {
		//t.Logf("delete item: %q", key)
		if !tree.Delete(key) {
			t.Fatalf("delete failed for: %q", key)
		}
	}

	if !tree.IsEmpty() {
		t.Errorf("remainder:remaining nodes")
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use search to fetch each item
func doSearch(t *testing.T, addList []stringItem) {

	occurrences := make(map[string]int)
	tree := avl.New()
	for _, key := range addList {
		occurrences[key.s] += 1
		tree.Insert(key)
	}

	unique := make([]string, 0, len(occurrences))
	for key := range occurrences {
		unique = append(unique, key)
	}
	sort.Strings(unique)

	if len(addList) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(addList), tree.Count())
	}

	for _, key := range unique {
		node := tree.Search(stringItem{key})
		if nil == node {
			t.Fatalf("key: %q not in tree (nil result)", key)
		}
		if s := node.Item().(stringItem).s; s != key {
			t.Fatalf("expected: %q but found: %q", key, s)
		}
	}

	// delete all occurrences of even indexed keys
	for index, key := range unique {
		if 0 == index%2 {
			for i := 0; i < occurrences[key]; i += 1 {
				if !tree.Delete(stringItem{key}) {
					t.Fatalf("delete failed for: %q", key)
				}
			}
		}
	}

	// check odd indexed keys are still present and even ones are gone
odd_scan:
	for index, key := range unique {
		node := tree.Search(stringItem{key})
		if 0 == index%2 {
			if nil != node {
				t.Fatalf("deleted key: %q still in tree", key)
			}
			continue odd_scan
		}
		if nil == node {
			t.Fatalf("key: %q not in tree (nil result)", key)
		}
	}

	checkInvariants(t, tree, "search")
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		//t.Logf("add item: %q", key)
		tree.Insert(key)
	}

	if total != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), total)
	}

	checkInvariants(t, tree, "add")

	for _, key := range d {
		//t.Logf("delete item: %q", key)
		if !tree.Delete(key) {
			t.Fatalf("delete failed for: %q", key)
		}
		if !tree.CheckUp() {
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)

			t.Fatalf("inconsistent tree")
		}
	}

	if total-toDelete != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), total-toDelete)
	}

	checkInvariants(t, tree, "delete")

	// add back a test value
	testKey := stringItem{"0500"}
	tv := tree.Insert(testKey)

	checkInvariants(t, tree, "test add")

	// check that the test value is searchable
	node := tree.Search(testKey)
	if nil == node {
		t.Fatalf("could not find test key: %q", testKey)
	}

	// check iterator neighbours of the inserted node
	if n := tv.Next(); nil != n && n.Item().(stringItem).s < testKey.s {
		t.Fatalf("next out of order: %q before %q", n.Item(), testKey)
	}
	if p := tv.Prev(); nil != p && testKey.s < p.Item().(stringItem).s {
		t.Fatalf("prev out of order: %q after %q", p.Item(), testKey)
	}

	// delete the test value and check the count comes back down
	before := tree.Count()
	if !tree.Delete(testKey) {
		t.Fatalf("could not delete test key: %q", testKey)
	}
	if before-1 != tree.Count() {
		t.Fatalf("count after delete: actual: %d  expected: %d", tree.Count(), before-1)
	}

	checkInvariants(t, tree, "test delete")
}

// duplicates keep separate nodes, are iterated individually and are
// deleted one per call
func TestDuplicates(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"02"}, {"02"},
		{"04"}, {"01"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key)
	}

	if len(addList) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(addList))
	}

	expected := []string{"01", "01", "02", "02", "02", "03", "04"}
	i := 0
	for p := tree.First(); nil != p; p = p.Next() {
		if s := p.Item().(stringItem).s; s != expected[i] {
			t.Fatalf("item[%d]: actual: %q  expected: %q", i, s, expected[i])
		}
		i += 1
	}
	if len(expected) != i {
		t.Fatalf("iterated: %d  expected: %d", i, len(expected))
	}

	for n := 3; n > 0; n -= 1 {
		if !tree.Delete(stringItem{"02"}) {
			t.Fatal("delete failed")
		}
		checkInvariants(t, tree, "delete duplicate")
	}
	if tree.Delete(stringItem{"02"}) {
		t.Fatal("delete succeeded for absent key")
	}
	if len(addList)-3 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(addList)-3)
	}
}

func TestDepthInTree(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestChildrenByDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key)
	}

	if len(tree.Root().ChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")

	}

	if len(tree.Root().ChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

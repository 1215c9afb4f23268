// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

var (
	balanced         = []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15, 0}
	balancedReversed = []int{7, 3, 11, 1, 5, 9, 13, 0, 2, 4, 6, 8, 10, 12, 14, 15}
)

func TestEmpty(t *testing.T) {
	for _, s := range strategies {
		tree := newIntTree(s, nil)
		assert.True(t, tree.IsEmpty(), s.String())
		assert.Equal(t, 0, tree.MaxHeight(), s.String())
		assert.Equal(t, 0, tree.Count(), s.String())

		_, ok := tree.Min()
		assert.False(t, ok, "%s: min of empty tree", s)
		_, ok = tree.Max()
		assert.False(t, ok, "%s: max of empty tree", s)

		assert.False(t, tree.Delete(1), "%s: delete from empty tree", s)
		assert.Empty(t, tree.Find(1), s.String())
		assert.False(t, tree.Includes(1), s.String())
		assert.Empty(t, bfs(tree), s.String())
		assert.Empty(t, tree.Values(avl.InOrder), s.String())
		checkTree(t, tree, "empty")
	}
}

func TestSmallBalanced(t *testing.T) {
	for _, s := range strategies {
		tree := newIntTree(s, []int{4, 2, 6, 1, 3, 5, 7})
		checkTree(t, tree, s.String())

		assert.False(t, tree.IsEmpty())
		assert.Equal(t, 3, tree.MaxHeight())
		assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, bfs(tree), s.String())
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Values(avl.InOrder), s.String())
		assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tree.Values(avl.PreOrder), s.String())
		assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, tree.Values(avl.PostOrder), s.String())
	}
}

// the default depth first order is the zero value
func TestDefaultOrder(t *testing.T) {
	var order avl.Order
	assert.Equal(t, avl.InOrder, order)

	tree := newIntTree(avl.Recursive, []int{2, 1, 3})
	visited := []int{}
	tree.TraverseDFS(func(v int) { visited = append(visited, v) }, order)
	assert.Equal(t, []int{1, 2, 3}, visited)
}

func TestBalancedTraversal(t *testing.T) {
	sorted := append([]int{}, balanced...)
	sort.Ints(sorted)

	for _, s := range strategies {
		tree := newIntTree(s, balanced)
		checkTree(t, tree, s.String())
		assert.Equal(t, balanced, bfs(tree), "%s: bfs", s)
		assert.Equal(t, sorted, tree.Values(avl.InOrder), "%s: dfs", s)
	}
}

func TestSortedInput(t *testing.T) {
	ascending := append([]int{}, balanced...)
	sort.Ints(ascending)
	descending := append([]int{}, balanced...)
	sort.Sort(sort.Reverse(sort.IntSlice(descending)))

	for _, s := range strategies {
		tree := newIntTree(s, descending)
		checkTree(t, tree, s.String())
		assert.Equal(t, balanced, bfs(tree), "%s: descending", s)

		tree = newIntTree(s, ascending)
		checkTree(t, tree, s.String())
		assert.Equal(t, balancedReversed, bfs(tree), "%s: ascending", s)

		// one at a time gives the same shape as a perfect insert order
		tree = newIntTree(s, nil)
		for i := 1; i <= 7; i += 1 {
			tree.Insert(i)
			checkTree(t, tree, s.String())
		}
		assert.Equal(t, 3, tree.MaxHeight(), s.String())
		assert.Equal(t, bfs(newIntTree(s, []int{4, 2, 6, 1, 3, 5, 7})), bfs(tree), s.String())
	}
}

// height must stay at ceil(log2(n+1)) for these inputs
func TestMaxHeight(t *testing.T) {
	first := []int{1, 2, 3, 4, 5, 6, 7}
	more := []int{8, 9, 10, 11, 12, 13, 14, 15, 16}
	firstDuplicated := []int{1, 2, 3, 4, 7, 7, 7}
	moreDuplicated := []int{8, 8, 10, 11, 11, 13, 14, 15, 16}

	for _, s := range strategies {
		tree := newIntTree(s, first)
		assert.Equal(t, 3, tree.MaxHeight(), s.String())
		tree.Insert(more...)
		assert.Equal(t, 5, tree.MaxHeight(), s.String())

		tree = newIntTree(s, firstDuplicated, avl.KeepDuplicates())
		assert.Equal(t, 3, tree.MaxHeight(), s.String())
		tree.Insert(moreDuplicated...)
		assert.Equal(t, 16, tree.Count(), s.String())
		assert.Equal(t, 5, tree.MaxHeight(), s.String())
		checkTree(t, tree, s.String())
	}
}

func TestRotations(t *testing.T) {
	items := []struct {
		name     string
		initial  []int
		insert   int
		expected []int
	}{
		{"right", []int{4, 2, 5, 1, 3}, 0, []int{2, 1, 4, 0, 3, 5}},
		{"left-right", []int{4, 1, 5, 0, 2}, 3, []int{2, 1, 4, 0, 3, 5}},
		{"left", []int{5, 4, 7, 6, 8}, 9, []int{7, 5, 8, 4, 6, 9}},
		{"right-left", []int{5, 4, 8, 7, 9}, 6, []int{7, 5, 8, 4, 6, 9}},
	}

	for _, s := range strategies {
		for _, item := range items {
			tree := newIntTree(s, item.initial)
			if actual := bfs(tree); !assert.Equal(t, item.initial, actual, "%s/%s: initial", s, item.name) {
				continue
			}
			tree.Insert(item.insert)
			checkTree(t, tree, item.name)
			assert.Equal(t, item.expected, bfs(tree), "%s/%s: after insert", s, item.name)
		}
	}
}

func TestDeleteShapes(t *testing.T) {
	items := []struct {
		name     string
		delete   []int
		expected []int
	}{
		{"leaf", []int{0}, []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}},
		{"one child", []int{1}, []int{8, 4, 12, 2, 6, 10, 14, 0, 3, 5, 7, 9, 11, 13, 15}},
		{"one child with rotation", []int{3}, []int{8, 4, 12, 1, 6, 10, 14, 0, 2, 5, 7, 9, 11, 13, 15}},
		{"two children", []int{6}, []int{8, 4, 12, 2, 7, 10, 14, 1, 3, 5, 9, 11, 13, 15, 0}},
		{"two children then rotation", []int{6, 7}, []int{8, 2, 12, 1, 4, 10, 14, 0, 3, 5, 9, 11, 13, 15}},
		{"root", []int{8}, []int{9, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 11, 13, 15, 0}},
		{"absent", []int{99, -1}, balanced},
	}

	for _, s := range strategies {
		for _, item := range items {
			tree := newIntTree(s, balanced)
			for _, v := range item.delete {
				tree.Delete(v)
				checkTree(t, tree, item.name)
			}
			assert.Equal(t, item.expected, bfs(tree), "%s/%s", s, item.name)
			assert.Equal(t, len(item.expected), tree.Count(), "%s/%s", s, item.name)
		}
	}
}

func TestMinMax(t *testing.T) {
	values := []int{2, 2, 100, 100, 100, 4, 1, 7, 3}

	for _, s := range strategies {
		for _, keep := range []bool{false, true} {
			tree := newIntTree(s, values, avl.IgnoreDuplicates(!keep))

			lowest, ok := tree.Min()
			assert.True(t, ok)
			assert.Equal(t, 1, lowest, "%s keep: %t", s, keep)

			highest, ok := tree.Max()
			assert.True(t, ok)
			assert.Equal(t, 100, highest, "%s keep: %t", s, keep)

			inOrder := tree.Values(avl.InOrder)
			assert.Equal(t, inOrder[0], lowest)
			assert.Equal(t, inOrder[len(inOrder)-1], highest)
		}
	}
}

func TestClear(t *testing.T) {
	tree := newIntTree(avl.Iterative, balanced)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Nil(t, tree.Root())

	tree.Insert(3, 1, 2)
	assert.Equal(t, []int{2, 1, 3}, bfs(tree))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestPrint(t *testing.T) {
	tree := newIntTree(avl.Recursive, []int{2, 1, 3})

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, strconv.Itoa)
	assert.Equal(t, 2, depth)

	expected := "       /------+ 3 1/+0\n" +
		"|------+ 2 2/+0\n" +
		"       \\------+ 1 1/+0\n"
	assert.Equal(t, expected, buffer.String())

	buffer.Reset()
	tree.Insert(0)
	depth = tree.Print(buffer, strconv.Itoa)
	assert.Equal(t, 3, depth)
	assert.Contains(t, buffer.String(), "|------+ 2 3/+1\n")
	assert.Contains(t, buffer.String(), "              \\------+ 0 1/+0\n")
}

func TestPrintEmpty(t *testing.T) {
	tree := newIntTree(avl.Iterative, nil)

	buffer := &bytes.Buffer{}
	assert.Equal(t, 0, tree.Print(buffer, strconv.Itoa))
	assert.Empty(t, buffer.String())

	tree.Dump(buffer, strconv.Itoa)
	assert.Empty(t, buffer.String())
}

func TestDump(t *testing.T) {
	for _, s := range strategies {
		tree := newIntTree(s, []int{4, 2, 6, 1, 3, 5, 7})

		buffer := &bytes.Buffer{}
		tree.Dump(buffer, strconv.Itoa)
		assert.Equal(t, "4  4<-2  4->6  2<-1  2->3  6<-5  6->7\n", buffer.String(), s.String())

		tree.Delete(1)
		tree.Delete(7)
		buffer.Reset()
		tree.Dump(buffer, strconv.Itoa)
		assert.Equal(t, "4  4<-2  4->6  2->3  6<-5\n", buffer.String(), s.String())
	}
}

func TestWithLogger(t *testing.T) {
	log := logger.New(category)
	for _, s := range strategies {
		tree := newIntTree(s, nil, avl.WithLogger(log))
		tree.Insert(balanced...)
		for _, v := range []int{0, 3, 6, 7, 8} {
			assert.True(t, tree.Delete(v), s.String())
		}
		checkTree(t, tree, s.String())
		assert.Equal(t, len(balanced)-5, tree.Count())
	}
}

func TestParseStrategy(t *testing.T) {
	items := []struct {
		name     string
		strategy avl.Strategy
	}{
		{"", avl.Recursive},
		{"recursive", avl.Recursive},
		{" Recursive ", avl.Recursive},
		{"iterative", avl.Iterative},
		{"ITERATIVE", avl.Iterative},
		{"stack", avl.Iterative},
	}
	for _, item := range items {
		s, err := avl.ParseStrategy(item.name)
		assert.Nil(t, err, item.name)
		assert.Equal(t, item.strategy, s, item.name)
	}

	_, err := avl.ParseStrategy("parallel")
	assert.NotNil(t, err)

	assert.Equal(t, "recursive", avl.Recursive.String())
	assert.Equal(t, "iterative", avl.Iterative.String())
	assert.Equal(t, "strategy(9)", avl.Strategy(9).String())

	tree := avl.New(intCompare, avl.WithStrategy(avl.Iterative))
	assert.Equal(t, avl.Iterative, tree.Strategy())
	tree = avl.New(intCompare)
	assert.Equal(t, avl.Recursive, tree.Strategy())
}

func TestParseOrder(t *testing.T) {
	items := []struct {
		name  string
		order avl.Order
	}{
		{"", avl.InOrder},
		{"in_order", avl.InOrder},
		{"in-order", avl.InOrder},
		{"PRE_ORDER", avl.PreOrder},
		{"post-order", avl.PostOrder},
	}
	for _, item := range items {
		o, err := avl.ParseOrder(item.name)
		assert.Nil(t, err, item.name)
		assert.Equal(t, item.order, o, item.name)
	}

	_, err := avl.ParseOrder("level")
	assert.NotNil(t, err)

	for _, o := range []avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder} {
		parsed, err := avl.ParseOrder(o.String())
		assert.Nil(t, err)
		assert.Equal(t, o, parsed)
	}
}

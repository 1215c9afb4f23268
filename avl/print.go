// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// FormatFunc - render a value for the debug dumps
type FormatFunc[T any] func(value T) string

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree above and the left below; returns the depth
func (tree *Tree[T]) Print(w io.Writer, format FormatFunc[T]) int {
	return printTree(w, format, tree.root, "", here)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, format FormatFunc[T], p *Node[T], prefix string, br direction) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, format, p.right, prefix+t, right)
	}
	switch br {
	case here:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s %d/%+d\n", format(p.value), p.height, p.balance())
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, format, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dump - level order listing, each child annotated with its parent
// and side: "4  4<-2  4->6  2<-1 ..."
func (tree *Tree[T]) Dump(w io.Writer, format FormatFunc[T]) {
	if nil == tree.root {
		return
	}
	type entry struct {
		node *Node[T]
		from string
		dir  string
	}
	queue := []entry{{node: tree.root}}
	separator := ""
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		s := format(e.node.value)
		fmt.Fprintf(w, "%s%s%s%s", separator, e.from, e.dir, s)
		separator = "  "

		if nil != e.node.left {
			queue = append(queue, entry{node: e.node.left, from: s, dir: "<-"})
		}
		if nil != e.node.right {
			queue = append(queue, entry{node: e.node.right, from: s, dir: "->"})
		}
	}
	fmt.Fprintln(w)
}

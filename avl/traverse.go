// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Visitor - called once for each value during a traversal
type Visitor[T any] func(value T)

// Order - depth first visiting order
type Order int

// depth first orders, the zero value is in-order
const (
	InOrder   Order = iota // left, node, right: sorted
	PreOrder  Order = iota // node, left, right
	PostOrder Order = iota // left, right, node
)

// String - order name as used in configuration files
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in_order"
	case PreOrder:
		return "pre_order"
	case PostOrder:
		return "post_order"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder - convert a name from a configuration file
func ParseOrder(name string) (Order, error) {
	switch strings.Replace(strings.ToLower(strings.TrimSpace(name)), "-", "_", -1) {
	case "", "in_order":
		return InOrder, nil
	case "pre_order":
		return PreOrder, nil
	case "post_order":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidOrder
	}
}

// TraverseBFS - visit level by level, left to right
func (tree *Tree[T]) TraverseBFS(visit Visitor[T]) {
	if nil == tree.root {
		return
	}
	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visit(p.value)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
}

// TraverseDFS - visit depth first in the given order
func (tree *Tree[T]) TraverseDFS(visit Visitor[T], order Order) {
	if nil == tree.root {
		return
	}
	tree.exec.traverse(tree.root, order, visit)
}

// Values - all values in a depth first order
func (tree *Tree[T]) Values(order Order) []T {
	values := make([]T, 0, tree.count)
	tree.TraverseDFS(func(value T) {
		values = append(values, value)
	}, order)
	return values
}

func (r recursive[T]) traverse(p *Node[T], order Order, visit Visitor[T]) {
	switch order {
	case PreOrder:
		r.preOrder(p, visit)
	case PostOrder:
		r.postOrder(p, visit)
	default:
		r.inOrder(p, visit)
	}
}

func (r recursive[T]) preOrder(p *Node[T], visit Visitor[T]) {
	if nil == p {
		return
	}
	visit(p.value)
	r.preOrder(p.left, visit)
	r.preOrder(p.right, visit)
}

func (r recursive[T]) inOrder(p *Node[T], visit Visitor[T]) {
	if nil == p {
		return
	}
	r.inOrder(p.left, visit)
	visit(p.value)
	r.inOrder(p.right, visit)
}

func (r recursive[T]) postOrder(p *Node[T], visit Visitor[T]) {
	if nil == p {
		return
	}
	r.postOrder(p.left, visit)
	r.postOrder(p.right, visit)
	visit(p.value)
}

func (it iterative[T]) traverse(p *Node[T], order Order, visit Visitor[T]) {
	switch order {
	case PreOrder:
		it.preOrder(p, visit)
	case PostOrder:
		it.postOrder(p, visit)
	default:
		it.inOrder(p, visit)
	}
}

func (iterative[T]) preOrder(p *Node[T], visit Visitor[T]) {
	stack := make([]*Node[T], 0, p.Height())
	stack = append(stack, p)
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		visit(p.value)
		// right first so that left is popped first
		if nil != p.right {
			stack = append(stack, p.right)
		}
		if nil != p.left {
			stack = append(stack, p.left)
		}
	}
}

func (iterative[T]) inOrder(p *Node[T], visit Visitor[T]) {
	stack := make([]*Node[T], 0, p.Height())
	for len(stack) > 0 || nil != p {
		for nil != p { // push the left spine
			stack = append(stack, p)
			p = p.left
		}
		n := len(stack) - 1
		p = stack[n]
		stack = stack[:n]

		visit(p.value)
		p = p.right
	}
}

// node, right, left collected then replayed backwards
func (iterative[T]) postOrder(p *Node[T], visit Visitor[T]) {
	stack := make([]*Node[T], 0, p.Height())
	stack = append(stack, p)
	output := []*Node[T]{}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		output = append(output, p)
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}
	for i := len(output) - 1; i >= 0; i -= 1 {
		visit(output[i].value)
	}
}

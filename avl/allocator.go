// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// per tree list of reclaimed nodes, bounded by its capacity
type freeList[T any] struct {
	nodes []*Node[T]
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *Node[T] {
	n := len(tree.free.nodes) - 1
	if n < 0 {
		return &Node[T]{
			value:  value,
			height: 1,
		}
	}
	p := tree.free.nodes[n]
	tree.free.nodes[n] = nil
	tree.free.nodes = tree.free.nodes[:n]
	p.value = value
	p.height = 1
	return p
}

// reclaim a node that is no longer linked into the tree
func (tree *Tree[T]) freeNode(p *Node[T]) {
	var zero T
	p.left = nil
	p.right = nil
	p.value = zero // release any reference held by the value
	p.height = 0
	if len(tree.free.nodes) < cap(tree.free.nodes) {
		tree.free.nodes = append(tree.free.nodes, p)
	}
}

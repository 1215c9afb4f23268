// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // data for ordering
	height int      // 1 for a leaf
}

// to select a child of a node
type direction int

const (
	here  direction = iota
	left  direction = iota
	right direction = iota
)

// Value - read the value from a node item
func (p *Node[T]) Value() T {
	return p.value
}

// Left - the left sub-tree or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted at this node, zero for nil
func (p *Node[T]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: left height minus right height
func (p *Node[T]) balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// internal: must be called whenever a child link has changed
func (p *Node[T]) updateHeight() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

func (p *Node[T]) child(d direction) *Node[T] {
	if left == d {
		return p.left
	}
	return p.right
}

func (p *Node[T]) setChild(d direction, q *Node[T]) {
	if left == d {
		p.left = q
	} else {
		p.right = q
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single rotation, the left child becomes the sub-tree root
//
//        p            p1
//       / \          /  \
//      p1  c  ==>   a    p
//     / \               / \
//    a   b             b   c
func (tree *Tree[T]) rotateRight(p *Node[T]) *Node[T] {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("avl: rotate right at: %v without a left child", p.value)
	}
	p.left = p1.right
	p1.right = p

	// child before parent
	p.updateHeight()
	p1.updateHeight()

	if nil != tree.log {
		tree.log.Tracef("rotate right: %v → %v", p.value, p1.value)
	}
	return p1
}

// single rotation, the right child becomes the sub-tree root
func (tree *Tree[T]) rotateLeft(p *Node[T]) *Node[T] {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("avl: rotate left at: %v without a right child", p.value)
	}
	p.right = p1.left
	p1.left = p

	p.updateHeight()
	p1.updateHeight()

	if nil != tree.log {
		tree.log.Tracef("rotate left: %v → %v", p.value, p1.value)
	}
	return p1
}

// restore the balance of a node whose children are already balanced
// and returns the new sub-tree root
//
// a child with zero balance takes the single rotation, this is what
// separates LL from LR (and RR from RL) after a delete
func (tree *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	b := p.balance()
	switch {
	case b > 1: // left branch too high
		if p.left.balance() < 0 {
			// double LR rotation
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)

	case b < -1: // right branch too high
		if p.right.balance() > 0 {
			// double RL rotation
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)
	}
	return p
}

// after any change to the children of p
func (tree *Tree[T]) fixup(p *Node[T]) *Node[T] {
	p.updateHeight()
	return tree.rebalance(p)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Min - the lowest value, false if the tree is empty
func (tree *Tree[T]) Min() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// Max - the highest value, false if the tree is empty
func (tree *Tree[T]) Max() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - all values equal to value; at most one unless the tree keeps
// duplicates, in which case both children of every equal node are
// searched as well
func (tree *Tree[T]) Find(value T) []T {
	results := []T{}
	if nil == tree.root {
		return results
	}

	stack := []*Node[T]{tree.root}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		c := tree.compare(value, p.value)
		switch {
		case c < 0:
			if nil != p.left {
				stack = append(stack, p.left)
			}
		case c > 0:
			if nil != p.right {
				stack = append(stack, p.right)
			}
		default:
			results = append(results, p.value)
			if tree.ignoreDuplicates {
				return results
			}
			// left is searched first
			if nil != p.right {
				stack = append(stack, p.right)
			}
			if nil != p.left {
				stack = append(stack, p.left)
			}
		}
	}
	return results
}

// Includes - true if some value in the tree is equal to value
func (tree *Tree[T]) Includes(value T) bool {
	return nil != tree.search(value)
}

// internal: first node equal to value on the search path
func (tree *Tree[T]) search(value T) *Node[T] {
	p := tree.root
	for nil != p {
		c := tree.compare(value, p.value)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert values into the tree one at a time in order,
// returns the number of nodes added
func (tree *Tree[T]) Insert(values ...T) int {
	n := 0
	for _, value := range values {
		if tree.exec.insert(tree, value) {
			n += 1
		}
	}
	tree.count += n
	if nil != tree.log && len(values) > 1 {
		tree.log.Debugf("insert batch: %d values  added: %d  count: %d  height: %d", len(values), n, tree.count, tree.MaxHeight())
	}
	return n
}

// which way an inserted value goes from p, "here" means it is a
// duplicate that must be ignored
func (tree *Tree[T]) route(value T, p *Node[T]) direction {
	c := tree.compare(value, p.value)
	switch {
	case c < 0:
		return left
	case c > 0:
		return right
	case tree.ignoreDuplicates:
		return here
	case p.left.Height() < p.right.Height():
		return left
	default: // equal heights go right
		return right
	}
}

func (r recursive[T]) insert(tree *Tree[T], value T) bool {
	added := false
	tree.root, added = r.insertNode(tree, value, tree.root)
	return added
}

// internal routine for insert, returns the new sub-tree root
func (r recursive[T]) insertNode(tree *Tree[T], value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return tree.newNode(value), true
	}
	added := false
	switch tree.route(value, p) {
	case left:
		p.left, added = r.insertNode(tree, value, p.left)
	case right:
		p.right, added = r.insertNode(tree, value, p.right)
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	return tree.fixup(p), true
}

func (iterative[T]) insert(tree *Tree[T], value T) bool {
	path := make([]step[T], 0, tree.root.Height())
	p := tree.root
	for nil != p {
		d := tree.route(value, p)
		if here == d {
			return false
		}
		path = append(path, step[T]{node: p, dir: d})
		p = p.child(d)
	}
	tree.unwind(path, tree.newNode(value))
	return true
}

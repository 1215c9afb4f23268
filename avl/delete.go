// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one node equal to value, the first one met on the
// search path from the root; returns false if there was no such node
func (tree *Tree[T]) Delete(value T) bool {
	if nil == tree.root {
		return false
	}
	removed := tree.exec.delete(tree, value)
	if removed {
		tree.count -= 1
		if nil != tree.log {
			tree.log.Debugf("delete: %v  count: %d  height: %d", value, tree.count, tree.MaxHeight())
		}
	}
	return removed
}

// replace a node having at most one child by that child
func (tree *Tree[T]) splice(p *Node[T]) *Node[T] {
	q := p.left
	if nil == q {
		q = p.right
	}
	tree.freeNode(p)
	return q
}

func (r recursive[T]) delete(tree *Tree[T], value T) bool {
	removed := false
	tree.root, removed = r.deleteNode(tree, value, tree.root)
	return removed
}

// internal delete routine, returns the new sub-tree root
func (r recursive[T]) deleteNode(tree *Tree[T], value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}
	removed := false
	c := tree.compare(value, p.value)
	switch {
	case c < 0:
		p.left, removed = r.deleteNode(tree, value, p.left)
	case c > 0:
		p.right, removed = r.deleteNode(tree, value, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			return tree.splice(p), true
		}

		// copy the in-order successor up and remove it from its
		// original position, which has no left child
		successor := (*Node[T])(nil)
		p.right, successor = r.deleteMin(tree, p.right)
		p.value = successor.value
		tree.freeNode(successor)
		removed = true
	}
	if !removed {
		return p, false
	}
	return tree.fixup(p), true
}

// unlink the lowest node of a sub-tree, returns the new sub-tree root
// and the detached node
func (r recursive[T]) deleteMin(tree *Tree[T], p *Node[T]) (*Node[T], *Node[T]) {
	if nil == p.left {
		return p.right, p
	}
	lowest := (*Node[T])(nil)
	p.left, lowest = r.deleteMin(tree, p.left)
	return tree.fixup(p), lowest
}

func (iterative[T]) delete(tree *Tree[T], value T) bool {
	path := make([]step[T], 0, tree.root.Height())
	p := tree.root
	for nil != p {
		c := tree.compare(value, p.value)
		if 0 == c {
			break
		}
		d := right
		if c < 0 {
			d = left
		}
		path = append(path, step[T]{node: p, dir: d})
		p = p.child(d)
	}
	if nil == p { // value not in tree
		return false
	}

	if nil == p.left || nil == p.right {
		tree.unwind(path, tree.splice(p))
		return true
	}

	// extend the path down to the in-order successor
	path = append(path, step[T]{node: p, dir: right})
	q := p.right
	for nil != q.left {
		path = append(path, step[T]{node: q, dir: left})
		q = q.left
	}
	p.value = q.value
	rest := q.right
	tree.freeNode(q)
	tree.unwind(path, rest)
	return true
}

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

// Strategy - how insert, delete and depth first traversal are executed
type Strategy int

// execution strategies
const (
	Recursive Strategy = iota // use the call stack
	Iterative Strategy = iota // explicit stack, no call stack growth
)

// String - strategy name as used in configuration files
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy - convert a name from a configuration file
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "recursive":
		return Recursive, nil
	case "iterative", "stack":
		return Iterative, nil
	default:
		return Recursive, fault.ErrInvalidStrategy
	}
}

// the part of the tree algorithms that depends on the strategy; the
// routing, splicing and rebalancing steps are shared through the tree
type executor[T any] interface {
	insert(tree *Tree[T], value T) bool
	delete(tree *Tree[T], value T) bool
	traverse(p *Node[T], order Order, visit Visitor[T])
}

func newExecutor[T any](s Strategy) executor[T] {
	if Iterative == s {
		return iterative[T]{}
	}
	return recursive[T]{}
}

type recursive[T any] struct{}

type iterative[T any] struct{}

// one level of an explicit descent
type step[T any] struct {
	node *Node[T]
	dir  direction
}

// relink the (possibly new) sub-tree p into the recorded path from
// the bottom up, fixing heights and balance at every ancestor, and
// store the resulting root
func (tree *Tree[T]) unwind(path []step[T], p *Node[T]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		s := path[i]
		s.node.setChild(s.dir, p)
		p = tree.fixup(s.node)
	}
	tree.root = p
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"
)

// CompareFunc - three way comparison: negative if a < b, zero if
// a == b and positive if a > b
type CompareFunc[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root             *Node[T]
	count            int
	compare          CompareFunc[T]
	ignoreDuplicates bool
	strategy         Strategy
	exec             executor[T]
	free             freeList[T]
	log              *logger.L
}

// settings collected from the options before a tree is built
type settings struct {
	ignoreDuplicates bool
	strategy         Strategy
	freeList         int
	log              *logger.L
}

// Option - configures a tree in New
type Option func(*settings)

// IgnoreDuplicates - when true (the default) inserting a value that
// compares equal to one already in the tree does nothing
func IgnoreDuplicates(ignore bool) Option {
	return func(s *settings) {
		s.ignoreDuplicates = ignore
	}
}

// KeepDuplicates - store every inserted value, equal or not
func KeepDuplicates() Option {
	return IgnoreDuplicates(false)
}

// WithStrategy - select recursive or explicit stack execution
func WithStrategy(strategy Strategy) Option {
	return func(s *settings) {
		s.strategy = strategy
	}
}

// WithLogger - trace rotations and mutations on a logger channel
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithFreeList - keep up to n deleted nodes for reuse by later inserts
func WithFreeList(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.freeList = n
		}
	}
}

// New - create an initially empty tree
func New[T any](compare CompareFunc[T], options ...Option) *Tree[T] {
	s := settings{
		ignoreDuplicates: true,
		strategy:         Recursive,
	}
	for _, o := range options {
		o(&s)
	}

	tree := &Tree[T]{
		root:             nil,
		count:            0,
		compare:          compare,
		ignoreDuplicates: s.ignoreDuplicates,
		strategy:         s.strategy,
		exec:             newExecutor[T](s.strategy),
		free:             freeList[T]{nodes: make([]*Node[T], 0, s.freeList)},
		log:              s.log,
	}
	if nil != tree.log {
		tree.log.Debugf("new tree: strategy: %s  ignore duplicates: %t", s.strategy, s.ignoreDuplicates)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// MaxHeight - number of levels in the tree, zero when empty
func (tree *Tree[T]) MaxHeight() int {
	return tree.root.Height()
}

// Strategy - the execution strategy selected in New
func (tree *Tree[T]) Strategy() Strategy {
	return tree.strategy
}

// KeepsDuplicates - true if equal values are stored separately
func (tree *Tree[T]) KeepsDuplicates() bool {
	return !tree.ignoreDuplicates
}

// Clear - drop all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
}

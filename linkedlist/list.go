// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package linkedlist - a singly linked list with head and tail
// pointers
//
// Note: a list is not thread safe.
package linkedlist

import (
	"fmt"
	"strings"
)

// Node - one element of a list
type Node[T comparable] struct {
	value T
	next  *Node[T]
}

// Value - read the value from a node
func (n *Node[T]) Value() T {
	return n.value
}

// Next - the following node or nil at the tail
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List - holds the ends of the chain and its length
type List[T comparable] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New - create a list holding values in order
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, value := range values {
		l.Append(value)
	}
	return l
}

// Head - first node or nil
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail - last node or nil
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Length - number of nodes
func (l *List[T]) Length() int {
	return l.length
}

// Append - add a value after the tail
func (l *List[T]) Append(value T) *List[T] {
	n := &Node[T]{value: value}
	if nil == l.tail {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length += 1
	return l
}

// Prepend - add a value before the head
func (l *List[T]) Prepend(value T) *List[T] {
	l.head = &Node[T]{value: value, next: l.head}
	if nil == l.tail {
		l.tail = l.head
	}
	l.length += 1
	return l
}

// AppendAfter - insert value after the first node holding after,
// false if there is no such node
func (l *List[T]) AppendAfter(value T, after T) (*Node[T], bool) {
	p := l.FindFirst(after)
	if nil == p {
		return nil, false
	}
	n := &Node[T]{value: value, next: p.next}
	p.next = n
	if l.tail == p {
		l.tail = n
	}
	l.length += 1
	return n, true
}

// Find - every node holding value, in list order
func (l *List[T]) Find(value T) []*Node[T] {
	found := []*Node[T]{}
	for p := l.head; nil != p; p = p.next {
		if p.value == value {
			found = append(found, p)
		}
	}
	return found
}

// FindFirst - the first node holding value or nil
func (l *List[T]) FindFirst(value T) *Node[T] {
	for p := l.head; nil != p; p = p.next {
		if p.value == value {
			return p
		}
	}
	return nil
}

// Delete - remove every node holding value, returns the number removed
func (l *List[T]) Delete(value T) int {
	count := 0
	for nil != l.head && l.head.value == value {
		l.head = l.head.next
		count += 1
	}
	if nil == l.head {
		l.tail = nil
		l.length -= count
		return count
	}

	p := l.head
	for nil != p.next {
		if p.next.value == value {
			p.next = p.next.next
			count += 1
		} else {
			p = p.next
		}
	}
	l.tail = p
	l.length -= count
	return count
}

// Slice - copy of the values in list order
func (l *List[T]) Slice() []T {
	values := make([]T, 0, l.length)
	for p := l.head; nil != p; p = p.next {
		values = append(values, p.value)
	}
	return values
}

// String - comma separated values
func (l *List[T]) String() string {
	s := make([]string, 0, l.length)
	for p := l.head; nil != p; p = p.next {
		s = append(s, fmt.Sprint(p.value))
	}
	return strings.Join(s, ",")
}

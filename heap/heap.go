// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package heap - an array backed binary heap
//
// The order is given by a function that reports whether its first
// argument belongs above its second: "<" for a min-heap, ">" for a
// max-heap.
//
// Note: a heap is not thread safe.
package heap

// LessFunc - true if a must be nearer the top than b
type LessFunc[T any] func(a T, b T) bool

// Heap - holds the items in level order
type Heap[T any] struct {
	data []T
	less LessFunc[T]
}

// New - create a heap, optionally loaded with some initial items
func New[T any](less LessFunc[T], elements ...T) *Heap[T] {
	h := &Heap[T]{
		data: make([]T, 0, len(elements)),
		less: less,
	}
	h.PushMany(elements...)
	return h
}

// Size - number of items in the heap
func (h *Heap[T]) Size() int {
	return len(h.data)
}

// IsEmpty - true if there are no items
func (h *Heap[T]) IsEmpty() bool {
	return 0 == len(h.data)
}

// Clear - remove all items
func (h *Heap[T]) Clear() {
	h.data = nil
}

// Peek - the top item without removing it
func (h *Heap[T]) Peek() (T, bool) {
	if 0 == len(h.data) {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Push - add one item
func (h *Heap[T]) Push(value T) {
	h.data = append(h.data, value)
	h.up(len(h.data) - 1)
}

// PushMany - add items one at a time in order
func (h *Heap[T]) PushMany(values ...T) {
	for _, value := range values {
		h.Push(value)
	}
}

// Pop - remove and return the top item
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.data) - 1
	if n < 0 {
		return zero, false
	}
	top := h.data[0]
	h.data[0] = h.data[n]
	h.data[n] = zero // release the reference
	h.data = h.data[:n]
	if n > 0 {
		h.down(0)
	}
	return top, true
}

// move an item towards the top until its parent is not beaten
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// move an item towards the bottom, the right child is only chosen
// when it beats both the item and the left child
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		l := 2*i + 1
		r := l + 1
		swap := -1
		if l < n && h.less(h.data[l], h.data[i]) {
			swap = l
		}
		if r < n && h.less(h.data[r], h.data[i]) && (swap < 0 || h.less(h.data[r], h.data[l])) {
			swap = r
		}
		if swap < 0 {
			return
		}
		h.data[i], h.data[swap] = h.data[swap], h.data[i]
		i = swap
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree of arbitrary
// values ordered by a caller supplied three way comparison
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and every mutation
// re-computes heights and rebalances on the way back to the root.
// Insert and delete can run with either the go routine call stack
// (Recursive) or an explicit stack of (node, direction) pairs
// (Iterative); both share the same rotation logic and build the
// same trees for the same input.
//
// The comparison function must be a strict total order,
// i.e. antisymmetric and transitive.  This is not checked and the
// tree invariants will silently break if it does not hold.
//
// Duplicates are ignored by default, a repeated insert is a no-op.
// When duplicates are kept an equal value is routed to the lower of
// the two child sub-trees and Delete removes one matching node per
// call.
package avl

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance, cached heights and the node count
func (tree *Tree[T]) Check() error {
	n, err := tree.check(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  recorded: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, returns the number of nodes
func (tree *Tree[T]) check(p *Node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := tree.check(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.right)
	if nil != err {
		return 0, err
	}

	lh := p.left.Height()
	rh := p.right.Height()
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, fmt.Errorf("%w: at: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.value, p.height, h)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: at: %v  balance: %+d", fault.ErrUnbalanced, p.value, b)
	}

	// neighbours in sorted order
	if q := p.left.last(); nil != q {
		if c := tree.compare(q.value, p.value); c > 0 || (0 == c && tree.ignoreDuplicates) {
			return 0, fmt.Errorf("%w: left: %v  node: %v", fault.ErrOrdering, q.value, p.value)
		}
	}
	if q := p.right.first(); nil != q {
		if c := tree.compare(p.value, q.value); c > 0 || (0 == c && tree.ignoreDuplicates) {
			return 0, fmt.Errorf("%w: node: %v  right: %v", fault.ErrOrdering, p.value, q.value)
		}
	}
	return 1 + nl + nr, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// a node to visit and the open interval its key must lie in
type checkItem[K, V any] struct {
	p    *Node[K, V]
	up   *Node[K, V]
	low  *Node[K, V] // nil: unbounded
	high *Node[K, V] // nil: unbounded
}

// Check - verify ordering, parent links, heights, balance and count
// of the whole tree
func (tree *Tree[K, V]) Check() error {
	n := 0
	stack := []checkItem[K, V]{{p: tree.root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := item.p
		if nil == p {
			continue
		}
		n += 1

		if p.up != item.up {
			return fmt.Errorf("%w: at key: %v", fault.ErrParentLink, p.key)
		}
		if nil != item.low && tree.compare(item.low.key, p.key) >= 0 {
			return fmt.Errorf("%w: key: %v not above: %v", fault.ErrKeyOrder, p.key, item.low.key)
		}
		if nil != item.high && tree.compare(p.key, item.high.key) >= 0 {
			return fmt.Errorf("%w: key: %v not below: %v", fault.ErrKeyOrder, p.key, item.high.key)
		}

		l := height(p.left)
		r := height(p.right)
		expected := r + 1
		if l > r {
			expected = l + 1
		}
		if p.height != expected {
			return fmt.Errorf("%w: key: %v height: %d expected: %d", fault.ErrHeight, p.key, p.height, expected)
		}
		if l-r > 1 || r-l > 1 {
			return fmt.Errorf("%w: key: %v factor: %+d", fault.ErrBalance, p.key, l-r)
		}

		stack = append(stack,
			checkItem[K, V]{p: p.left, up: p, low: item.low, high: p},
			checkItem[K, V]{p: p.right, up: p, low: p, high: item.high},
		)
	}

	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d count: %d", fault.ErrCount, n, tree.count)
	}
	return nil
}

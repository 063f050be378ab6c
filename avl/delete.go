// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Remove - removes a specific key from the tree
// returns false, leaving the tree untouched, if key is absent
func (tree *Tree[K, V]) Remove(key K) (bool, error) {
	if tree.isNilKey(key) {
		return false, fault.ErrNilKey
	}

	q, c := tree.search(key)
	if nil == q || 0 != c {
		return false, nil
	}

	// two children: the successor's data moves up and its node goes
	if nil != q.left && nil != q.right {
		s := successor(q)
		q.key = s.key
		q.value = s.value
		q = s
	}

	parent := tree.splice(q)
	tree.freeNode(q)
	tree.count -= 1

	updateHeights(parent)

	// a delete can need rotations on several levels
	for p := parent; nil != p; p = p.up {
		tree.rebalance(p)
	}
	return true, nil
}

// unlink a node with at most one child, the child takes its slot
// returns the former parent of the node
func (tree *Tree[K, V]) splice(q *Node[K, V]) *Node[K, V] {
	child := q.left
	if nil == child {
		child = q.right
	}

	parent := q.up
	tree.replaceChild(parent, q, child)
	if nil != child {
		child.up = parent
	}
	return parent
}

// leftmost node of the right sub-tree
// only valid when p.right is not nil
func successor[K, V any](p *Node[K, V]) *Node[K, V] {
	return p.right.first()
}

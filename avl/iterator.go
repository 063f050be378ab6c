// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - ascending in-order traversal of a tree
//
// memory used is bounded by the height of the tree, an iterator
// cannot be restarted
type Iterator[K, V any] struct {
	stack []*Node[K, V]
}

// Iterator - create an iterator positioned before the lowest key
func (tree *Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{
		stack: make([]*Node[K, V], 0, tree.Height()+1),
	}
	it.pushLeft(tree.root)
	return it
}

// HasNext - true if Next will return an item
func (it *Iterator[K, V]) HasNext() bool {
	return len(it.stack) > 0
}

// Next - return the next key and its data, ok is false at the end
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	n := len(it.stack)
	if 0 == n {
		return key, value, false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.pushLeft(p.right)
	return p.key, p.value, true
}

// stack the left spine of a sub-tree
func (it *Iterator[K, V]) pushLeft(p *Node[K, V]) {
	for ; nil != p; p = p.left {
		it.stack = append(it.stack, p)
	}
}

// All - ascending sequence of key/data pairs for range loops
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := tree.Iterator()
		for {
			key, value, ok := it.Next()
			if !ok || !yield(key, value) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node[K, V]) Next() *Node[K, V] {
	if tree.right == nil {
		// climb until arriving from a left sub-tree
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.left == child {
				return tree
			}
		}
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node[K, V]) Prev() *Node[K, V] {
	if tree.left == nil {
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.right == child {
				return tree
			}
		}
	}
	return tree.left.last()
}

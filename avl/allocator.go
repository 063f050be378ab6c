// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	up     *Node[K, V] // points to parent node, never owns it
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // leaf = 0
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		return &Node[K, V]{
			up:     up,
			key:    key,
			value:  value,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = up // overwrites freelist pointer
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.up = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - fetch the data stored under key
func (tree *Tree[K, V]) Find(key K) (V, bool) {
	var zero V
	if tree.isNilKey(key) {
		return zero, false
	}
	p, c := tree.search(key)
	if nil == p || 0 != c {
		return zero, false
	}
	return p.value, true
}

// Search - find the node holding a specific key, nil if absent
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	if tree.isNilKey(key) {
		return nil
	}
	p, c := tree.search(key)
	if 0 != c {
		return nil
	}
	return p
}

// Update - replace the data of an existing key
// returns false, without adding anything, if key is absent
func (tree *Tree[K, V]) Update(key K, value V) bool {
	p := tree.Search(key)
	if nil == p {
		return false
	}
	p.value = value
	return true
}

// internal: descend from the root to the exact match or to the last
// node visited, which is the attachment point for an insert
//
// returns the node and compare(key, node.key); nil for an empty tree
func (tree *Tree[K, V]) search(key K) (*Node[K, V], int) {
	var previous *Node[K, V]
	c := 0
	for p := tree.root; nil != p; {
		previous = p
		c = tree.compare(key, p.key)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p, 0
		}
	}
	return previous, c
}

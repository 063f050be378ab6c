// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/bitmark-inc/avlmap/fault"
)

// CompareFunc - total order on keys: negative if a < b, zero if a == b
// and positive if a > b
type CompareFunc[K any] func(a, b K) int

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare CompareFunc[K]
	nilable bool // key type can hold nil

	pool      *Node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// New - create an initially empty tree ordered by compare
func New[K, V any](compare CompareFunc[K]) (*Tree[K, V], error) {
	if nil == compare {
		return nil, fault.ErrNilComparator
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		nilable: nilableType[K](),
	}, nil
}

// NewOrdered - create an empty tree for keys with a natural order
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		compare: cmp.Compare[K],
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - discard all nodes, including any reclaimed ones
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.freeNodes = 0
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// true if the zero value of K can be nil
func nilableType[K any]() bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// reject missing keys before any state change
func (tree *Tree[K, V]) isNilKey(key K) bool {
	if !tree.nilable {
		return false
	}
	v := reflect.ValueOf(&key).Elem()
	return v.IsNil()
}

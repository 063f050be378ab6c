// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// link newChild into the slot of parent that held oldChild
// a nil parent means the slot is the root
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], oldChild *Node[K, V], newChild *Node[K, V]) {
	switch {
	case nil == parent:
		tree.root = newChild
	case oldChild == parent.left:
		parent.left = newChild
	default:
		parent.right = newChild
	}
}

// zig: clockwise rotation about p
//
//	      g                 g
//	      |                 |
//	      p                 c
//	     / \               / \
//	    c   D     =>      A   p
//	   / \                   / \
//	  A   B                 B   D
//
// only p's height is recomputed, c is left for the caller
func (tree *Tree[K, V]) zig(p *Node[K, V]) {
	c := p.left

	p.left = c.right
	if nil != p.left {
		p.left.up = p
	}

	c.up = p.up
	tree.replaceChild(p.up, p, c)

	c.right = p
	p.up = c

	fixHeight(p)
}

// zag: counter clockwise rotation about p
//
//	    g                     g
//	    |                     |
//	    p                     c
//	   / \                   / \
//	  A   c       =>        p   D
//	     / \               / \
//	    B   D             A   B
//
// only p's height is recomputed, c is left for the caller
func (tree *Tree[K, V]) zag(p *Node[K, V]) {
	c := p.right

	p.right = c.left
	if nil != p.right {
		p.right.up = p
	}

	c.up = p.up
	tree.replaceChild(p.up, p, c)

	c.left = p
	p.up = c

	fixHeight(p)
}

// restore the balance at p with a single or double rotation
// returns false if p was already balanced
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) bool {
	factor := balance(p)
	switch {
	case factor > 1: // left heavy
		if balance(p.left) < 0 {
			// double LR rotation
			tree.zag(p.left)
		}
		tree.zig(p)

	case factor < -1: // right heavy
		if balance(p.right) > 0 {
			// double RL rotation
			tree.zig(p.right)
		}
		tree.zag(p)

	default:
		return false
	}

	// p is now a child of the new sub-tree root
	updateHeights(p.up)
	return true
}

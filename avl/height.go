// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty one is -1
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// balance factor: left height - right height
func balance[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute one node from its children
func fixHeight[K, V any](p *Node[K, V]) {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

// recompute heights from p up to the root
func updateHeights[K, V any](p *Node[K, V]) {
	for ; nil != p; p = p.up {
		fixHeight(p)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Insert - insert a new key into the tree
// returns false, leaving the tree untouched, if key is already present
func (tree *Tree[K, V]) Insert(key K, value V) (bool, error) {
	if tree.isNilKey(key) {
		return false, fault.ErrNilKey
	}

	parent, c := tree.search(key)
	if nil == parent {
		tree.root = tree.newNode(key, value, nil)
		tree.count += 1
		return true, nil
	}
	if 0 == c {
		return false, nil
	}

	p := tree.newNode(key, value, parent)
	if c < 0 {
		parent.left = p
	} else {
		parent.right = p
	}
	tree.count += 1

	updateHeights(parent)

	// one rotation is always enough after a single insert
	for g := parent.up; nil != g; g = g.up {
		if tree.rebalance(g) {
			break
		}
	}
	return true, nil
}

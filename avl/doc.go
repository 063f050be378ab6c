// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered map with the addition of
// parent pointers to allow upward traversal of the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are ordered by a comparison function supplied when the tree is
// created.  Each node records the height of its sub-tree (a leaf has
// height zero, an empty sub-tree -1) and after every insert or
// delete the heights are recomputed bottom-up and the balance is
// restored by single or double rotations.
//
// Inserting a key that is already present does not overwrite its
// data, use Update for that.
//
// Iterators are not stable: structurally modifying the tree while an
// iterator is live gives undefined results.
package avl

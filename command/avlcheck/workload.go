// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"github.com/tidwall/btree"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// counters accumulated over a complete workload run
type workloadResult struct {
	Inserted   int // new keys
	Duplicates int // inserts of keys already present
	Removed    int
	Absent     int // removes of keys not present
	Count      int
	MaxHeight  int
	Checks     int
}

// state shared by the individual operations of a run
type workload struct {
	log        *logger.L
	tree       *avl.Tree[int, int]
	model      btree.Map[int, int]
	result     workloadResult
	checkEvery int
	operations int
}

// maximum height of an AVL tree holding n nodes
func heightBound(n int) int {
	return int(1.4405*math.Log2(float64(n+2)) - 0.3277)
}

// run a seeded sequence of inserts and removes, comparing each result
// against a B-tree holding the same keys
func runWorkload(log *logger.L, parameters WorkloadType) (*workloadResult, error) {

	log.Infof("seed: %d  rounds: %d  operations: %d  key range: %d", parameters.Seed, parameters.Rounds, parameters.Operations, parameters.KeyRange)

	r := rand.New(rand.NewSource(parameters.Seed))

	w := &workload{
		log:        log,
		tree:       avl.NewOrdered[int, int](),
		checkEvery: parameters.CheckEvery,
	}
	w.result.MaxHeight = -1

	removals := parameters.Operations * parameters.RemovePercent / 100

	for round := 1; round <= parameters.Rounds; round += 1 {

		for i := 0; i < parameters.Operations; i += 1 {
			if err := w.insert(r.Intn(parameters.KeyRange), r.Int()); nil != err {
				return nil, err
			}
		}

		for i := 0; i < removals; i += 1 {
			if err := w.remove(r.Intn(parameters.KeyRange)); nil != err {
				return nil, err
			}
		}

		if err := w.verify(); nil != err {
			return nil, err
		}
		if err := w.compareOrder(); nil != err {
			return nil, err
		}

		log.Infof("round: %d  count: %d  height: %d", round, w.tree.Count(), w.tree.Height())
	}

	w.result.Count = w.tree.Count()
	log.Infof("result: %+v", w.result)

	return &w.result, nil
}

func (w *workload) insert(key int, value int) error {
	added, err := w.tree.Insert(key, value)
	if nil != err {
		return err
	}

	_, present := w.model.Get(key)
	if added == present {
		return fmt.Errorf("%w: insert: %d  added: %t  present: %t", fault.ErrWorkloadMismatch, key, added, present)
	}
	if added {
		w.model.Set(key, value)
		w.result.Inserted += 1
	} else {
		w.result.Duplicates += 1
	}

	return w.step(key)
}

func (w *workload) remove(key int) error {
	removed, err := w.tree.Remove(key)
	if nil != err {
		return err
	}

	_, present := w.model.Delete(key)
	if removed != present {
		return fmt.Errorf("%w: remove: %d  removed: %t  present: %t", fault.ErrWorkloadMismatch, key, removed, present)
	}
	if removed {
		w.result.Removed += 1
	} else {
		w.result.Absent += 1
	}

	return w.step(key)
}

// per operation checks
func (w *workload) step(key int) error {
	value, found := w.tree.Find(key)
	expected, present := w.model.Get(key)
	if found != present || value != expected {
		return fmt.Errorf("%w: find: %d  tree: %d/%t  model: %d/%t", fault.ErrWorkloadMismatch, key, value, found, expected, present)
	}

	w.operations += 1
	if w.checkEvery > 0 && 0 == w.operations%w.checkEvery {
		return w.verify()
	}
	return nil
}

// structural checks
func (w *workload) verify() error {
	w.result.Checks += 1

	if err := w.tree.Check(); nil != err {
		w.log.Errorf("check after %d operations failed: %s", w.operations, err)
		return err
	}

	count := w.tree.Count()
	if count != w.model.Len() {
		return fmt.Errorf("%w: count: %d  model: %d", fault.ErrWorkloadMismatch, count, w.model.Len())
	}

	h := w.tree.Height()
	if h > heightBound(count) {
		return fmt.Errorf("%w: height: %d  count: %d  bound: %d", fault.ErrTooHigh, h, count, heightBound(count))
	}
	if h > w.result.MaxHeight {
		w.result.MaxHeight = h
	}
	return nil
}

// ascending iteration must visit exactly the keys of the model
func (w *workload) compareOrder() error {
	next := w.tree.Iterator().Next

	var err error
	w.model.Scan(func(key int, value int) bool {
		k, v, ok := next()
		if !ok {
			err = fmt.Errorf("%w: tree ended before model key: %d", fault.ErrWorkloadMismatch, key)
			return false
		}
		if k != key || v != value {
			err = fmt.Errorf("%w: tree: %d → %d  model: %d → %d", fault.ErrWorkloadMismatch, k, v, key, value)
			return false
		}
		return true
	})
	if nil != err {
		return err
	}
	if k, _, ok := next(); ok {
		return fmt.Errorf("%w: tree has extra key: %d", fault.ErrWorkloadMismatch, k)
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	dbutil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// database key, printed as hex
type dbKey []byte

func (k dbKey) String() string {
	return hex.EncodeToString(k)
}

func compareKeys(a dbKey, b dbKey) int {
	return bytes.Compare(a, b)
}

// subset of the leveldb iterator used to fill a tree
type keySource interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

// open a database read-only and load all keys matching the prefix
func loadDatabase(log *logger.L, config LevelDBType) (*avl.Tree[dbKey, []byte], error) {

	if "" == config.Database {
		return nil, fault.ErrRequiredDatabase
	}
	if !util.EnsureFileExists(config.Database) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotFoundDatabase, config.Database)
	}

	prefix, err := hex.DecodeString(config.Prefix)
	if nil != err {
		return nil, fmt.Errorf("prefix: %q  error: %w", config.Prefix, err)
	}

	db, err := leveldb.OpenFile(config.Database, &opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if nil != err {
		return nil, err
	}
	defer db.Close()

	var r *dbutil.Range
	if len(prefix) > 0 {
		r = dbutil.BytesPrefix(prefix)
	}

	log.Infof("database: %q  prefix: %x", config.Database, prefix)

	tree, err := avl.New[dbKey, []byte](compareKeys)
	if nil != err {
		return nil, err
	}

	order, err := loadKeys(tree, db.NewIterator(r, nil))
	if nil != err {
		return nil, err
	}

	if err := verifyOrder(tree, order); nil != err {
		return nil, err
	}

	if err := tree.Check(); nil != err {
		return nil, err
	}

	log.Infof("loaded: %d keys  height: %d", tree.Count(), tree.Height())
	return tree, nil
}

// insert copies of every key/value from the source, returning the keys
// in the order the source delivered them
func loadKeys(tree *avl.Tree[dbKey, []byte], source keySource) ([]dbKey, error) {
	defer source.Release()

	order := make([]dbKey, 0, 64)
	for source.Next() {

		// iterator buffers are reused by the next call
		k := source.Key()
		key := make(dbKey, len(k))
		copy(key, k)
		v := source.Value()
		value := make([]byte, len(v))
		copy(value, v)

		added, err := tree.Insert(key, value)
		if nil != err {
			return nil, err
		}
		if !added {
			return nil, fmt.Errorf("%w: duplicate key: %s", fault.ErrOrderMismatch, key)
		}
		order = append(order, key)
	}

	if err := source.Error(); nil != err {
		return nil, err
	}
	return order, nil
}

// the tree must return the keys in the same sequence as the database
func verifyOrder(tree *avl.Tree[dbKey, []byte], order []dbKey) error {
	if tree.Count() != len(order) {
		return fmt.Errorf("%w: count: %d  source: %d", fault.ErrOrderMismatch, tree.Count(), len(order))
	}

	i := 0
	for key := range tree.All() {
		if !bytes.Equal(key, order[i]) {
			return fmt.Errorf("%w: position: %d  tree: %s  source: %s", fault.ErrOrderMismatch, i, key, order[i])
		}
		i += 1
	}
	return nil
}

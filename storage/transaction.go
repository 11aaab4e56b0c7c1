// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Transaction - all or nothing group of writes to the region
type Transaction interface {
	Commit() error
	Abort()
}

// one batch per region; only one transaction may be open at a time
type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *dbCache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// Begin - open the region's transaction
func (r *Region) Begin() (Transaction, error) {
	t := r.trx
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return nil, fault.ErrTransactionInUse
	}
	t.inUse = true
	return t, nil
}

// InTransaction - true while a transaction is open
func (r *Region) InTransaction() bool {
	t := r.trx
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) put(key []byte, value []byte) bool {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		return false
	}
	t.cache.Set(dbPut, string(key), value)
	t.batch.Put(key, value)
	return true
}

func (t *transaction) delete(key []byte) bool {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		return false
	}
	t.cache.Set(dbDelete, string(key), nil)
	t.batch.Delete(key)
	return true
}

// pending value if the key was written in this transaction
func (t *transaction) pending(key []byte) ([]byte, bool) {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		return nil, false
	}
	return t.cache.Get(string(key))
}

// Commit - write the batch in one atomic LevelDB write
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrNotInitialised
	}
	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard every pending write
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

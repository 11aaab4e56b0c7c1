// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// FetchCursor - iterate committed records of a pool
//
// pending writes of an open transaction are not visible
type FetchCursor struct {
	pool     *PoolHandle
	maxRange *util.Range
}

// NewFetchCursor - initialise a cursor over every key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: util.BytesPrefix(p.prefix),
	}
}

// Prefix - restrict the cursor to keys starting with the given bytes
func (cursor *FetchCursor) Prefix(key []byte) *FetchCursor {
	cursor.maxRange = util.BytesPrefix(cursor.pool.prefixKey(key))
	return cursor
}

// Seek - move cursor start to a specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements and advance the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCount
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) bool {
		results = append(results, Element{Key: key, Value: value})
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// next start is just after the last key returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCount
	}

	var err error
	iterError := cursor.iterate(func(key []byte, value []byte) bool {
		err = f(key, value)
		return nil == err
	})
	if nil != err {
		return err
	}
	return iterError
}

// call f with the prefix stripped key and copies of the data; stop when f returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) bool) error {
	region := cursor.pool.region
	region.RLock()
	defer region.RUnlock()

	if nil == region.db {
		return nil
	}

	iter := region.db.NewIterator(cursor.maxRange, nil)
	defer iter.Release()

	n := len(cursor.pool.prefix)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-n) // strip the prefix
		copy(dataKey, key[n:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break
		}
	}
	return iter.Error()
}

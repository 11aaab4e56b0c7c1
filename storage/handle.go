// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - the interface of a single field of the region
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	Put([]byte, []byte)
	PutN([]byte, uint64)
	Delete([]byte)
}

// PoolHandle - one field of one namespace
type PoolHandle struct {
	name   string
	prefix []byte
	region *Region
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, len(p.prefix), len(p.prefix)+len(key))
	copy(prefixedKey, p.prefix)
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair in the open transaction
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.region.RLock()
	defer p.region.RUnlock()
	if nil == p.region.db {
		logger.Panicf("pool.Put: %s: nil database", p.name)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	if !p.region.trx.put(p.prefixKey(key), stored) {
		logger.Panicf("pool.Put: %s: no open transaction", p.name)
	}
}

// PutN - store a big endian uint64
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key in the open transaction
func (p *PoolHandle) Delete(key []byte) {
	p.region.RLock()
	defer p.region.RUnlock()
	if nil == p.region.db {
		logger.Panicf("pool.Delete: %s: nil database", p.name)
	}
	if !p.region.trx.delete(p.prefixKey(key)) {
		logger.Panicf("pool.Delete: %s: no open transaction", p.name)
	}
}

// Get - read a value for a given key
//
// pending writes of the open transaction take precedence over the database
func (p *PoolHandle) Get(key []byte) []byte {
	p.region.RLock()
	defer p.region.RUnlock()
	if nil == p.region.db {
		return nil
	}

	prefixedKey := p.prefixKey(key)
	if value, found := p.region.trx.pending(prefixedKey); found {
		return value
	}

	value, err := p.region.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN: %s: truncated record for: %x: %x", p.name, key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// Name - the field name, for logging
func (p *PoolHandle) Name() string {
	return p.name
}

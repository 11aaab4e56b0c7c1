// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// pending writes of the open transaction so that reads inside the
// transaction observe them before they are committed
type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - value, and whether the key has a pending operation at all
//
// a pending delete returns found with a nil value
func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true
	}
	return data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/eqledgerd/slot"
	"github.com/bitmark-inc/logger"
)

// namespaces of the upgradeable components
const (
	NamespaceToken         = "luna.storage.EqToken"
	NamespaceAccessControl = "luna.storage.AccessControl"
	NamespaceUpgrade       = "luna.storage.Upgrade"
	NamespaceHost          = "luna.storage.Host"
)

// Pools - the offset table of every persisted field
//
// note all must be exported (i.e. initial capital) or initialisation will panic
// append only: never renumber or remove a field
type Pools struct {
	TokenExistence *PoolHandle `namespace:"luna.storage.EqToken" field:"0"`
	Balances       *PoolHandle `namespace:"luna.storage.EqToken" field:"1"`
	TotalSupply    *PoolHandle `namespace:"luna.storage.EqToken" field:"2"`
	Operators      *PoolHandle `namespace:"luna.storage.EqToken" field:"3"`
	MetadataURI    *PoolHandle `namespace:"luna.storage.EqToken" field:"4"`
	RoleMembers    *PoolHandle `namespace:"luna.storage.AccessControl" field:"0"`
	RoleAdmin      *PoolHandle `namespace:"luna.storage.AccessControl" field:"1"`
	Initialised    *PoolHandle `namespace:"luna.storage.Upgrade" field:"0"`
	Version        *PoolHandle `namespace:"luna.storage.Upgrade" field:"1"`
	Height         *PoolHandle `namespace:"luna.storage.Host" field:"0"`
	Implementation *PoolHandle `namespace:"luna.storage.Host" field:"1"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// Region - the persistent storage region shared by all logic modules
type Region struct {
	sync.RWMutex
	log   *logger.L
	db    *leveldb.DB
	trx   *transaction
	Pools Pools
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open or create the database file
func Open(database string, readOnly bool) (*Region, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a region that is discarded on Close, for tests and dry runs
func OpenMemory() (*Region, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Region, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	r := &Region{
		log: logger.New("storage"),
		db:  db,
	}
	r.trx = newTransaction(db)

	err = r.scanPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return r, nil
}

// fill in each pool handle from its struct tags
func (r *Region) scanPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(r.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&r.Pools).Elem()

	seen := make(map[string]string)

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		namespace := fieldInfo.Tag.Get("namespace")
		s, err := slot.New(namespace)
		if nil != err {
			return fmt.Errorf("pool: %s has invalid namespace: %q", fieldInfo.Name, namespace)
		}

		offset, err := strconv.ParseUint(fieldInfo.Tag.Get("field"), 10, 8)
		if nil != err {
			return fmt.Errorf("pool: %s has invalid field offset: %q", fieldInfo.Name, fieldInfo.Tag.Get("field"))
		}

		prefix := s.Field(byte(offset))
		if previous, ok := seen[string(prefix)]; ok {
			return fmt.Errorf("pool: %s has the same location as: %s", fieldInfo.Name, previous)
		}
		seen[string(prefix)] = fieldInfo.Name

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			region: r,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))

		r.log.Debugf("pool: %s  namespace: %q  base: %x", fieldInfo.Name, namespace, prefix)
	}
	return nil
}

// Close - close the database connection
func (r *Region) Close() {
	r.Lock()
	defer r.Unlock()
	if nil != r.db {
		r.db.Close()
		r.db = nil
	}
}

// return the version number, zero for a new database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

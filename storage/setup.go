// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets         *PoolHandle `prefix:"A"`
	TransferCount  *PoolHandle `prefix:"L"`
	TransferLog    *PoolHandle `prefix:"T"`
	Authorisations *PoolHandle `prefix:"O"`
	Nonces         *PoolHandle `prefix:"K"`
	Contract       *PoolHandle `prefix:"C"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database with its pools and its single transaction
type Store struct {
	sync.Mutex

	log      *logger.L
	db       *leveldb.DB
	trx      *transaction
	readOnly bool

	Pool Pools
}

// Open - open or create a LevelDB database directory
func Open(name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return initialise(db, readOnly)
}

// OpenMemory - a database held entirely in memory
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return initialise(db, ReadWrite)
}

func initialise(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			log.Critical("read-only database has no version")
			return nil, fault.DatabaseIsNotSet
		}
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d < current version: %d", version, currentDBVersion)
	}

	store := &Store{
		log:      log,
		db:       db,
		trx:      newTransaction(db),
		readOnly: readOnly,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &PoolHandle{
			prefix: prefixTag[0],
			db:     db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened database version: %d  read only: %t", currentDBVersion, readOnly)

	ok = true // prevent db close
	return store, nil
}

// Close - close the database connection
func (store *Store) Close() {
	store.Lock()
	defer store.Unlock()

	if nil != store.db {
		store.db.Close()
		store.db = nil
	}
}

// IsReadOnly - true if writes are not possible
func (store *Store) IsReadOnly() bool {
	return store.readOnly
}

// Begin - start the single write transaction
func (store *Store) Begin() (Transaction, error) {
	if store.readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}

	store.Lock()
	defer store.Unlock()

	if nil == store.db {
		return nil, fault.DatabaseIsNotSet
	}
	if err := store.trx.begin(); nil != err {
		return nil, err
	}
	return store.trx, nil
}

// return:
//   version number
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

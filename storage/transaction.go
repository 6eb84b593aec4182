// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - staged writes applied as a single batch
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *stagedCache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.StorageTransactionInUse
	}
	t.inUse = true
	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - stage a key/value pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.Lock()
	defer t.Unlock()
	t.mustBeInUse()

	t.cache.set(dbPut, prefixedKey, stored)
	t.batch.Put(prefixedKey, stored)
}

// PutN - stage a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

// Delete - stage removal of a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	prefixedKey := p.prefixKey(key)

	t.Lock()
	defer t.Unlock()
	t.mustBeInUse()

	t.cache.set(dbDelete, prefixedKey, nil)
	t.batch.Delete(prefixedKey)
}

// Get - staged value if any, otherwise the committed value
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	value, staged := t.cache.get(p.prefixKey(key))
	t.Unlock()

	if staged {
		return value
	}
	return p.Get(key)
}

// GetN - staged or committed big endian uint64 value
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check a key in the staged view
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	value, staged := t.cache.get(p.prefixKey(key))
	t.Unlock()

	if staged {
		return nil != value
	}
	return p.Has(key)
}

// Commit - write all staged data in one batch
//
// the transaction is released whether or not the write succeeds; on
// failure nothing was written
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.StorageTransactionNotStarted
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.clear()
	t.inUse = false
}

func (t *transaction) mustBeInUse() {
	if !t.inUse {
		logger.Panic("storage: write outside of a transaction")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

const (
	dbPut = iota
	dbDelete
)

// staged writes of the open transaction keyed by prefixed key
//
// entries live until the transaction commits or aborts
type stagedCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() *stagedCache {
	return &stagedCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// return the staged value and whether the key has been staged at all
//
// a staged delete returns nil, true so the committed value is hidden
func (c *stagedCache) get(key []byte) ([]byte, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true
	}
	return data.value, true
}

func (c *stagedCache) set(op int, key []byte, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(string(key), cached, cache.NoExpiration)
}

func (c *stagedCache) count() int {
	return c.cache.ItemCount()
}

func (c *stagedCache) clear() {
	c.cache.Flush()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Scan - call f for each committed element of the pool in key order
//
// f receives copies with the pool prefix stripped from the key; the
// first error from f stops the scan and is returned
func (p *PoolHandle) Scan(f func(key []byte, value []byte) error) error {
	iter := p.db.NewIterator(util.BytesPrefix([]byte{p.prefix}), nil)
	defer iter.Release()

	for iter.Next() {
		key := append([]byte(nil), iter.Key()[1:]...)
		value := append([]byte(nil), iter.Value()...)
		if err := f(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}

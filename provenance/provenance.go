// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package provenance - append-only audit trail of transfers per loan token
//
// the trail grows without bound; Get always returns the whole history
package provenance

import (
	"encoding/binary"

	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   L ++ asset id                  - count
//   T ++ asset id ++ 0x00 ++ count - packed TransferRecord

// Initialise - create the empty trail of a new loan token
func Initialise(ctx *execution.Context, id string) {
	ctx.Trx.PutN(ctx.Pool.TransferCount, []byte(id), 0)
}

// Append - add a record to the end of a token's trail
//
// sequences within a trail must be strictly increasing
func Append(ctx *execution.Context, transfer *record.TransferRecord) error {
	id := []byte(transfer.AssetId)
	count, _ := ctx.Trx.GetN(ctx.Pool.TransferCount, id)

	if count > 0 {
		last, err := get(ctx.Trx, ctx.Pool, transfer.AssetId, count-1)
		if nil != err {
			return err
		}
		if transfer.Sequence <= last.Sequence {
			return fault.SequenceNotIncreasing
		}
	}

	ctx.Trx.Put(ctx.Pool.TransferLog, recordKey(transfer.AssetId, count), transfer.Pack())
	ctx.Trx.PutN(ctx.Pool.TransferCount, id, count+1)
	return nil
}

// Count - number of records in a token's trail
func Count(reader storage.Reader, pool *storage.Pools, id string) uint64 {
	count, _ := reader.GetN(pool.TransferCount, []byte(id))
	return count
}

// Get - the whole trail of a token in append order
//
// an unknown token or a token without transfers gives an empty list
func Get(reader storage.Reader, pool *storage.Pools, id string) []record.TransferRecord {
	count := Count(reader, pool, id)

	history := make([]record.TransferRecord, 0, count)
	for i := uint64(0); i < count; i += 1 {
		transfer, err := get(reader, pool, id, i)
		if nil != err {
			logger.Panicf("provenance: token: %q  record: %d  error: %s", id, i, err)
		}
		history = append(history, *transfer)
	}
	return history
}

func get(reader storage.Reader, pool *storage.Pools, id string, index uint64) (*record.TransferRecord, error) {
	packed := reader.Get(pool.TransferLog, recordKey(id, index))
	if nil == packed {
		return nil, fault.TransferRecordNotFound
	}

	unpacked, _, err := record.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	transfer, ok := unpacked.(*record.TransferRecord)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return transfer, nil
}

// asset id ++ 0x00 ++ big endian index
func recordKey(id string, index uint64) []byte {
	key := make([]byte, len(id)+1+8)
	copy(key, id)
	key[len(id)] = 0x00
	binary.BigEndian.PutUint64(key[len(id)+1:], index)
	return key
}

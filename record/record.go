// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
//
// must cast to the correct type after Unpack
type Record interface{}

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded as a Varint at the start of the record
const (
	// stored records
	LoanTokenTag TagType = iota + 1
	TransferRecordTag

	// signed requests
	AuthoriseOriginatorTag
	RevokeOriginatorTag
	RegisterLoanTokenTag
	TransferOwnershipTag
	UpdateLifecycleTag

	// this item must be last
	InvalidTag
)

// limits
const (
	maxStringLength    = 8192
	maxSignatureLength = 64
	maxOwners          = 10000
)

// MarshalText - hex form for logging
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	buffer := make([]byte, size)
	hex.Encode(buffer, record)
	return buffer, nil
}

// Unpack - turn a byte slice into a stored record
//
// returns the record, the number of bytes consumed and any error
//
// e.g.
//   switch r := result.(type) {
//   case *record.LoanToken:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.NotPackedRecord
		}
	}()

	recordType, n := util.VarintInRange(record, 1, int(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.NotPackedRecord
	}

	switch TagType(recordType) {

	case LoanTokenTag:
		token := &LoanToken{}
		var err error

		if token.Id, n, err = unpackString(record, n); nil != err {
			return nil, 0, err
		}
		if token.ExternalReferenceId, n, err = unpackString(record, n); nil != err {
			return nil, 0, err
		}
		if token.TotalValue, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}

		var status uint64
		if status, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		token.Status = Status(status)
		if !token.Status.Valid() {
			return nil, 0, fault.InvalidStatus
		}

		if token.CreatedAt, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		if token.UpdatedAt, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		if token.Issuer, n, err = unpackAccount(record, n); nil != err {
			return nil, 0, err
		}

		count, countLength := util.VarintInRange(record[n:], 1, maxOwners)
		if 0 == countLength {
			return nil, 0, fault.PackedTooShort
		}
		n += countLength

		token.Owners = make([]Stake, count)
		for i := 0; i < count; i += 1 {
			if token.Owners[i].Owner, n, err = unpackAccount(record, n); nil != err {
				return nil, 0, err
			}
			if token.Owners[i].Fraction, n, err = unpackUint64(record, n); nil != err {
				return nil, 0, err
			}
		}
		return token, n, nil

	case TransferRecordTag:
		transfer := &TransferRecord{}
		var err error

		if transfer.AssetId, n, err = unpackString(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.From, n, err = unpackAccount(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.To, n, err = unpackAccount(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.Fraction, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.Price, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.Timestamp, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		if transfer.Sequence, n, err = unpackUint64(record, n); nil != err {
			return nil, 0, err
		}
		return transfer, n, nil

	default:
	}
	return nil, 0, fault.UnknownRecordType
}

// append a string to a buffer
//
// the field is prefixed by Varint(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint(length)
func appendAccount(buffer Packed, a account.Account) Packed {
	return appendBytes(buffer, a.Bytes())
}

// append a bytes to a buffer
//
// the field is prefixed by Varint(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint(buffer, value)
}

func unpackUint64(record Packed, n int) (uint64, int, error) {
	value, length := util.Varint(record[n:])
	if 0 == length {
		return 0, 0, fault.PackedTooShort
	}
	return value, n + length, nil
}

func unpackBytes(record Packed, n int) ([]byte, int, error) {
	length, offset := util.VarintInRange(record[n:], 0, maxStringLength)
	if 0 == offset {
		return nil, 0, fault.PackedTooShort
	}
	n += offset
	if n+length > len(record) {
		return nil, 0, fault.PackedTooShort
	}
	data := make([]byte, length)
	copy(data, record[n:n+length])
	return data, n + length, nil
}

func unpackString(record Packed, n int) (string, int, error) {
	data, n, err := unpackBytes(record, n)
	if nil != err {
		return "", 0, err
	}
	return string(data), n, nil
}

func unpackAccount(record Packed, n int) (account.Account, int, error) {
	data, n, err := unpackBytes(record, n)
	if nil != err {
		return account.Account{}, 0, err
	}
	a, err := account.FromBytes(data)
	if nil != err {
		return account.Account{}, 0, err
	}
	return a, n, nil
}

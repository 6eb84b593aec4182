// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/util"
)

// TransferRecord - one entry of the audit trail of a loan token
type TransferRecord struct {
	AssetId   string          `json:"assetId"`
	From      account.Account `json:"from"`
	To        account.Account `json:"to"`
	Fraction  uint64          `json:"fraction"` // basis points
	Price     uint64          `json:"price,string"`
	Timestamp uint64          `json:"timestamp"` // nanoseconds
	Sequence  uint64          `json:"sequence"`
}

// Pack - binary form for storage
func (transfer *TransferRecord) Pack() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(TransferRecordTag)))
	buffer = appendString(buffer, transfer.AssetId)
	buffer = appendAccount(buffer, transfer.From)
	buffer = appendAccount(buffer, transfer.To)
	buffer = appendUint64(buffer, transfer.Fraction)
	buffer = appendUint64(buffer, transfer.Price)
	buffer = appendUint64(buffer, transfer.Timestamp)
	return appendUint64(buffer, transfer.Sequence)
}

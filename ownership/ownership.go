// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - movement of fractional stakes between holders
package ownership

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/asset"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/provenance"
	"github.com/bitmark-inc/loanledger/record"
)

// Transfer - move a fraction of the caller's stake to another account
//
// all checks are made before anything is staged; the new owner list is
// verified to still sum to 100% before it is stored
func Transfer(ctx *execution.Context, id string, to account.Account, fraction uint64, price uint64) (*record.TransferRecord, error) {

	token, err := asset.Get(ctx.Trx, ctx.Pool, id)
	if nil != err {
		return nil, err
	}
	if record.Active != token.Status {
		return nil, fault.AssetIsNotActive
	}
	if 0 == fraction || fraction > record.TotalFraction {
		return nil, fault.FractionOutOfRange
	}
	if to.IsZero() {
		return nil, fault.ZeroAccount
	}
	if to == ctx.Caller {
		return nil, fault.SelfTransfer
	}

	from := token.StakeOf(ctx.Caller)
	if from < 0 {
		return nil, fault.NotOwner
	}
	if token.Owners[from].Fraction < fraction {
		return nil, fault.InsufficientStake
	}

	owners := move(token.Owners, from, to, fraction)
	if err := record.CheckOwners(owners); nil != err {
		return nil, err
	}

	token.Owners = owners
	token.UpdatedAt = ctx.Timestamp
	asset.Put(ctx, token)

	transfer := &record.TransferRecord{
		AssetId:   id,
		From:      ctx.Caller,
		To:        to,
		Fraction:  fraction,
		Price:     price,
		Timestamp: ctx.Timestamp,
		Sequence:  ctx.Sequence,
	}
	if err := provenance.Append(ctx, transfer); nil != err {
		return nil, err
	}

	ctx.Emit(event.OwnershipTransferred, event.Transfer{
		TokenId:   id,
		From:      ctx.Caller,
		To:        to,
		Fraction:  fraction,
		Price:     price,
		Timestamp: ctx.Timestamp,
		Sequence:  ctx.Sequence,
	})

	return transfer, nil
}

// build a new owner list: the sender's stake shrinks by fraction and
// is dropped at zero, the recipient's stake grows by the same amount or
// is appended
func move(current []record.Stake, from int, to account.Account, fraction uint64) []record.Stake {
	owners := make([]record.Stake, 0, len(current)+1)
	recipientFound := false

	for i, stake := range current {
		if i == from {
			stake.Fraction -= fraction
			if 0 == stake.Fraction {
				continue
			}
		}
		if stake.Owner == to {
			stake.Fraction += fraction
			recipientFound = true
		}
		owners = append(owners, stake)
	}

	if !recipientFound {
		owners = append(owners, record.Stake{
			Owner:    to,
			Fraction: fraction,
		})
	}
	return owners
}

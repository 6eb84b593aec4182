// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lifecycle - status changes of a loan token
//
// any status may follow any other, including itself; only the issuer
// may make the change
package lifecycle

import (
	"github.com/bitmark-inc/loanledger/asset"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/record"
)

// Update - set a new lifecycle status, returns the previous status
func Update(ctx *execution.Context, id string, status record.Status) (record.Status, error) {

	token, err := asset.Get(ctx.Trx, ctx.Pool, id)
	if nil != err {
		return 0, err
	}
	if ctx.Caller != token.Issuer {
		return 0, fault.NotIssuer
	}
	if !status.Valid() {
		return 0, fault.InvalidStatus
	}

	previous := token.Status
	token.Status = status
	token.UpdatedAt = ctx.Timestamp
	asset.Put(ctx, token)

	ctx.Emit(event.LifecycleUpdated, event.Lifecycle{
		TokenId:   id,
		OldStatus: previous,
		NewStatus: status,
		Timestamp: ctx.Timestamp,
	})

	return previous, nil
}

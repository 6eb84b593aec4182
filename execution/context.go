// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package execution

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/storage"
)

// Context - everything a mutating operation may see or touch
//
// Trx is the only write path; events are held until the host has
// committed the call
type Context struct {
	Caller    account.Account
	Timestamp uint64 // nanoseconds
	Sequence  uint64 // ordering counter of this call
	Deposit   uint64 // attached value, not interpreted

	Trx  storage.Transaction
	Pool *storage.Pools

	events []event.Event
}

// Emit - queue an event for delivery after commit
func (ctx *Context) Emit(kind event.Kind, payload interface{}) {
	e := event.New(kind, ctx.Sequence, len(ctx.events), payload)
	ctx.events = append(ctx.events, e)
}

// Events - events emitted so far
func (ctx *Context) Events() []event.Event {
	return ctx.events
}

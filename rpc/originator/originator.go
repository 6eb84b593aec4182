// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package originator

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitOriginator = 100
	rateBurstOriginator = 100
)

// Originator - type for RPC calls
type Originator struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create originator RPC handler
func New(log *logger.L, l ledger.Ledger) *Originator {
	return &Originator{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOriginator, rateBurstOriginator),
		Ledger:  l,
	}
}

// ChangeReply - result of an authorise or revoke
type ChangeReply struct {
	Sequence  uint64        `json:"sequence"`
	Timestamp uint64        `json:"timestamp"`
	Events    []event.Event `json:"events"`
}

// Authorise - admin grants registration rights to an account
func (o *Originator) Authorise(arguments *record.AuthoriseOriginator, reply *ChangeReply) error {

	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}

	if o.Ledger.IsReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}

	o.Log.Infof("Originator.Authorise: %+v", arguments)

	receipt, err := o.Ledger.AuthoriseOriginator(arguments)
	if nil != err {
		return err
	}
	reply.fill(receipt)
	return nil
}

// Revoke - admin removes registration rights from an account
func (o *Originator) Revoke(arguments *record.RevokeOriginator, reply *ChangeReply) error {

	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}

	if o.Ledger.IsReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}

	o.Log.Infof("Originator.Revoke: %+v", arguments)

	receipt, err := o.Ledger.RevokeOriginator(arguments)
	if nil != err {
		return err
	}
	reply.fill(receipt)
	return nil
}

func (reply *ChangeReply) fill(receipt *execution.Receipt) {
	reply.Sequence = receipt.Sequence
	reply.Timestamp = receipt.Timestamp
	reply.Events = receipt.Events
}

// ---

// IsAuthorisedArguments - account to check
type IsAuthorisedArguments struct {
	Account account.Account `json:"account"`
}

// IsAuthorisedReply - the registration right
type IsAuthorisedReply struct {
	Authorised bool `json:"authorised"`
}

// IsAuthorised - check the registration right of an account
func (o *Originator) IsAuthorised(arguments *IsAuthorisedArguments, reply *IsAuthorisedReply) error {

	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Account.IsZero() {
		return fault.InvalidAccount
	}

	o.Log.Infof("Originator.IsAuthorised: %s", arguments.Account)

	reply.Authorised = o.Ledger.IsAuthorisedOriginator(arguments.Account)
	return nil
}

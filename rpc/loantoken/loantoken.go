// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loantoken

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLoanToken = 200
	rateBurstLoanToken = 100
)

// LoanToken - type for RPC calls
type LoanToken struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create loan token RPC handler
func New(log *logger.L, l ledger.Ledger) *LoanToken {
	return &LoanToken{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLoanToken, rateBurstLoanToken),
		Ledger:  l,
	}
}

// check rate limit and write access
func (lt *LoanToken) writable() error {
	if err := ratelimit.Limit(lt.Limiter); nil != err {
		return err
	}
	if lt.Ledger.IsReadOnly() {
		return fault.NotAvailableInReadOnlyMode
	}
	return nil
}

// ---

// RegisterReply - the new token with the commit details
type RegisterReply struct {
	Token     *record.LoanToken `json:"token"`
	Sequence  uint64            `json:"sequence"`
	Timestamp uint64            `json:"timestamp"`
	Events    []event.Event     `json:"events"`
}

// Register - mint a loan token
func (lt *LoanToken) Register(arguments *record.RegisterLoanToken, reply *RegisterReply) error {

	if err := lt.writable(); nil != err {
		return err
	}

	lt.Log.Infof("LoanToken.Register: %+v", arguments)

	token, receipt, err := lt.Ledger.RegisterLoanToken(arguments)
	if nil != err {
		return err
	}

	reply.Token = token
	reply.Sequence = receipt.Sequence
	reply.Timestamp = receipt.Timestamp
	reply.Events = receipt.Events
	return nil
}

// ---

// TransferReply - the audit record with the commit details
type TransferReply struct {
	Record    *record.TransferRecord `json:"record"`
	Sequence  uint64                 `json:"sequence"`
	Timestamp uint64                 `json:"timestamp"`
	Events    []event.Event          `json:"events"`
}

// Transfer - move part of the caller's stake
func (lt *LoanToken) Transfer(arguments *record.TransferOwnership, reply *TransferReply) error {

	if err := lt.writable(); nil != err {
		return err
	}

	lt.Log.Infof("LoanToken.Transfer: %+v", arguments)

	transfer, receipt, err := lt.Ledger.TransferFractionalOwnership(arguments)
	if nil != err {
		return err
	}

	reply.Record = transfer
	reply.Sequence = receipt.Sequence
	reply.Timestamp = receipt.Timestamp
	reply.Events = receipt.Events
	return nil
}

// ---

// UpdateStatusReply - commit details
type UpdateStatusReply struct {
	Sequence  uint64        `json:"sequence"`
	Timestamp uint64        `json:"timestamp"`
	Events    []event.Event `json:"events"`
}

// UpdateStatus - issuer sets the lifecycle status
func (lt *LoanToken) UpdateStatus(arguments *record.UpdateLifecycle, reply *UpdateStatusReply) error {

	if err := lt.writable(); nil != err {
		return err
	}

	lt.Log.Infof("LoanToken.UpdateStatus: %+v", arguments)

	receipt, err := lt.Ledger.UpdateLifecycleStatus(arguments)
	if nil != err {
		return err
	}

	reply.Sequence = receipt.Sequence
	reply.Timestamp = receipt.Timestamp
	reply.Events = receipt.Events
	return nil
}

// ---

// IdArguments - a single token id
type IdArguments struct {
	Id string `json:"id"`
}

// GetReply - a token
type GetReply struct {
	Token *record.LoanToken `json:"token"`
}

// Get - committed state of a token
func (lt *LoanToken) Get(arguments *IdArguments, reply *GetReply) error {

	if err := ratelimit.Limit(lt.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Id {
		return fault.EmptyAssetId
	}

	lt.Log.Infof("LoanToken.Get: %+v", arguments)

	token, err := lt.Ledger.GetLoanToken(arguments.Id)
	if nil != err {
		return err
	}
	reply.Token = token
	return nil
}

// BreakdownReply - current stakes
type BreakdownReply struct {
	Owners []record.Stake `json:"owners"`
}

// Breakdown - current stakes of a token, empty for an unknown token
func (lt *LoanToken) Breakdown(arguments *IdArguments, reply *BreakdownReply) error {

	if err := ratelimit.Limit(lt.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Id {
		return fault.EmptyAssetId
	}

	lt.Log.Infof("LoanToken.Breakdown: %+v", arguments)

	reply.Owners = lt.Ledger.GetOwnershipBreakdown(arguments.Id)
	return nil
}

// HistoryReply - the audit trail
type HistoryReply struct {
	Transfers []record.TransferRecord `json:"transfers"`
}

// History - the whole transfer history of a token
func (lt *LoanToken) History(arguments *IdArguments, reply *HistoryReply) error {

	if err := ratelimit.Limit(lt.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Id {
		return fault.EmptyAssetId
	}

	lt.Log.Infof("LoanToken.History: %+v", arguments)

	reply.Transfers = lt.Ledger.GetTransferHistory(arguments.Id)
	return nil
}

// ---

// OwnedArguments - holder to search for
type OwnedArguments struct {
	Owner account.Account `json:"owner"`
}

// OwnedReply - tokens with a stake held by the owner
type OwnedReply struct {
	Tokens []*record.LoanToken `json:"tokens"`
}

// Owned - every token in which an account holds a stake
func (lt *LoanToken) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.Limit(lt.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.IsZero() {
		return fault.InvalidAccount
	}

	lt.Log.Infof("LoanToken.Owned: %s", arguments.Owner)

	tokens, err := lt.Ledger.GetTokensForOwner(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

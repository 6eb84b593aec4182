// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - public operation surface of the loan token ledger
//
// mutating operations take a signed request, verify it and run it as
// one call on the execution host; queries read committed state only
package ledger

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/asset"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/lifecycle"
	"github.com/bitmark-inc/loanledger/originator"
	"github.com/bitmark-inc/loanledger/ownership"
	"github.com/bitmark-inc/loanledger/provenance"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/storage"
	"github.com/bitmark-inc/logger"
)

// Version - reported verbatim by GetVersion
const Version = "1.0.0"

// keys in the contract pool
var (
	adminKey = []byte("admin")
)

// Ledger - the hosted operations
//
//go:generate mockgen -destination=../rpc/mocks/ledger.go -package=mocks github.com/bitmark-inc/loanledger/ledger Ledger
type Ledger interface {
	AuthoriseOriginator(*record.AuthoriseOriginator) (*execution.Receipt, error)
	RevokeOriginator(*record.RevokeOriginator) (*execution.Receipt, error)
	RegisterLoanToken(*record.RegisterLoanToken) (*record.LoanToken, *execution.Receipt, error)
	TransferFractionalOwnership(*record.TransferOwnership) (*record.TransferRecord, *execution.Receipt, error)
	UpdateLifecycleStatus(*record.UpdateLifecycle) (*execution.Receipt, error)

	GetLoanToken(string) (*record.LoanToken, error)
	GetOwnershipBreakdown(string) []record.Stake
	GetTransferHistory(string) []record.TransferRecord
	GetTokensForOwner(account.Account) ([]*record.LoanToken, error)
	IsAuthorisedOriginator(account.Account) bool
	GetVersion() string

	Admin() account.Account
	Sequence() uint64
	LastNonce(account.Account) uint64
	IsReadOnly() bool
}

type ledger struct {
	log   *logger.L
	store *storage.Store
	host  *execution.Host
	admin account.Account
}

// New - open the ledger on a store
//
// the first open of a writable store records the admin; later opens
// must name the same admin or a zero account to use the stored one.
// A read-only store must already have an admin.
func New(store *storage.Store, host *execution.Host, admin account.Account) (Ledger, error) {
	log := logger.New("ledger")

	stored := store.Pool.Contract.Get(adminKey)
	if nil != stored {
		current, err := account.FromBytes(stored)
		if nil != err {
			log.Criticalf("stored admin: %x  error: %s", stored, err)
			return nil, err
		}
		if !admin.IsZero() && current != admin {
			log.Errorf("admin: %s  differs from stored admin: %s", admin, current)
			return nil, fault.AdminMismatch
		}
		admin = current
	} else {
		if admin.IsZero() {
			return nil, fault.ZeroAccount
		}
		if store.IsReadOnly() {
			return nil, fault.NotInitialised
		}
		trx, err := store.Begin()
		if nil != err {
			return nil, err
		}
		trx.Put(store.Pool.Contract, adminKey, admin.Bytes())
		err = trx.Commit()
		if nil != err {
			return nil, err
		}
		log.Infof("initialised with admin: %s", admin)
	}

	return &ledger{
		log:   log,
		store: store,
		host:  host,
		admin: admin,
	}, nil
}

// verify the request signature and run the operation as one call
func (l *ledger) execute(request record.Request, operation execution.Operation) (*execution.Receipt, error) {
	if l.store.IsReadOnly() {
		return nil, fault.NotAvailableInReadOnlyMode
	}

	_, err := record.Pack(request)
	if nil != err {
		return nil, err
	}

	header := request.RequestHeader()
	return l.host.Execute(execution.Call{
		Caller:  header.Caller,
		Nonce:   header.Nonce,
		Deposit: header.Deposit,
	}, operation)
}

// AuthoriseOriginator - admin grants registration rights
func (l *ledger) AuthoriseOriginator(request *record.AuthoriseOriginator) (*execution.Receipt, error) {
	return l.execute(request, func(ctx *execution.Context) error {
		return originator.Authorise(ctx, l.admin, request.Originator)
	})
}

// RevokeOriginator - admin removes registration rights
func (l *ledger) RevokeOriginator(request *record.RevokeOriginator) (*execution.Receipt, error) {
	return l.execute(request, func(ctx *execution.Context) error {
		return originator.Revoke(ctx, l.admin, request.Originator)
	})
}

// RegisterLoanToken - mint a loan token owned wholly by the caller
func (l *ledger) RegisterLoanToken(request *record.RegisterLoanToken) (*record.LoanToken, *execution.Receipt, error) {
	var token *record.LoanToken
	receipt, err := l.execute(request, func(ctx *execution.Context) error {
		var err error
		token, err = asset.Register(ctx, request.Id, request.ExternalReferenceId, request.TotalValue)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return token, receipt, nil
}

// TransferFractionalOwnership - move part of the caller's stake
func (l *ledger) TransferFractionalOwnership(request *record.TransferOwnership) (*record.TransferRecord, *execution.Receipt, error) {
	var transfer *record.TransferRecord
	receipt, err := l.execute(request, func(ctx *execution.Context) error {
		var err error
		transfer, err = ownership.Transfer(ctx, request.AssetId, request.To, request.Fraction, request.Price)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return transfer, receipt, nil
}

// UpdateLifecycleStatus - the issuer sets a new status
func (l *ledger) UpdateLifecycleStatus(request *record.UpdateLifecycle) (*execution.Receipt, error) {
	return l.execute(request, func(ctx *execution.Context) error {
		_, err := lifecycle.Update(ctx, request.AssetId, request.Status)
		return err
	})
}

// GetLoanToken - committed state of a token
func (l *ledger) GetLoanToken(id string) (*record.LoanToken, error) {
	return asset.Get(storage.Committed, &l.store.Pool, id)
}

// GetOwnershipBreakdown - current stakes, empty for an unknown token
func (l *ledger) GetOwnershipBreakdown(id string) []record.Stake {
	token, err := asset.Get(storage.Committed, &l.store.Pool, id)
	if nil != err {
		return []record.Stake{}
	}
	return token.Owners
}

// GetTransferHistory - the audit trail of a token
func (l *ledger) GetTransferHistory(id string) []record.TransferRecord {
	return provenance.Get(storage.Committed, &l.store.Pool, id)
}

// GetTokensForOwner - all tokens in which the account holds a stake
func (l *ledger) GetTokensForOwner(owner account.Account) ([]*record.LoanToken, error) {
	return asset.ListByOwner(&l.store.Pool, owner)
}

// IsAuthorisedOriginator - registration right of an account
func (l *ledger) IsAuthorisedOriginator(a account.Account) bool {
	return originator.IsAuthorised(storage.Committed, &l.store.Pool, a)
}

func (l *ledger) GetVersion() string                 { return Version }
func (l *ledger) Admin() account.Account             { return l.admin }
func (l *ledger) Sequence() uint64                   { return l.host.Sequence() }
func (l *ledger) LastNonce(a account.Account) uint64 { return l.host.LastNonce(a) }
func (l *ledger) IsReadOnly() bool                   { return l.store.IsReadOnly() }

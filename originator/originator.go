// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package originator - the set of accounts allowed to register loan tokens
package originator

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/storage"
)

// from storage/doc.go:
//
//   O ++ account  - authorised originators

var authorisedFlag = []byte{0x01}

// Authorise - admin grants registration rights to an account
//
// authorising an already authorised account changes nothing but
// still succeeds
func Authorise(ctx *execution.Context, admin account.Account, originator account.Account) error {
	if ctx.Caller != admin {
		return fault.NotAdmin
	}
	if originator.IsZero() {
		return fault.ZeroAccount
	}

	ctx.Trx.Put(ctx.Pool.Authorisations, originator.Bytes(), authorisedFlag)

	ctx.Emit(event.OriginatorAuthorised, event.OriginatorChange{
		Originator: originator,
		By:         ctx.Caller,
		Timestamp:  ctx.Timestamp,
	})
	return nil
}

// Revoke - admin removes registration rights from an account
//
// revoking an account that was never authorised is not an error
func Revoke(ctx *execution.Context, admin account.Account, originator account.Account) error {
	if ctx.Caller != admin {
		return fault.NotAdmin
	}
	if originator.IsZero() {
		return fault.ZeroAccount
	}

	ctx.Trx.Delete(ctx.Pool.Authorisations, originator.Bytes())

	ctx.Emit(event.OriginatorRevoked, event.OriginatorChange{
		Originator: originator,
		By:         ctx.Caller,
		Timestamp:  ctx.Timestamp,
	})
	return nil
}

// IsAuthorised - check the registration right of an account
func IsAuthorised(reader storage.Reader, pool *storage.Pools, a account.Account) bool {
	if a.IsZero() {
		return false
	}
	return reader.Has(pool.Authorisations, a.Bytes())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of loan tokens
//
// a token is created once by Register and never deleted; later field
// changes go through Put from the ownership and lifecycle packages
package asset

import (
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/originator"
	"github.com/bitmark-inc/loanledger/provenance"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/storage"
	"github.com/bitmark-inc/logger"
)

// limits on the text fields
const (
	MaxIdLength                = 64
	MaxExternalReferenceLength = 256
)

// Register - mint a new loan token wholly owned by the caller
func Register(ctx *execution.Context, id string, externalReferenceId string, totalValue uint64) (*record.LoanToken, error) {

	if !originator.IsAuthorised(ctx.Trx, ctx.Pool, ctx.Caller) {
		return nil, fault.NotAuthorisedOriginator
	}
	if ctx.Trx.Has(ctx.Pool.Assets, []byte(id)) {
		return nil, fault.DuplicateAssetId
	}
	if 0 == totalValue {
		return nil, fault.InvalidTotalValue
	}
	if err := validateId(id); nil != err {
		return nil, err
	}
	if err := validateExternalReference(externalReferenceId); nil != err {
		return nil, err
	}

	token := &record.LoanToken{
		Id:                  id,
		ExternalReferenceId: externalReferenceId,
		TotalValue:          totalValue,
		Owners: []record.Stake{
			{
				Owner:    ctx.Caller,
				Fraction: record.TotalFraction,
			},
		},
		Status:    record.Active,
		CreatedAt: ctx.Timestamp,
		UpdatedAt: ctx.Timestamp,
		Issuer:    ctx.Caller,
	}

	Put(ctx, token)
	provenance.Initialise(ctx, id)

	ctx.Emit(event.LoanTokenRegistered, event.Registration{
		TokenId:        id,
		OffChainLoanId: externalReferenceId,
		TotalValue:     totalValue,
		Originator:     ctx.Caller,
		Timestamp:      ctx.Timestamp,
	})

	return token, nil
}

// Put - store a loan token
func Put(ctx *execution.Context, token *record.LoanToken) {
	ctx.Trx.Put(ctx.Pool.Assets, []byte(token.Id), token.Pack())
}

// Get - fetch a loan token
//
// the result is a private copy and may be modified by the caller
func Get(reader storage.Reader, pool *storage.Pools, id string) (*record.LoanToken, error) {
	packed := reader.Get(pool.Assets, []byte(id))
	if nil == packed {
		return nil, fault.AssetNotFound
	}
	return unpack(id, packed), nil
}

// ListByOwner - every token in which the owner holds a stake
//
// this is a scan of all registered tokens in id order
func ListByOwner(pool *storage.Pools, owner account.Account) ([]*record.LoanToken, error) {
	tokens := make([]*record.LoanToken, 0, 16)

	err := pool.Assets.Scan(func(key []byte, value []byte) error {
		token := unpack(string(key), value)
		if token.HasOwner(owner) {
			tokens = append(tokens, token)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

// a stored token that cannot be decoded means the database is corrupt
func unpack(id string, packed []byte) *record.LoanToken {
	unpacked, _, err := record.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("asset: token: %q  unpack error: %s", id, err)
	}
	token, ok := unpacked.(*record.LoanToken)
	if !ok {
		logger.Panicf("asset: token: %q  unexpected record: %T", id, unpacked)
	}
	return token
}

func validateId(id string) error {
	if 0 == len(id) {
		return fault.EmptyAssetId
	}
	if len(id) > MaxIdLength {
		return fault.AssetIdTooLong
	}
	if !utf8.ValidString(id) {
		return fault.AssetIdNotUTF8
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return fault.AssetIdContainsControl
		}
	}
	return nil
}

func validateExternalReference(reference string) error {
	if 0 == len(reference) {
		return fault.EmptyExternalReference
	}
	if len(reference) > MaxExternalReferenceLength {
		return fault.ExternalReferenceTooLong
	}
	if !utf8.ValidString(reference) {
		return fault.ExternalReferenceNotUTF8
	}
	return nil
}

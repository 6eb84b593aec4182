// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/util"
)

// TotalFraction - 100% in basis points
const TotalFraction = 10000

// Stake - one holder's share of a loan token
type Stake struct {
	Owner    account.Account `json:"owner"`
	Fraction uint64          `json:"fraction"` // basis points
}

// LoanToken - a tokenised loan and its fractional owners
type LoanToken struct {
	Id                  string          `json:"id"`
	ExternalReferenceId string          `json:"externalReferenceId"`
	TotalValue          uint64          `json:"totalValue,string"`
	Owners              []Stake         `json:"owners"`
	Status              Status          `json:"status"`
	CreatedAt           uint64          `json:"createdAt"` // nanoseconds
	UpdatedAt           uint64          `json:"updatedAt"` // nanoseconds
	Issuer              account.Account `json:"issuer"`
}

// Pack - binary form for storage
//
// Varint(tag) followed by the fields in the order of the struct
// with the owner list preceded by its count
func (token *LoanToken) Pack() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(LoanTokenTag)))
	buffer = appendString(buffer, token.Id)
	buffer = appendString(buffer, token.ExternalReferenceId)
	buffer = appendUint64(buffer, token.TotalValue)
	buffer = appendUint64(buffer, uint64(token.Status))
	buffer = appendUint64(buffer, token.CreatedAt)
	buffer = appendUint64(buffer, token.UpdatedAt)
	buffer = appendAccount(buffer, token.Issuer)
	buffer = appendUint64(buffer, uint64(len(token.Owners)))
	for _, stake := range token.Owners {
		buffer = appendAccount(buffer, stake.Owner)
		buffer = appendUint64(buffer, stake.Fraction)
	}
	return buffer
}

// StakeOf - index of the owner's stake or -1 if the owner holds none
func (token *LoanToken) StakeOf(owner account.Account) int {
	for i, stake := range token.Owners {
		if stake.Owner == owner {
			return i
		}
	}
	return -1
}

// HasOwner - true if the account holds a stake
func (token *LoanToken) HasOwner(owner account.Account) bool {
	return token.StakeOf(owner) >= 0
}

// CheckOwners - verify the ownership invariants
//
// the fractions must all be positive, sum to exactly TotalFraction
// and no owner may appear twice
func CheckOwners(owners []Stake) error {
	seen := make(map[account.Account]struct{}, len(owners))
	total := uint64(0)
	for _, stake := range owners {
		if 0 == stake.Fraction || stake.Fraction > TotalFraction {
			return fault.ConservationViolated
		}
		if _, ok := seen[stake.Owner]; ok {
			return fault.ConservationViolated
		}
		seen[stake.Owner] = struct{}{}
		total += stake.Fraction
	}
	if TotalFraction != total {
		return fault.ConservationViolated
	}
	return nil
}

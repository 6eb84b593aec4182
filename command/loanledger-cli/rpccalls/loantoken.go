// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/loantoken"
)

// RegisterData - fields of a new loan token
type RegisterData struct {
	Id                  string
	ExternalReferenceId string
	TotalValue          uint64
}

// TransferData - fields of a fractional transfer
type TransferData struct {
	AssetId  string
	To       account.Account
	Fraction uint64
	Price    uint64
}

// Register - mint a loan token owned by the key's account
func (c *Client) Register(key *account.PrivateKey, data *RegisterData) (*loantoken.RegisterReply, error) {
	nonce, err := c.NextNonce(key.Account())
	if nil != err {
		return nil, err
	}

	arguments := &record.RegisterLoanToken{
		Id:                  data.Id,
		ExternalReferenceId: data.ExternalReferenceId,
		TotalValue:          data.TotalValue,
		Header: record.Header{
			Nonce: nonce,
		},
	}
	record.Sign(arguments, key)

	var reply loantoken.RegisterReply
	if err := c.call("LoanToken.Register", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move part of the key account's stake
func (c *Client) Transfer(key *account.PrivateKey, data *TransferData) (*loantoken.TransferReply, error) {
	nonce, err := c.NextNonce(key.Account())
	if nil != err {
		return nil, err
	}

	arguments := &record.TransferOwnership{
		AssetId:  data.AssetId,
		To:       data.To,
		Fraction: data.Fraction,
		Price:    data.Price,
		Header: record.Header{
			Nonce: nonce,
		},
	}
	record.Sign(arguments, key)

	var reply loantoken.TransferReply
	if err := c.call("LoanToken.Transfer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateStatus - set the lifecycle status as the issuer
func (c *Client) UpdateStatus(key *account.PrivateKey, id string, status record.Status) (*loantoken.UpdateStatusReply, error) {
	nonce, err := c.NextNonce(key.Account())
	if nil != err {
		return nil, err
	}

	arguments := &record.UpdateLifecycle{
		AssetId: id,
		Status:  status,
		Header: record.Header{
			Nonce: nonce,
		},
	}
	record.Sign(arguments, key)

	var reply loantoken.UpdateStatusReply
	if err := c.call("LoanToken.UpdateStatus", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - a single token
func (c *Client) Get(id string) (*record.LoanToken, error) {
	var reply loantoken.GetReply
	if err := c.call("LoanToken.Get", &loantoken.IdArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Token, nil
}

// Breakdown - current stakes of a token
func (c *Client) Breakdown(id string) ([]record.Stake, error) {
	var reply loantoken.BreakdownReply
	if err := c.call("LoanToken.Breakdown", &loantoken.IdArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Owners, nil
}

// History - transfer records of a token, oldest first
func (c *Client) History(id string) ([]record.TransferRecord, error) {
	var reply loantoken.HistoryReply
	if err := c.call("LoanToken.History", &loantoken.IdArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Transfers, nil
}

// Owned - tokens in which the owner holds a stake
func (c *Client) Owned(owner account.Account) ([]*record.LoanToken, error) {
	var reply loantoken.OwnedReply
	if err := c.call("LoanToken.Owned", &loantoken.OwnedArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return reply.Tokens, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/originator"
)

// Authorise - grant registration rights, signed by the admin key
func (c *Client) Authorise(key *account.PrivateKey, o account.Account) (*originator.ChangeReply, error) {
	nonce, err := c.NextNonce(key.Account())
	if nil != err {
		return nil, err
	}

	arguments := &record.AuthoriseOriginator{
		Originator: o,
		Header: record.Header{
			Nonce: nonce,
		},
	}
	record.Sign(arguments, key)

	var reply originator.ChangeReply
	if err := c.call("Originator.Authorise", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Revoke - remove registration rights, signed by the admin key
func (c *Client) Revoke(key *account.PrivateKey, o account.Account) (*originator.ChangeReply, error) {
	nonce, err := c.NextNonce(key.Account())
	if nil != err {
		return nil, err
	}

	arguments := &record.RevokeOriginator{
		Originator: o,
		Header: record.Header{
			Nonce: nonce,
		},
	}
	record.Sign(arguments, key)

	var reply originator.ChangeReply
	if err := c.call("Originator.Revoke", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsAuthorised - whether an account may register tokens
func (c *Client) IsAuthorised(o account.Account) (bool, error) {
	var reply originator.IsAuthorisedReply
	if err := c.call("Originator.IsAuthorised", &originator.IsAuthorisedArguments{Account: o}, &reply); nil != err {
		return false, err
	}
	return reply.Authorised, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/rpc/node"
)

// GetInfo - node status
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// NextNonce - a nonce larger than any the account has used
func (c *Client) NextNonce(a account.Account) (uint64, error) {
	var reply node.NonceReply
	if err := c.call("Node.Nonce", &node.NonceArguments{Account: a}, &reply); nil != err {
		return 0, err
	}
	return reply.Nonce + 1, nil
}

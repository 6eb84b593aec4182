// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  ledger.Ledger
	counter *counter.Counter
}

// New - create node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, l ledger.Ledger) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  l,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version       string          `json:"version"`
	LedgerVersion string          `json:"ledgerVersion"`
	Admin         account.Account `json:"admin"`
	Sequence      uint64          `json:"sequence"`
	ReadOnly      bool            `json:"readOnly"`
	RPCs          uint64          `json:"rpcs"`
	Uptime        string          `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.DatabaseIsNotSet
	}

	reply.Version = node.Version
	reply.LedgerVersion = node.Ledger.GetVersion()
	reply.Admin = node.Ledger.Admin()
	reply.Sequence = node.Ledger.Sequence()
	reply.ReadOnly = node.Ledger.IsReadOnly()
	reply.RPCs = node.counter.Uint64()
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// NonceArguments - account to query
type NonceArguments struct {
	Account account.Account `json:"account"`
}

// NonceReply - last nonce used, a new request must use a
// larger value
type NonceReply struct {
	Nonce uint64 `json:"nonce,string"`
}

// Nonce - last nonce used by an account
func (node *Node) Nonce(arguments *NonceArguments, reply *NonceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Account.IsZero() {
		return fault.InvalidAccount
	}

	reply.Nonce = node.Ledger.LastNonce(arguments.Account)
	return nil
}

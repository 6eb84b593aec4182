// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/rpc/loantoken"
	"github.com/bitmark-inc/loanledger/rpc/node"
	"github.com/bitmark-inc/loanledger/rpc/originator"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every ledger handler registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, l ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(originator.New(log, l))
	_ = server.Register(loantoken.New(log, l))
	_ = server.Register(node.New(log, start, version, rpcCount, l))

	return server
}

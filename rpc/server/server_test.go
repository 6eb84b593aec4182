// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/fault"
	ledgerfixtures "github.com/bitmark-inc/loanledger/fixtures"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/fixtures"
	"github.com/bitmark-inc/loanledger/rpc/loantoken"
	"github.com/bitmark-inc/loanledger/rpc/node"
	"github.com/bitmark-inc/loanledger/rpc/originator"
	"github.com/bitmark-inc/loanledger/rpc/server"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a JSON RPC client connected through a pipe to a fresh ledger
func setup(t *testing.T) (*rpc.Client, *ledgerfixtures.Host) {
	h, err := ledgerfixtures.NewHost()
	require.Nil(t, err, "host")

	l, err := ledger.New(h.Store, h.Host, ledgerfixtures.Admin)
	require.Nil(t, err, "ledger")

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "test", &c, l)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn), h
}

func nextNonce(t *testing.T, client *rpc.Client, a account.Account) uint64 {
	var reply node.NonceReply
	err := client.Call("Node.Nonce", &node.NonceArguments{Account: a}, &reply)
	require.Nil(t, err, "Node.Nonce")
	return reply.Nonce + 1
}

func TestLoanTokenRoundTrip(t *testing.T) {
	client, h := setup(t)
	defer h.Close()
	defer client.Close()

	authorise := &record.AuthoriseOriginator{Originator: ledgerfixtures.Originator}
	authorise.Nonce = nextNonce(t, client, ledgerfixtures.Admin)
	record.Sign(authorise, ledgerfixtures.AdminKey)

	var change originator.ChangeReply
	err := client.Call("Originator.Authorise", authorise, &change)
	require.Nil(t, err, "Originator.Authorise")
	assert.Equal(t, uint64(1), change.Sequence, "wrong sequence")
	require.Equal(t, 1, len(change.Events), "wrong event count")
	assert.Equal(t, event.OriginatorAuthorised, change.Events[0].Kind, "wrong event kind")

	var authorised originator.IsAuthorisedReply
	err = client.Call("Originator.IsAuthorised", &originator.IsAuthorisedArguments{Account: ledgerfixtures.Originator}, &authorised)
	require.Nil(t, err, "Originator.IsAuthorised")
	assert.True(t, authorised.Authorised, "not authorised")

	register := &record.RegisterLoanToken{
		Id:                  "LOAN-001",
		ExternalReferenceId: "BANK-REF-001",
		TotalValue:          1000000,
	}
	register.Nonce = nextNonce(t, client, ledgerfixtures.Originator)
	record.Sign(register, ledgerfixtures.OriginatorKey)

	var registered loantoken.RegisterReply
	err = client.Call("LoanToken.Register", register, &registered)
	require.Nil(t, err, "LoanToken.Register")
	assert.Equal(t, "LOAN-001", registered.Token.Id, "wrong token")
	assert.Equal(t, uint64(1000000), registered.Token.TotalValue, "wrong value")

	transfer := &record.TransferOwnership{
		AssetId:  "LOAN-001",
		To:       ledgerfixtures.Holder,
		Fraction: 2500,
		Price:    250000,
	}
	transfer.Nonce = nextNonce(t, client, ledgerfixtures.Originator)
	record.Sign(transfer, ledgerfixtures.OriginatorKey)

	var transferred loantoken.TransferReply
	err = client.Call("LoanToken.Transfer", transfer, &transferred)
	require.Nil(t, err, "LoanToken.Transfer")
	assert.Equal(t, uint64(3), transferred.Record.Sequence, "wrong record sequence")

	var breakdown loantoken.BreakdownReply
	err = client.Call("LoanToken.Breakdown", &loantoken.IdArguments{Id: "LOAN-001"}, &breakdown)
	require.Nil(t, err, "LoanToken.Breakdown")
	expected := []record.Stake{
		{Owner: ledgerfixtures.Originator, Fraction: 7500},
		{Owner: ledgerfixtures.Holder, Fraction: 2500},
	}
	assert.Equal(t, expected, breakdown.Owners, "wrong owners")

	var history loantoken.HistoryReply
	err = client.Call("LoanToken.History", &loantoken.IdArguments{Id: "LOAN-001"}, &history)
	require.Nil(t, err, "LoanToken.History")
	require.Equal(t, 1, len(history.Transfers), "wrong history")
	assert.Equal(t, *transferred.Record, history.Transfers[0], "history differs from transfer")

	var owned loantoken.OwnedReply
	err = client.Call("LoanToken.Owned", &loantoken.OwnedArguments{Owner: ledgerfixtures.Holder}, &owned)
	require.Nil(t, err, "LoanToken.Owned")
	require.Equal(t, 1, len(owned.Tokens), "wrong owned count")

	update := &record.UpdateLifecycle{
		AssetId: "LOAN-001",
		Status:  record.Settled,
	}
	update.Nonce = nextNonce(t, client, ledgerfixtures.Originator)
	record.Sign(update, ledgerfixtures.OriginatorKey)

	var updated loantoken.UpdateStatusReply
	err = client.Call("LoanToken.UpdateStatus", update, &updated)
	require.Nil(t, err, "LoanToken.UpdateStatus")

	var got loantoken.GetReply
	err = client.Call("LoanToken.Get", &loantoken.IdArguments{Id: "LOAN-001"}, &got)
	require.Nil(t, err, "LoanToken.Get")
	assert.Equal(t, record.Settled, got.Token.Status, "wrong status")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	require.Nil(t, err, "Node.Info")
	assert.Equal(t, "test", info.Version, "wrong version")
	assert.Equal(t, ledger.Version, info.LedgerVersion, "wrong ledger version")
	assert.Equal(t, ledgerfixtures.Admin, info.Admin, "wrong admin")
	assert.Equal(t, uint64(4), info.Sequence, "wrong sequence")
}

func TestErrorsCrossTheWire(t *testing.T) {
	client, h := setup(t)
	defer h.Close()
	defer client.Close()

	var got loantoken.GetReply
	err := client.Call("LoanToken.Get", &loantoken.IdArguments{Id: "LOAN-404"}, &got)
	require.NotNil(t, err, "unknown token")
	assert.Equal(t, fault.AssetNotFound.Error(), err.Error(), "wrong error")

	register := &record.RegisterLoanToken{
		Id:                  "LOAN-001",
		ExternalReferenceId: "REF",
		TotalValue:          1,
	}
	register.Nonce = 1
	record.Sign(register, ledgerfixtures.OtherKey)

	var registered loantoken.RegisterReply
	err = client.Call("LoanToken.Register", register, &registered)
	require.NotNil(t, err, "unauthorised register")
	assert.Equal(t, fault.NotAuthorisedOriginator.Error(), err.Error(), "wrong error")
}

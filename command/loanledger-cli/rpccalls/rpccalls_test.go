// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/counter"
	ledgerfixtures "github.com/bitmark-inc/loanledger/fixtures"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/rpc/fixtures"
	"github.com/bitmark-inc/loanledger/rpc/server"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T, verbose bool) (*Client, *bytes.Buffer, *ledgerfixtures.Host) {
	h, err := ledgerfixtures.NewHost()
	require.Nil(t, err, "host")

	l, err := ledger.New(h.Store, h.Host, ledgerfixtures.Admin)
	require.Nil(t, err, "ledger")

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "test", &c, l)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	buffer := &bytes.Buffer{}
	return newClient(clientConn, verbose, buffer), buffer, h
}

func TestClientLifecycle(t *testing.T) {
	client, _, h := setup(t, false)
	defer h.Close()
	defer client.Close()

	info, err := client.GetInfo()
	require.Nil(t, err, "info")
	assert.Equal(t, ledgerfixtures.Admin, info.Admin, "wrong admin")
	assert.Equal(t, uint64(0), info.Sequence, "wrong sequence")

	_, err = client.Authorise(ledgerfixtures.AdminKey, ledgerfixtures.Originator)
	require.Nil(t, err, "authorise")

	ok, err := client.IsAuthorised(ledgerfixtures.Originator)
	require.Nil(t, err, "is authorised")
	assert.True(t, ok, "originator not authorised")

	registered, err := client.Register(ledgerfixtures.OriginatorKey, &RegisterData{
		Id:                  "LOAN-001",
		ExternalReferenceId: "EXT-1",
		TotalValue:          1000000,
	})
	require.Nil(t, err, "register")
	assert.Equal(t, "LOAN-001", registered.Token.Id, "wrong id")

	transferred, err := client.Transfer(ledgerfixtures.OriginatorKey, &TransferData{
		AssetId:  "LOAN-001",
		To:       ledgerfixtures.Holder,
		Fraction: 2500,
		Price:    250000,
	})
	require.Nil(t, err, "transfer")
	assert.Equal(t, uint64(2500), transferred.Record.Fraction, "wrong fraction")

	owners, err := client.Breakdown("LOAN-001")
	require.Nil(t, err, "breakdown")
	assert.Equal(t, []record.Stake{
		{Owner: ledgerfixtures.Originator, Fraction: 7500},
		{Owner: ledgerfixtures.Holder, Fraction: 2500},
	}, owners, "wrong owners")

	history, err := client.History("LOAN-001")
	require.Nil(t, err, "history")
	assert.Equal(t, 1, len(history), "wrong history length")

	owned, err := client.Owned(ledgerfixtures.Holder)
	require.Nil(t, err, "owned")
	require.Equal(t, 1, len(owned), "wrong owned count")
	assert.Equal(t, "LOAN-001", owned[0].Id, "wrong owned id")

	_, err = client.UpdateStatus(ledgerfixtures.OriginatorKey, "LOAN-001", record.Settled)
	require.Nil(t, err, "update status")

	token, err := client.Get("LOAN-001")
	require.Nil(t, err, "get")
	assert.Equal(t, record.Settled, token.Status, "wrong status")

	_, err = client.Revoke(ledgerfixtures.AdminKey, ledgerfixtures.Originator)
	require.Nil(t, err, "revoke")

	ok, err = client.IsAuthorised(ledgerfixtures.Originator)
	require.Nil(t, err, "is authorised")
	assert.False(t, ok, "originator still authorised")
}

func TestClientErrors(t *testing.T) {
	client, _, h := setup(t, false)
	defer h.Close()
	defer client.Close()

	_, err := client.Authorise(ledgerfixtures.OtherKey, ledgerfixtures.Originator)
	assert.NotNil(t, err, "non admin authorised")

	_, err = client.Register(ledgerfixtures.OtherKey, &RegisterData{
		Id:                  "LOAN-001",
		ExternalReferenceId: "EXT-1",
		TotalValue:          1,
	})
	assert.NotNil(t, err, "unauthorised register")

	_, err = client.Get("LOAN-404")
	assert.NotNil(t, err, "missing token found")
}

func TestClientVerbose(t *testing.T) {
	client, buffer, h := setup(t, true)
	defer h.Close()
	defer client.Close()

	_, err := client.NextNonce(ledgerfixtures.Admin)
	require.Nil(t, err, "nonce")

	assert.Contains(t, buffer.String(), "Node.Nonce request:", "request not printed")
	assert.Contains(t, buffer.String(), "Node.Nonce reply:", "reply not printed")
}

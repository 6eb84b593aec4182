// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/rpc/certificate"
	"github.com/bitmark-inc/loanledger/rpc/fixtures"
	"github.com/bitmark-inc/loanledger/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	require.Nil(t, s.Register(Add{}), "register")

	cer, key := fixtures.Certificate(t)
	tlsCertificate, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "certificate")

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsCertificate, fin)
	require.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	require.Nil(t, err, "wrong Serve")
	defer l.Stop()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	require.Nil(t, err, "dial")

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "connection not counted")

	// second connection exceeds the limit and is closed
	c2, err := tls.Dial("tcp", listen, &tlsConfig)
	if nil == err {
		client2 := jsonrpc.NewClient(c2)
		err = client2.Call("Add.Add", &arg, &reply)
		assert.NotNil(t, err, "connection over limit served")
		client2.Close()
	}

	client.Close()
	for i := 0; i < 100 && !count.IsZero(); i += 1 {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, count.IsZero(), "connection not released")
}

func TestNewRPCErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	items := []struct {
		configuration listeners.RPCConfiguration
		err           error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Bandwidth: 10000000, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 100, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"not-an-ip:2130"}}, fault.InvalidIpAddress},
	}

	count := counter.Counter(0)
	for i, item := range items {
		_, err := listeners.NewRPC(&item.configuration, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package execution_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/fixtures"
	"github.com/bitmark-inc/loanledger/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Store, *execution.Host, *fixtures.Recorder) {
	store, err := storage.OpenMemory()
	require.Nil(t, err, "open memory store")
	recorder := &fixtures.Recorder{}
	clock := &fixtures.Clock{}
	return store, execution.New(store, clock.Now, recorder), recorder
}

func write(key string) execution.Operation {
	return func(ctx *execution.Context) error {
		ctx.Trx.Put(ctx.Pool.Assets, []byte(key), []byte("value"))
		ctx.Emit(event.LoanTokenRegistered, event.Registration{TokenId: key})
		return nil
	}
}

func TestExecuteCommits(t *testing.T) {
	store, host, recorder := setup(t)
	defer store.Close()

	receipt, err := host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 1}, write("LOAN-001"))
	require.Nil(t, err, "execute")

	assert.Equal(t, uint64(1), receipt.Sequence, "wrong sequence")
	assert.Equal(t, uint64(fixtures.StartTime.UnixNano()), receipt.Timestamp, "wrong timestamp")
	assert.Equal(t, 1, len(receipt.Events), "wrong event count")
	assert.Equal(t, receipt.Events, recorder.Events, "emitted events differ from receipt")

	assert.True(t, store.Pool.Assets.Has([]byte("LOAN-001")), "write not committed")
	assert.Equal(t, uint64(1), host.Sequence(), "sequence not stored")
	assert.Equal(t, uint64(1), host.LastNonce(fixtures.Admin), "nonce not stored")
}

func TestExecuteFailureLeavesNoTrace(t *testing.T) {
	store, host, recorder := setup(t)
	defer store.Close()

	failing := func(ctx *execution.Context) error {
		ctx.Trx.Put(ctx.Pool.Assets, []byte("LOAN-002"), []byte("partial"))
		ctx.Emit(event.LoanTokenRegistered, event.Registration{TokenId: "LOAN-002"})
		return fault.NotOwner
	}

	_, err := host.Execute(execution.Call{Caller: fixtures.Holder, Nonce: 1}, failing)
	assert.Equal(t, fault.NotOwner, err, "wrong error")

	assert.False(t, store.Pool.Assets.Has([]byte("LOAN-002")), "partial write committed")
	assert.Equal(t, 0, len(recorder.Events), "event delivered for failed call")
	assert.Equal(t, uint64(0), host.Sequence(), "sequence advanced on failure")
	assert.Equal(t, uint64(1), host.LastNonce(fixtures.Holder), "nonce not used up on failure")

	// the rejected nonce cannot be used again
	_, err = host.Execute(execution.Call{Caller: fixtures.Holder, Nonce: 1}, write("LOAN-002"))
	assert.Equal(t, fault.NonceNotIncreasing, err, "rejected nonce reused")
	assert.False(t, store.Pool.Assets.Has([]byte("LOAN-002")), "rejected nonce ran")

	_, err = host.Execute(execution.Call{Caller: fixtures.Holder, Nonce: 2}, write("LOAN-002"))
	assert.Nil(t, err, "retry with a new nonce")
	assert.Equal(t, uint64(1), host.Sequence(), "wrong sequence after retry")
}

func TestExecuteNonce(t *testing.T) {
	store, host, _ := setup(t)
	defer store.Close()

	_, err := host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 5}, write("a"))
	require.Nil(t, err, "first call")

	_, err = host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 5}, write("b"))
	assert.Equal(t, fault.NonceNotIncreasing, err, "replayed nonce accepted")

	_, err = host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 4}, write("b"))
	assert.Equal(t, fault.NonceNotIncreasing, err, "lower nonce accepted")

	// nonces are per account
	_, err = host.Execute(execution.Call{Caller: fixtures.Other, Nonce: 1}, write("c"))
	assert.Nil(t, err, "other account nonce")

	_, err = host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 0}, write("d"))
	assert.Equal(t, fault.ZeroNonce, err, "zero nonce accepted")

	_, err = host.Execute(execution.Call{Caller: account.Account{}, Nonce: 1}, write("e"))
	assert.Equal(t, fault.ZeroAccount, err, "zero account accepted")
}

func TestExecuteSequenceIsMonotonic(t *testing.T) {
	store, host, recorder := setup(t)
	defer store.Close()

	for i := uint64(1); i <= 5; i += 1 {
		receipt, err := host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: i}, write("k"))
		require.Nil(t, err, "execute")
		assert.Equal(t, i, receipt.Sequence, "wrong sequence")
	}

	ids := make(map[string]struct{})
	for _, e := range recorder.Events {
		ids[e.Id.String()] = struct{}{}
	}
	assert.Equal(t, 5, len(ids), "event ids are not unique")
}

func TestExecuteReadOnly(t *testing.T) {
	store, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer store.Close()

	host := execution.New(store, nil, nil)
	_, err = host.Execute(execution.Call{Caller: fixtures.Admin, Nonce: 1}, write("x"))
	assert.Nil(t, err, "nil emitter and clock")
}

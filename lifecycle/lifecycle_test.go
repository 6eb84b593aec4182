// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/asset"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/fixtures"
	"github.com/bitmark-inc/loanledger/lifecycle"
	"github.com/bitmark-inc/loanledger/originator"
	"github.com/bitmark-inc/loanledger/ownership"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/storage"
)

const tokenId = "LOAN-001"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) *fixtures.Host {
	h, err := fixtures.NewHost()
	require.Nil(t, err, "host")

	_, err = h.Call(fixtures.Admin, func(ctx *execution.Context) error {
		return originator.Authorise(ctx, fixtures.Admin, fixtures.Originator)
	})
	require.Nil(t, err, "authorise")

	_, err = h.Call(fixtures.Originator, func(ctx *execution.Context) error {
		_, err := asset.Register(ctx, tokenId, "BANK-REF-001", 1000000)
		return err
	})
	require.Nil(t, err, "register")

	h.Recorder.Reset()
	return h
}

func update(id string, status record.Status) execution.Operation {
	return func(ctx *execution.Context) error {
		_, err := lifecycle.Update(ctx, id, status)
		return err
	}
}

func TestUpdate(t *testing.T) {
	h := setup(t)
	defer h.Close()

	receipt, err := h.Call(fixtures.Originator, update(tokenId, record.Settled))
	require.Nil(t, err, "update")

	token, err := asset.Get(storage.Committed, h.Pool(), tokenId)
	require.Nil(t, err, "get")
	assert.Equal(t, record.Settled, token.Status, "status not stored")
	assert.Equal(t, receipt.Timestamp, token.UpdatedAt, "updated time not set")

	require.Equal(t, []event.Kind{event.LifecycleUpdated}, h.Recorder.Kinds(), "wrong events")
	payload := h.Recorder.Events[0].Payload.(event.Lifecycle)
	assert.Equal(t, record.Active, payload.OldStatus, "wrong old status")
	assert.Equal(t, record.Settled, payload.NewStatus, "wrong new status")
}

func TestAnyTransitionIsAllowed(t *testing.T) {
	h := setup(t)
	defer h.Close()

	sequence := []record.Status{
		record.Defaulted,
		record.Restructured,
		record.Restructured,
		record.Active,
		record.Settled,
		record.Active,
	}
	for _, status := range sequence {
		_, err := h.Call(fixtures.Originator, update(tokenId, status))
		require.Nil(t, err, "update to: %s", status)
	}

	// active again so transfers work
	_, err := h.Call(fixtures.Originator, func(ctx *execution.Context) error {
		_, err := ownership.Transfer(ctx, tokenId, fixtures.Holder, 100, 0)
		return err
	})
	assert.Nil(t, err, "transfer after reactivation")
}

func TestOnlyIssuer(t *testing.T) {
	h := setup(t)
	defer h.Close()

	// a stake holder is not the issuer
	_, err := h.Call(fixtures.Originator, func(ctx *execution.Context) error {
		_, err := ownership.Transfer(ctx, tokenId, fixtures.Holder, 10000, 0)
		return err
	})
	require.Nil(t, err, "transfer")

	_, err = h.Call(fixtures.Holder, update(tokenId, record.Defaulted))
	assert.Equal(t, fault.NotIssuer, err, "owner changed status")

	// the issuer keeps the right after selling every stake
	_, err = h.Call(fixtures.Originator, update(tokenId, record.Defaulted))
	assert.Nil(t, err, "issuer without stake")
}

func TestUpdateErrors(t *testing.T) {
	h := setup(t)
	defer h.Close()

	_, err := h.Call(fixtures.Holder, update("LOAN-404", record.Settled))
	assert.Equal(t, fault.AssetNotFound, err, "not found is checked first")

	_, err = h.Call(fixtures.Originator, update(tokenId, record.Status(99)))
	assert.Equal(t, fault.InvalidStatus, err, "invalid status accepted")

	assert.Equal(t, 0, len(h.Recorder.Events), "events from rejected calls")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/asset"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/fixtures"
	"github.com/bitmark-inc/loanledger/originator"
	"github.com/bitmark-inc/loanledger/provenance"
	"github.com/bitmark-inc/loanledger/record"
	"github.com/bitmark-inc/loanledger/storage"
)

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
	h.Recorder.Reset()
	return h
}

func register(id string, reference string, value uint64) execution.Operation {
	return func(ctx *execution.Context) error {
		_, err := asset.Register(ctx, id, reference, value)
		return err
	}
}

func TestRegister(t *testing.T) {
	h := setup(t)
	defer h.Close()

	receipt, err := h.Call(fixtures.Originator, register("LOAN-001", "BANK-REF-001", 1000000))
	require.Nil(t, err, "register")

	token, err := asset.Get(storage.Committed, h.Pool(), "LOAN-001")
	require.Nil(t, err, "get")

	assert.Equal(t, "LOAN-001", token.Id, "wrong id")
	assert.Equal(t, "BANK-REF-001", token.ExternalReferenceId, "wrong reference")
	assert.Equal(t, uint64(1000000), token.TotalValue, "wrong value")
	assert.Equal(t, []record.Stake{{Owner: fixtures.Originator, Fraction: 10000}}, token.Owners, "wrong owners")
	assert.Equal(t, record.Active, token.Status, "wrong status")
	assert.Equal(t, fixtures.Originator, token.Issuer, "wrong issuer")
	assert.Equal(t, receipt.Timestamp, token.CreatedAt, "wrong created time")
	assert.Equal(t, token.CreatedAt, token.UpdatedAt, "updated differs from created")

	assert.Equal(t, 0, len(provenance.Get(storage.Committed, h.Pool(), "LOAN-001")), "history not empty")

	require.Equal(t, []event.Kind{event.LoanTokenRegistered}, h.Recorder.Kinds(), "wrong events")
	payload := h.Recorder.Events[0].Payload.(event.Registration)
	assert.Equal(t, "LOAN-001", payload.TokenId, "wrong event token")
	assert.Equal(t, "BANK-REF-001", payload.OffChainLoanId, "wrong event reference")
	assert.Equal(t, uint64(1000000), payload.TotalValue, "wrong event value")
	assert.Equal(t, fixtures.Originator, payload.Originator, "wrong event originator")
}

func TestRegisterNotAuthorised(t *testing.T) {
	h := setup(t)
	defer h.Close()

	_, err := h.Call(fixtures.Holder, register("LOAN-001", "REF", 1))
	assert.Equal(t, fault.NotAuthorisedOriginator, err, "unauthorised registration")

	_, err = asset.Get(storage.Committed, h.Pool(), "LOAN-001")
	assert.Equal(t, fault.AssetNotFound, err, "token stored")
	assert.Equal(t, 0, len(h.Recorder.Events), "event emitted")
}

func TestRegisterDuplicate(t *testing.T) {
	h := setup(t)
	defer h.Close()

	_, err := h.Call(fixtures.Originator, register("LOAN-001", "REF-A", 100))
	require.Nil(t, err, "register")

	_, err = h.Call(fixtures.Originator, register("LOAN-001", "REF-B", 200))
	assert.Equal(t, fault.DuplicateAssetId, err, "duplicate accepted")
	assert.True(t, fault.IsErrExists(err), "wrong class")

	token, err := asset.Get(storage.Committed, h.Pool(), "LOAN-001")
	require.Nil(t, err, "get")
	assert.Equal(t, "REF-A", token.ExternalReferenceId, "original overwritten")
}

func TestRegisterValidation(t *testing.T) {
	h := setup(t)
	defer h.Close()

	items := []struct {
		id        string
		reference string
		value     uint64
		err       error
	}{
		{"LOAN-001", "REF", 0, fault.InvalidTotalValue},
		{"", "REF", 1, fault.EmptyAssetId},
		{"LOAN-001", "", 1, fault.EmptyExternalReference},
		{strings.Repeat("x", 65), "REF", 1, fault.AssetIdTooLong},
		{"LOAN\x00001", "REF", 1, fault.AssetIdContainsControl},
		{"LOAN\n001", "REF", 1, fault.AssetIdContainsControl},
		{"LOAN\xff", "REF", 1, fault.AssetIdNotUTF8},
		{"LOAN-001", strings.Repeat("r", 257), 1, fault.ExternalReferenceTooLong},
		{"LOAN-001", "REF\xfe", 1, fault.ExternalReferenceNotUTF8},
	}

	for i, item := range items {
		_, err := h.Call(fixtures.Originator, register(item.id, item.reference, item.value))
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.True(t, fault.IsErrInvalid(err), "%d: wrong class", i)
	}

	// boundaries are accepted
	_, err := h.Call(fixtures.Originator, register(strings.Repeat("x", 64), strings.Repeat("r", 256), 1))
	assert.Nil(t, err, "maximum lengths")
	_, err = h.Call(fixtures.Originator, register("贷款-001", "참조", 1))
	assert.Nil(t, err, "unicode id")
}

func TestListByOwner(t *testing.T) {
	h := setup(t)
	defer h.Close()

	for _, id := range []string{"LOAN-003", "LOAN-001", "LOAN-002"} {
		_, err := h.Call(fixtures.Originator, register(id, "REF", 10))
		require.Nil(t, err, "register")
	}

	tokens, err := asset.ListByOwner(h.Pool(), fixtures.Originator)
	require.Nil(t, err, "list")
	require.Equal(t, 3, len(tokens), "wrong token count")
	assert.Equal(t, "LOAN-001", tokens[0].Id, "not in id order")

	tokens, err = asset.ListByOwner(h.Pool(), fixtures.Holder)
	require.Nil(t, err, "list")
	assert.Equal(t, 0, len(tokens), "tokens for non owner")
}

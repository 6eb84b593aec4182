// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/loanledger/fault"
)

var (
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrBalanceOne       = fault.BalanceError("balance one")
	ErrExistsOne        = fault.ExistsError("exists one")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrLengthOne        = fault.LengthError("length one")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrOwnerOne         = fault.OwnerError("owner one")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrRecordOne        = fault.RecordError("record one")
	ErrStateOne         = fault.StateError("state one")
)

// test that the various error classes are distinct
func TestClasses(t *testing.T) {
	classifiers := []func(error) bool{
		fault.IsErrAuthorisation,
		fault.IsErrBalance,
		fault.IsErrExists,
		fault.IsErrInvalid,
		fault.IsErrLength,
		fault.IsErrNotFound,
		fault.IsErrOwner,
		fault.IsErrProcess,
		fault.IsErrRecord,
		fault.IsErrState,
	}

	errorList := []error{
		ErrAuthorisationOne,
		ErrBalanceOne,
		ErrExistsOne,
		ErrInvalidOne,
		ErrLengthOne,
		ErrNotFoundOne,
		ErrOwnerOne,
		ErrProcessOne,
		ErrRecordOne,
		ErrStateOne,
	}

	for i, err := range errorList {
		for j, isErr := range classifiers {
			expected := i == j
			if isErr(err) != expected {
				t.Errorf("%d: classifier %d expected: %v for err = %v", i, j, expected, err)
			}
		}
	}
}

func TestTaxonomy(t *testing.T) {
	if !fault.IsErrAuthorisation(fault.NotAdmin) {
		t.Errorf("not admin is not an authorisation error")
	}
	if !fault.IsErrExists(fault.DuplicateAssetId) {
		t.Errorf("duplicate asset id is not a conflict")
	}
	if !fault.IsErrState(fault.AssetIsNotActive) {
		t.Errorf("inactive asset is not a state error")
	}
	if !fault.IsErrOwner(fault.NotOwner) {
		t.Errorf("not owner is not an owner error")
	}
	if !fault.IsErrBalance(fault.InsufficientStake) {
		t.Errorf("insufficient stake is not a balance error")
	}
	if fault.IsErrInvalid(nil) {
		t.Errorf("nil must not classify")
	}
}

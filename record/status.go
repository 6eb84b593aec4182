// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/loanledger/fault"
)

// Status - lifecycle status of a loan token
type Status uint64

// the possible states
const (
	Active Status = iota
	Settled
	Defaulted
	Restructured

	// this item must be last
	statusLimit
)

var statusNames = [...]string{
	Active:       "Active",
	Settled:      "Settled",
	Defaulted:    "Defaulted",
	Restructured: "Restructured",
}

// StatusFromString - parse a status name
func StatusFromString(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return statusLimit, fault.InvalidStatus
}

// Valid - true for one of the known states
func (status Status) Valid() bool {
	return status < statusLimit
}

// String - name of the status
func (status Status) String() string {
	if !status.Valid() {
		return "*unknown*"
	}
	return statusNames[status]
}

// MarshalText - status name for JSON
func (status Status) MarshalText() ([]byte, error) {
	if !status.Valid() {
		return nil, fault.InvalidStatus
	}
	return []byte(statusNames[status]), nil
}

// UnmarshalText - status from its JSON name
func (status *Status) UnmarshalText(s []byte) error {
	st, err := StatusFromString(string(s))
	if nil != err {
		return err
	}
	*status = st
	return nil
}

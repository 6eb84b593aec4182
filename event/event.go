// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/record"
)

// Kind - fixed tag of an event
type Kind string

// the event kinds
const (
	OriginatorAuthorised Kind = "ORIGINATOR_AUTHORIZED"
	OriginatorRevoked    Kind = "ORIGINATOR_REVOKED"
	LoanTokenRegistered  Kind = "LOAN_TOKEN_REGISTERED"
	OwnershipTransferred Kind = "OWNERSHIP_TRANSFERRED"
	LifecycleUpdated     Kind = "LIFECYCLE_UPDATED"
)

// namespace for name based event ids
var namespace = uuid.MustParse("4b1d3c0e-6a52-5d2f-9b7e-10a4c1f0e001")

// Event - notification of one committed mutation
type Event struct {
	Id       uuid.UUID   `json:"id"`
	Kind     Kind        `json:"kind"`
	Sequence uint64      `json:"sequence"`
	Payload  interface{} `json:"payload"`
}

// OriginatorChange - payload of ORIGINATOR_AUTHORIZED and ORIGINATOR_REVOKED
type OriginatorChange struct {
	Originator account.Account `json:"originator"`
	By         account.Account `json:"by"`
	Timestamp  uint64          `json:"timestamp"`
}

// Registration - payload of LOAN_TOKEN_REGISTERED
type Registration struct {
	TokenId        string          `json:"token_id"`
	OffChainLoanId string          `json:"off_chain_loan_id"`
	TotalValue     uint64          `json:"total_value,string"`
	Originator     account.Account `json:"originator"`
	Timestamp      uint64          `json:"timestamp"`
}

// Transfer - payload of OWNERSHIP_TRANSFERRED
type Transfer struct {
	TokenId   string          `json:"token_id"`
	From      account.Account `json:"from"`
	To        account.Account `json:"to"`
	Fraction  uint64          `json:"fraction"`
	Price     uint64          `json:"price,string"`
	Timestamp uint64          `json:"timestamp"`
	Sequence  uint64          `json:"sequence"`
}

// Lifecycle - payload of LIFECYCLE_UPDATED
type Lifecycle struct {
	TokenId   string        `json:"token_id"`
	OldStatus record.Status `json:"old_status"`
	NewStatus record.Status `json:"new_status"`
	Timestamp uint64        `json:"timestamp"`
}

// New - create an event
//
// the id is derived from the ordering sequence, the position of the
// event within its call and the kind, so a replay of the same history
// produces the same ids
func New(kind Kind, sequence uint64, index int, payload interface{}) Event {
	name := fmt.Sprintf("%d/%d/%s", sequence, index, kind)
	return Event{
		Id:       uuid.NewSHA1(namespace, []byte(name)),
		Kind:     kind,
		Sequence: sequence,
		Payload:  payload,
	}
}

// PayloadJSON - the field set of the event as JSON
func (e Event) PayloadJSON() ([]byte, error) {
	return json.Marshal(e.Payload)
}

// String - log line form: EVENT:<KIND> <json>
func (e Event) String() string {
	buffer, err := e.PayloadJSON()
	if nil != err {
		return fmt.Sprintf("EVENT:%s !error: %s", e.Kind, err)
	}
	return fmt.Sprintf("EVENT:%s %s", e.Kind, buffer)
}

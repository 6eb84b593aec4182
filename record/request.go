// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/util"
)

// Header - the caller side of every mutating request
//
// Deposit is an attached value that is carried through to the
// execution context but has no effect on ledger state
type Header struct {
	Caller    account.Account   `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Deposit   uint64            `json:"deposit"`
	Signature account.Signature `json:"signature"`
}

// Request - a signed mutating call
type Request interface {
	Message() Packed
	RequestHeader() *Header
}

// AuthoriseOriginator - admin grants registration rights
type AuthoriseOriginator struct {
	Originator account.Account `json:"originator"`
	Header
}

// RevokeOriginator - admin removes registration rights
type RevokeOriginator struct {
	Originator account.Account `json:"originator"`
	Header
}

// RegisterLoanToken - an originator mints a new loan token
type RegisterLoanToken struct {
	Id                  string `json:"id"`
	ExternalReferenceId string `json:"externalReferenceId"`
	TotalValue          uint64 `json:"totalValue,string"`
	Header
}

// TransferOwnership - a holder moves part of a stake
type TransferOwnership struct {
	AssetId  string          `json:"assetId"`
	To       account.Account `json:"to"`
	Fraction uint64          `json:"fraction"`
	Price    uint64          `json:"price,string"`
	Header
}

// UpdateLifecycle - the issuer changes the lifecycle status
type UpdateLifecycle struct {
	AssetId string `json:"assetId"`
	Status  Status `json:"status"`
	Header
}

// RequestHeader - access to the embedded header
func (header *Header) RequestHeader() *Header {
	return header
}

// pack the header fields, signature is excluded
func (header *Header) pack(buffer Packed) Packed {
	buffer = appendAccount(buffer, header.Caller)
	buffer = appendUint64(buffer, header.Nonce)
	return appendUint64(buffer, header.Deposit)
}

// Message - the unsigned packed form of the request
func (request *AuthoriseOriginator) Message() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(AuthoriseOriginatorTag)))
	buffer = appendAccount(buffer, request.Originator)
	return request.Header.pack(buffer)
}

// Message - the unsigned packed form of the request
func (request *RevokeOriginator) Message() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(RevokeOriginatorTag)))
	buffer = appendAccount(buffer, request.Originator)
	return request.Header.pack(buffer)
}

// Message - the unsigned packed form of the request
func (request *RegisterLoanToken) Message() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(RegisterLoanTokenTag)))
	buffer = appendString(buffer, request.Id)
	buffer = appendString(buffer, request.ExternalReferenceId)
	buffer = appendUint64(buffer, request.TotalValue)
	return request.Header.pack(buffer)
}

// Message - the unsigned packed form of the request
func (request *TransferOwnership) Message() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(TransferOwnershipTag)))
	buffer = appendString(buffer, request.AssetId)
	buffer = appendAccount(buffer, request.To)
	buffer = appendUint64(buffer, request.Fraction)
	buffer = appendUint64(buffer, request.Price)
	return request.Header.pack(buffer)
}

// Message - the unsigned packed form of the request
func (request *UpdateLifecycle) Message() Packed {
	buffer := Packed(util.AppendVarint(nil, uint64(UpdateLifecycleTag)))
	buffer = appendString(buffer, request.AssetId)
	buffer = appendUint64(buffer, uint64(request.Status))
	return request.Header.pack(buffer)
}

// Sign - set the caller to the key's account and sign the request
func Sign(request Request, key *account.PrivateKey) {
	header := request.RequestHeader()
	header.Caller = key.Account()
	header.Signature = key.Sign(request.Message())
}

// Pack - verify the caller's signature and return the signed packed form
//
// Varint(tag) followed by fields in order with the header next and
// the signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func Pack(request Request) (Packed, error) {
	header := request.RequestHeader()
	if len(header.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if header.Caller.IsZero() {
		return nil, fault.ZeroAccount
	}
	if 0 == header.Nonce {
		return nil, fault.ZeroNonce
	}

	message := request.Message()
	err := header.Caller.CheckSignature(message, header.Signature)
	if nil != err {
		return message, err
	}

	// Signature Last
	return appendBytes(message, header.Signature), nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OwnerError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AdminMismatch                = ProcessError("admin account does not match stored admin")
	AlreadyInitialised           = ProcessError("already initialised")
	AssetIdContainsControl       = InvalidError("asset id contains control characters")
	AssetIdNotUTF8               = InvalidError("asset id is not valid UTF-8")
	AssetIdTooLong               = InvalidError("asset id is too long")
	AssetIsNotActive             = StateError("asset is not active")
	AssetNotFound                = NotFoundError("asset not found")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ConservationViolated         = ProcessError("ownership conservation violated")
	CryptoFailed                 = ProcessError("encryption failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateAssetId             = ExistsError("asset id already exists")
	EmptyAssetId                 = InvalidError("asset id is empty")
	EmptyExternalReference       = InvalidError("external reference id is empty")
	ExternalReferenceNotUTF8     = InvalidError("external reference id is not valid UTF-8")
	ExternalReferenceTooLong     = InvalidError("external reference id is too long")
	FractionOutOfRange           = InvalidError("fraction must be in range 1..10000 basis points")
	IdentityFileAlreadyExists    = ExistsError("identity file already exists")
	InsufficientStake            = BalanceError("insufficient ownership stake")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChecksum              = InvalidError("invalid checksum")
	InvalidCount                 = InvalidError("invalid count")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidSalt                  = InvalidError("invalid salt")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStatus                = InvalidError("invalid lifecycle status")
	InvalidTotalValue            = InvalidError("total value must be positive")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	MissingPrivateKey            = InvalidError("missing private key")
	NonceNotIncreasing           = InvalidError("nonce is not greater than last nonce")
	NotAdmin                     = AuthorisationError("caller is not the admin")
	NotAuthorisedOriginator      = AuthorisationError("caller is not an authorised originator")
	NotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	NotInitialised               = ProcessError("not initialised")
	NotIssuer                    = AuthorisationError("caller is not the issuer")
	NotOwner                     = OwnerError("caller holds no stake in asset")
	NotPackedRecord              = RecordError("not a packed record")
	PackedTooShort               = LengthError("packed record is too short")
	PasswordMismatch             = InvalidError("passwords do not match")
	PasswordTooShort             = InvalidError("password is too short")
	RateLimiting                 = InvalidError("rate limiting")
	SelfTransfer                 = InvalidError("cannot transfer to self")
	SequenceNotIncreasing        = ProcessError("ordering sequence is not increasing")
	SignatureTooLong             = LengthError("signature too long")
	StorageTransactionInUse      = ProcessError("storage transaction already in use")
	StorageTransactionNotStarted = ProcessError("storage transaction not started")
	StringTooLong                = LengthError("string too long")
	TransferRecordNotFound       = NotFoundError("transfer record not found")
	UnknownRecordType            = RecordError("unknown record type")
	WrongPassword                = InvalidError("wrong password")
	ZeroAccount                  = InvalidError("account must not be zero")
	ZeroNonce                    = InvalidError("nonce must not be zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e BalanceError) Error() string       { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e OwnerError) Error() string         { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrBalance(e error) bool       { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrOwner(e error) bool         { _, ok := e.(OwnerError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }

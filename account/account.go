// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4 // shift 4 bits to get algorithm

	keyVariant = byte(ED25519<<algorithmShift) | publicKeyCode

	// BytesLength - size of the binary form: key variant + public key
	BytesLength = 1 + ed25519.PublicKeySize
)

// Account - an ed25519 public key identifying a caller
//
// the zero value is the "no account" value and never verifies a
// signature; Account is comparable so it can be used directly with ==
// and as a map key
type Account struct {
	publicKey [ed25519.PublicKeySize]byte
}

// New - create an account from a raw ed25519 public key
func New(publicKey []byte) (Account, error) {
	a := Account{}
	if ed25519.PublicKeySize != len(publicKey) {
		return a, fault.InvalidKeyLength
	}
	copy(a.publicKey[:], publicKey)
	return a, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(s string) (Account, error) {
	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) <= checksumLength {
		return Account{}, fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Account{}, fault.InvalidChecksum
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert the binary form (key variant + public key) to an account
func FromBytes(buffer []byte) (Account, error) {
	variant, n := util.Varint(buffer)
	if 0 == n || variant&publicKeyCode != publicKeyCode {
		return Account{}, fault.InvalidKeyType
	}
	if ED25519 != variant>>algorithmShift {
		return Account{}, fault.InvalidKeyType
	}
	return New(buffer[n:])
}

// IsZero - true if this is the "no account" value
func (account Account) IsZero() bool {
	return account == Account{}
}

// PublicKeyBytes - the raw public key
func (account Account) PublicKeyBytes() []byte {
	return account.publicKey[:]
}

// Bytes - binary form used in storage keys and packed records
func (account Account) Bytes() []byte {
	return append([]byte{keyVariant}, account.publicKey[:]...)
}

// CheckSignature - verify an ed25519 signature of a message
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if account.IsZero() || ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.publicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// String - base58 encoding with checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (account Account) GoString() string {
	return "<account:" + account.String() + ">"
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/loanledger/fault"
)

// PrivateKey - signing key for an account
type PrivateKey struct {
	privateKey ed25519.PrivateKey
	account    Account
}

// NewPrivateKey - generate a random key pair
func NewPrivateKey() (*PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	a, err := New(publicKey)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		privateKey: privateKey,
		account:    a,
	}, nil
}

// PrivateKeyFromSeed - rebuild a key pair from its 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := New(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		privateKey: privateKey,
		account:    a,
	}, nil
}

// PrivateKeyFromHex - rebuild a key pair from its hex encoded seed
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidKeyLength
	}
	return PrivateKeyFromSeed(seed)
}

// Account - the public side of the key
func (privateKey *PrivateKey) Account() Account {
	return privateKey.account
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// Seed - the 32 byte seed
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.privateKey.Seed()
}

// String - hex encoded seed
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.Seed())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/loanledger/fault"
)

const (
	saltSize          = 16
	nonceSize         = 24
	minPasswordLength = 8
)

// Salt - random input to the password hash
type Salt [saltSize]byte

func makeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return nil, err
	}
	return salt, nil
}

// Bytes - salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form of the salt
func (salt Salt) String() string {
	return hex.EncodeToString(salt.Bytes())
}

// MarshalText - hex text for JSON
func (salt Salt) MarshalText() ([]byte, error) {
	return []byte(salt.String()), nil
}

// UnmarshalText - decode hex text
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if saltSize != byteCount {
		return fault.InvalidSalt
	}
	copy(salt[:], buffer)
	return nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if err != nil {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// encrypt and convert to hex, the random nonce is the prefix
func encryptData(data []byte, secretKey *[32]byte) (string, error) {

	if 0 == len(data) {
		return "", fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string, a wrong key fails authentication
func decryptData(ciphertext string, secretKey *[32]byte) ([]byte, error) {

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return nil, err
	}
	if len(encrypted) <= nonceSize {
		return nil, fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return nil, fault.WrongPassword
	}

	return decrypted, nil
}

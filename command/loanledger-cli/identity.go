// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/fault"
)

// identityFile - the JSON form of a signing identity
//
// the seed is encrypted with a key derived from a password and salt
type identityFile struct {
	Account account.Account `json:"account"`
	Salt    Salt            `json:"salt"`
	Data    string          `json:"data"`
}

func makeIdentity(seed string) (*account.PrivateKey, error) {
	if "" == seed {
		return account.NewPrivateKey()
	}
	return account.PrivateKeyFromHex(seed)
}

// write a new identity file; an existing file is never replaced
func saveIdentity(fileName string, key *account.PrivateKey, password string) error {
	if len(password) < minPasswordLength {
		return fault.PasswordTooShort
	}

	salt, err := makeSalt()
	if nil != err {
		return err
	}
	secretKey, err := generateKey(password, salt)
	if nil != err {
		return err
	}
	data, err := encryptData(key.Seed(), secretKey)
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(identityFile{
		Account: key.Account(),
		Salt:    *salt,
		Data:    data,
	}, "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		if os.IsExist(err) {
			return fault.IdentityFileAlreadyExists
		}
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", b)
	return err
}

func readIdentity(fileName string) (*identityFile, error) {
	if "" == fileName {
		return nil, fault.MissingPrivateKey
	}

	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var id identityFile
	if err := json.Unmarshal(b, &id); nil != err {
		return nil, err
	}
	if "" == id.Data || id.Account.IsZero() {
		return nil, fault.MissingPrivateKey
	}
	return &id, nil
}

// read an identity file, decrypt the seed and check it matches the
// account
func loadIdentity(fileName string, password string) (*account.PrivateKey, error) {
	id, err := readIdentity(fileName)
	if nil != err {
		return nil, err
	}

	secretKey, err := generateKey(password, &id.Salt)
	if nil != err {
		return nil, err
	}
	seed, err := decryptData(id.Data, secretKey)
	if nil != err {
		return nil, err
	}

	key, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return nil, err
	}
	if id.Account != key.Account() {
		return nil, fault.InvalidAccount
	}
	return key, nil
}

// load the identity named by the global flag, asking for its password
// when none was given
func unlockIdentity(m *metadata) (*account.PrivateKey, error) {
	if "" == m.identity {
		return nil, fault.MissingPrivateKey
	}
	password, err := existingPassword(m)
	if nil != err {
		return nil, err
	}
	return loadIdentity(m.identity, password)
}

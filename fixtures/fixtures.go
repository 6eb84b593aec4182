// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known keys, each derived from a constant seed
var (
	AdminKey      = makeKey(0xad)
	OriginatorKey = makeKey(0x0a)
	HolderKey     = makeKey(0x11)
	OtherKey      = makeKey(0x22)

	Admin      = AdminKey.Account()
	Originator = OriginatorKey.Account()
	Holder     = HolderKey.Account()
	Other      = OtherKey.Account()
)

func makeKey(b byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32))
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a scratch directory, critical messages only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

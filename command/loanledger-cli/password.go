// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/loanledger/fault"
)

// read a password from the controlling terminal without echo
func promptPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fmt.Fprint(tty, prompt)
	password, err := terminal.ReadPassword(int(tty.Fd()))
	fmt.Fprint(tty, "\n")
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// password to protect a new identity
func newPassword(m *metadata) (string, error) {
	password := m.password
	if "" == password {
		var err error
		password, err = promptPassword(fmt.Sprintf("Set identity password (length >= %d): ", minPasswordLength))
		if nil != err {
			return "", err
		}
		verify, err := promptPassword("Verify password: ")
		if nil != err {
			return "", err
		}
		if password != verify {
			return "", fault.PasswordMismatch
		}
	}
	if len(password) < minPasswordLength {
		return "", fault.PasswordTooShort
	}
	return password, nil
}

// password to unlock an existing identity
func existingPassword(m *metadata) (string, error) {
	if "" != m.password {
		return m.password, nil
	}
	return promptPassword("Identity password: ")
}

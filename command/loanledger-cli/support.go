// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/command/loanledger-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, fmt.Errorf("missing connect address")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connecting to: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func checkString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("missing --%s", name)
	}
	return s, nil
}

func checkAccount(c *cli.Context, name string) (account.Account, error) {
	s, err := checkString(c, name)
	if nil != err {
		return account.Account{}, err
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return account.Account{}, fmt.Errorf("--%s: %q error: %s", name, s, err)
	}
	return a, nil
}

func checkUint64(c *cli.Context, name string) (uint64, error) {
	n := c.Uint64(name)
	if 0 == n {
		return 0, fmt.Errorf("missing or zero --%s", name)
	}
	return n, nil
}

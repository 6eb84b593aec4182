// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/loanledger/account"
)

type generateReply struct {
	Account  account.Account `json:"account"`
	Seed     string          `json:"seed,omitempty"`
	Identity string          `json:"identity,omitempty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := makeIdentity(c.String("seed"))
	if nil != err {
		return err
	}

	if !c.Bool("save") {
		printJson(m.w, generateReply{
			Account: key.Account(),
			Seed:    key.String(),
		})
		return nil
	}

	if "" == m.identity {
		return fmt.Errorf("--save requires --identity")
	}
	password, err := newPassword(m)
	if nil != err {
		return err
	}
	if err := saveIdentity(m.identity, key, password); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "saved identity: %q\n", m.identity)
	}

	// the seed stays encrypted in the identity file
	printJson(m.w, generateReply{
		Account:  key.Account(),
		Identity: m.identity,
	})
	return nil
}

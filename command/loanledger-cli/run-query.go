// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/loanledger/account"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	token, err := client.Get(id)
	if nil != err {
		return err
	}

	printJson(m.w, token)
	return nil
}

func runBreakdown(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	owners, err := client.Breakdown(id)
	if nil != err {
		return err
	}

	printJson(m.w, owners)
	return nil
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	transfers, err := client.History(id)
	if nil != err {
		return err
	}

	printJson(m.w, transfers)
	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner account.Account
	if "" == c.String("owner") {
		id, err := readIdentity(m.identity)
		if nil != err {
			return err
		}
		owner = id.Account
	} else {
		var err error
		owner, err = checkAccount(c, "owner")
		if nil != err {
			return err
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	tokens, err := client.Owned(owner)
	if nil != err {
		return err
	}

	printJson(m.w, tokens)
	return nil
}

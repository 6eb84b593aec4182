// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAuthorise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	originator, err := checkAccount(c, "originator")
	if nil != err {
		return err
	}

	key, err := unlockIdentity(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Authorise(key, originator)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runRevoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	originator, err := checkAccount(c, "originator")
	if nil != err {
		return err
	}

	key, err := unlockIdentity(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Revoke(key, originator)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runIsAuthorised(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	originator, err := checkAccount(c, "originator")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	authorised, err := client.IsAuthorised(originator)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"account":    originator,
		"authorised": authorised,
	})
	return nil
}

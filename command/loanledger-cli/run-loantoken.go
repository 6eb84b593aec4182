// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/loanledger/command/loanledger-cli/rpccalls"
	"github.com/bitmark-inc/loanledger/record"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	reference, err := checkString(c, "reference")
	if nil != err {
		return err
	}
	value, err := checkUint64(c, "value")
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

	reply, err := client.Register(key, &rpccalls.RegisterData{
		Id:                  id,
		ExternalReferenceId: reference,
		TotalValue:          value,
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	receiver, err := checkAccount(c, "receiver")
	if nil != err {
		return err
	}
	fraction, err := checkUint64(c, "fraction")
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

	reply, err := client.Transfer(key, &rpccalls.TransferData{
		AssetId:  id,
		To:       receiver,
		Fraction: fraction,
		Price:    c.Uint64("price"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runUpdateStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	s, err := checkString(c, "status")
	if nil != err {
		return err
	}
	status, err := record.StatusFromString(s)
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

	reply, err := client.UpdateStatus(key, id, status)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

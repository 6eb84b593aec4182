// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	identity string
	password string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "loanledger-cli"
	app.Usage = "client for the loanledgerd fractional ownership ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " loanledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "LOANLEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " identity `FILE` holding the encrypted signing seed",
			EnvVar: "LOANLEDGER_IDENTITY",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD`, prompted for when blank",
			EnvVar: "LOANLEDGER_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing hex `SEED`",
				},
				cli.BoolFlag{
					Name:  "save, w",
					Usage: " encrypt and write to the identity file (never overwrites)",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "info",
			Usage:     "display loanledgerd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "authorise",
			Aliases:   []string{"authorize"},
			Usage:     "admin: grant an originator registration rights",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("originator, o", "*originator"),
			},
			Action: runAuthorise,
		},
		{
			Name:      "revoke",
			Usage:     "admin: remove an originator's registration rights",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("originator, o", "*originator"),
			},
			Action: runRevoke,
		},
		{
			Name:      "is-authorised",
			Aliases:   []string{"is-authorized"},
			Usage:     "check whether an account may register loan tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("originator, o", "*originator"),
			},
			Action: runIsAuthorised,
		},
		{
			Name:      "register",
			Usage:     "register a new loan token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "*loan token `ID`",
				},
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*external reference `STRING`",
				},
				cli.Uint64Flag{
					Name:  "value, a",
					Value: 0,
					Usage: "*total value of the loan `AMOUNT`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "transfer",
			Usage:     "transfer part of a stake to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "*loan token `ID`",
				},
				accountFlag("receiver, r", "*receiving"),
				cli.Uint64Flag{
					Name:  "fraction, f",
					Value: 0,
					Usage: "*fraction in basis points, 10000 = 100% `BPS`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " recorded price `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "update-status",
			Usage:     "issuer: set the lifecycle status of a loan token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "*loan token `ID`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*Active, Settled, Defaulted or Restructured `STATUS`",
				},
			},
			Action: runUpdateStatus,
		},
		{
			Name:      "get",
			Usage:     "display a loan token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag(),
			},
			Action: runGet,
		},
		{
			Name:      "breakdown",
			Usage:     "display the current owners of a loan token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag(),
			},
			Action: runBreakdown,
		},
		{
			Name:      "history",
			Usage:     "display the transfer history of a loan token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag(),
			},
			Action: runHistory,
		},
		{
			Name:      "owned",
			Usage:     "list loan tokens with a stake held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", " owner, default is the identity"),
			},
			Action: runOwned,
		},
		{
			Name:      "version",
			Usage:     "display loanledger-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			password: c.GlobalString("password"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q\n", m.connect)
			fmt.Fprintf(m.e, "identity: %q\n", m.identity)
		}
		c.App.Metadata["config"] = m
		return nil
	}

	return app
}

func idFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "id, t",
		Value: "",
		Usage: "*loan token `ID`",
	}
}

func accountFlag(name string, role string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: role + " base58 `ACCOUNT`",
	}
}

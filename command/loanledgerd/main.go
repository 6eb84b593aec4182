// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/ledger"
	"github.com/bitmark-inc/loanledger/messagebus"
	"github.com/bitmark-inc/loanledger/publish"
	"github.com/bitmark-inc/loanledger/rpc/certificate"
	"github.com/bitmark-inc/loanledger/rpc/listeners"
	"github.com/bitmark-inc/loanledger/rpc/server"
	"github.com/bitmark-inc/loanledger/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "read-only", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	readOnly := len(options["read-only"]) > 0

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("read only: %v", readOnly)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	admin := account.Account{}
	if "" != theConfiguration.Admin {
		admin, err = account.FromBase58(theConfiguration.Admin)
		if nil != err {
			log.Criticalf("admin account: %q error: %s", theConfiguration.Admin, err)
			exitwithstatus.Message("admin account: %q error: %s", theConfiguration.Admin, err)
		}
	}

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, readOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// events go to the log and to the broadcast queue
	queue := messagebus.New(messagebus.DefaultSize)
	emitters := event.Emitters{
		event.NewLogEmitter(logger.New("event")),
		publish.NewEmitter(queue),
	}

	host := execution.New(store, nil, emitters)

	log.Info("initialise ledger")
	theLedger, err := ledger.New(store, host, admin)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	log.Infof("admin: %s", theLedger.Admin())
	log.Infof("sequence: %d", theLedger.Sequence())

	// start up the publishing background processes
	publisher, err := publish.Start(&theConfiguration.Publishing, queue)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publisher.Stop()

	// start up the rpc background processes
	rpcListener, err := startRPC(&theConfiguration.ClientRPC, theLedger)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpcListener.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	if n := queue.Dropped(); 0 != n {
		log.Warnf("events dropped by the broadcast queue: %d", n)
	}
}

// load the certificate and start listening for client connections
func startRPC(configuration *listeners.RPCConfiguration, l ledger.Ledger) (listeners.Listener, error) {
	log := logger.New("rpc")

	certificatePEM, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		return nil, err
	}
	keyPEM, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, "client_rpc", string(certificatePEM), string(keyPEM))
	if nil != err {
		return nil, err
	}

	connections := &counter.Counter{}
	rpcServer := server.Create(log, version, connections, l)

	listener, err := listeners.NewRPC(configuration, log, connections, rpcServer, tlsConfiguration, fingerprint)
	if nil != err {
		return nil, err
	}
	if err := listener.Serve(); nil != err {
		return nil, err
	}
	return listener, nil
}

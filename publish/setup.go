// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast of committed ledger events on ZeroMQ PUB
// sockets
//
// each event is sent as three frames: kind, event id and the JSON
// field set
package publish

import (
	"sync"

	"github.com/bitmark-inc/loanledger/background"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/messagebus"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// Publisher - the running broadcaster
type Publisher struct {
	sync.Mutex

	log        *logger.L
	brdc       broadcaster
	background *background.T
}

// Start - bind the broadcast addresses and start sending queued events
//
// an empty broadcast list gives a publisher that only drains the queue
func Start(configuration *Configuration, queue *messagebus.Queue) (*Publisher, error) {
	if nil == configuration || nil == queue {
		return nil, fault.MissingParameters
	}

	log := logger.New("publish")
	log.Info("starting…")

	p := &Publisher{
		log: log,
	}

	if err := p.brdc.initialise(log, queue, configuration.Broadcast); nil != err {
		return nil, err
	}

	processes := background.Processes{
		&p.brdc,
	}
	p.background = background.Start(processes, nil)

	return p, nil
}

// Stop - stop the background broadcaster and close its sockets
func (p *Publisher) Stop() {
	p.Lock()
	defer p.Unlock()

	if nil == p.background {
		return
	}

	p.log.Info("shutting down…")
	p.log.Flush()

	p.background.Stop()
	p.background = nil

	p.log.Info("finished")
	p.log.Flush()
}

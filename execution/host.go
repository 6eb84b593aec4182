// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package execution

import (
	"sync"
	"time"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/storage"
	"github.com/bitmark-inc/logger"
)

// keys in the contract pool
var (
	sequenceKey = []byte("sequence")
)

// Call - identity and attachments of one external call
type Call struct {
	Caller  account.Account
	Nonce   uint64
	Deposit uint64
}

// Receipt - result of a committed call
type Receipt struct {
	Sequence  uint64        `json:"sequence"`
	Timestamp uint64        `json:"timestamp"`
	Events    []event.Event `json:"events"`
}

// Operation - a state transition run inside a call
type Operation func(ctx *Context) error

// Clock - source of the current time
type Clock func() time.Time

// Host - serialises calls against one store
//
// each call runs in its own storage transaction and is either fully
// committed or leaves no ledger state; the caller's nonce must increase
// on every call and a rejected call still uses it up
type Host struct {
	sync.Mutex

	log     *logger.L
	store   *storage.Store
	clock   Clock
	emitter event.Emitter
}

// New - create a host
func New(store *storage.Store, clock Clock, emitter event.Emitter) *Host {
	if nil == clock {
		clock = time.Now
	}
	return &Host{
		log:     logger.New("execution"),
		store:   store,
		clock:   clock,
		emitter: emitter,
	}
}

// Sequence - last committed ordering counter
//
// read without the host lock so it may lag a call still in progress
func (host *Host) Sequence() uint64 {
	n, _ := host.store.Pool.Contract.GetN(sequenceKey)
	return n
}

// LastNonce - last nonce used by an account
//
// read without the host lock so it may lag a call still in progress
func (host *Host) LastNonce(caller account.Account) uint64 {
	n, _ := host.store.Pool.Nonces.GetN(caller.Bytes())
	return n
}

// Execute - run one operation as an atomic call
func (host *Host) Execute(call Call, operation Operation) (*Receipt, error) {
	host.Lock()
	defer host.Unlock()

	log := host.log

	if call.Caller.IsZero() {
		return nil, fault.ZeroAccount
	}
	if 0 == call.Nonce {
		return nil, fault.ZeroNonce
	}

	trx, err := host.store.Begin()
	if nil != err {
		return nil, err
	}

	finished := false
	defer func() {
		if !finished {
			trx.Abort()
		}
	}()

	pool := &host.store.Pool

	lastNonce, _ := trx.GetN(pool.Nonces, call.Caller.Bytes())
	if call.Nonce <= lastNonce {
		log.Debugf("caller: %s  nonce: %d  last: %d", call.Caller, call.Nonce, lastNonce)
		return nil, fault.NonceNotIncreasing
	}

	sequence, _ := trx.GetN(pool.Contract, sequenceKey)
	sequence += 1

	ctx := &Context{
		Caller:    call.Caller,
		Timestamp: uint64(host.clock().UnixNano()),
		Sequence:  sequence,
		Deposit:   call.Deposit,
		Trx:       trx,
		Pool:      pool,
	}

	err = operation(ctx)
	if nil != err {
		log.Debugf("sequence: %d  caller: %s  rejected: %s", sequence, call.Caller, err)
		trx.Abort()
		finished = true
		host.useNonce(call)
		return nil, err
	}

	trx.PutN(pool.Nonces, call.Caller.Bytes(), call.Nonce)
	trx.PutN(pool.Contract, sequenceKey, sequence)

	finished = true
	err = trx.Commit()
	if nil != err {
		log.Errorf("sequence: %d  commit error: %s", sequence, err)
		return nil, err
	}

	log.Debugf("sequence: %d  caller: %s  committed with: %d events", sequence, call.Caller, len(ctx.events))

	if nil != host.emitter {
		for _, e := range ctx.events {
			host.emitter.Emit(e)
		}
	}

	return &Receipt{
		Sequence:  sequence,
		Timestamp: ctx.Timestamp,
		Events:    ctx.events,
	}, nil
}

// a rejected call leaves no ledger state but still uses up its
// nonce, so the signed request cannot be submitted again later
func (host *Host) useNonce(call Call) {
	trx, err := host.store.Begin()
	if nil != err {
		host.log.Errorf("caller: %s  nonce: %d  begin error: %s", call.Caller, call.Nonce, err)
		return
	}
	trx.PutN(host.store.Pool.Nonces, call.Caller.Bytes(), call.Nonce)
	if err := trx.Commit(); nil != err {
		host.log.Errorf("caller: %s  nonce: %d  commit error: %s", call.Caller, call.Nonce, err)
	}
}

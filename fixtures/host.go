// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/loanledger/account"
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/execution"
	"github.com/bitmark-inc/loanledger/storage"
)

// StartTime - the first reading of a test clock
var StartTime = time.Unix(1600000000, 0)

// Clock - advances one second on every reading
type Clock struct {
	sync.Mutex
	ticks int64
}

// Now - next time
func (c *Clock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	now := StartTime.Add(time.Duration(c.ticks) * time.Second)
	c.ticks += 1
	return now
}

// Recorder - emitter keeping every delivered event
type Recorder struct {
	sync.Mutex
	Events []event.Event
}

// Emit - record the event
func (r *Recorder) Emit(e event.Event) {
	r.Lock()
	r.Events = append(r.Events, e)
	r.Unlock()
}

// Kinds - the kinds of all recorded events in order
func (r *Recorder) Kinds() []event.Kind {
	r.Lock()
	defer r.Unlock()
	kinds := make([]event.Kind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Reset - forget recorded events
func (r *Recorder) Reset() {
	r.Lock()
	r.Events = nil
	r.Unlock()
}

// Host - an in-memory store and host with automatic nonces
type Host struct {
	Store    *storage.Store
	Host     *execution.Host
	Recorder *Recorder

	nonces map[account.Account]uint64
}

// NewHost - fresh in-memory ledger state
func NewHost() (*Host, error) {
	store, err := storage.OpenMemory()
	if nil != err {
		return nil, err
	}
	recorder := &Recorder{}
	clock := &Clock{}
	return &Host{
		Store:    store,
		Host:     execution.New(store, clock.Now, recorder),
		Recorder: recorder,
		nonces:   make(map[account.Account]uint64),
	}, nil
}

// Call - run an operation with the next nonce of the caller
func (h *Host) Call(caller account.Account, operation execution.Operation) (*execution.Receipt, error) {
	h.nonces[caller] += 1
	return h.Host.Execute(execution.Call{
		Caller: caller,
		Nonce:  h.nonces[caller],
	}, operation)
}

// Pool - the store's pools
func (h *Host) Pool() *storage.Pools {
	return &h.Store.Pool
}

// Close - release the store
func (h *Host) Close() {
	h.Store.Close()
}

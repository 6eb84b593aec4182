// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/loanledger/event"
	"github.com/bitmark-inc/loanledger/messagebus"
	"github.com/bitmark-inc/logger"
)

type emitter struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewEmitter - an event emitter that queues events for broadcast
func NewEmitter(queue *messagebus.Queue) event.Emitter {
	return &emitter{
		log:   logger.New("publish"),
		queue: queue,
	}
}

// Emit - queue [kind, id, json]
func (e *emitter) Emit(ev event.Event) {
	payload, err := ev.PayloadJSON()
	if nil != err {
		e.log.Errorf("event: %s  id: %s  encode error: %s", ev.Kind, ev.Id, err)
		return
	}

	id := ev.Id.String()
	if !e.queue.Send(string(ev.Kind), []byte(id), payload) {
		e.log.Warnf("queue full: dropped event: %s  id: %s", ev.Kind, id)
	}
}

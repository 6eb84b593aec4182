// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/logger"
)

// Emitter - receiver of committed events
//
// Emit is only called after the mutation that produced the event has
// been committed
type Emitter interface {
	Emit(Event)
}

// Emitters - deliver to each emitter in turn
type Emitters []Emitter

// Emit - fan out
func (emitters Emitters) Emit(e Event) {
	for _, emitter := range emitters {
		emitter.Emit(e)
	}
}

type logEmitter struct {
	log *logger.L
}

// NewLogEmitter - write each event as an EVENT:<KIND> line
func NewLogEmitter(log *logger.L) Emitter {
	return &logEmitter{
		log: log,
	}
}

func (l *logEmitter) Emit(e Event) {
	l.log.Info(e.String())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// DefaultSize - queue capacity used by the daemon
const DefaultSize = 1000

// Message - a command with its binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a buffered channel of messages
type Queue struct {
	c       chan Message
	dropped uint64
}

// New - create a queue holding at most size messages
func New(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without blocking
//
// returns false if the queue was full and the message was dropped
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - count of messages lost to a full queue
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}

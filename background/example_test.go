// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/loanledger/background"
)

type drain struct {
	queue <-chan string
	done  chan<- struct{}
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
	prefix := args.(string)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-d.queue:
			fmt.Printf("%s: %s\n", prefix, item)
			d.done <- struct{}{}
		}
	}
}

func Example() {
	queue := make(chan string)
	done := make(chan struct{})

	p := background.Start(background.Processes{
		&drain{queue: queue, done: done},
	}, "event")

	queue <- "LOAN_TOKEN_REGISTERED"
	<-done
	p.Stop()

	// Output:
	// event: LOAN_TOKEN_REGISTERED
}

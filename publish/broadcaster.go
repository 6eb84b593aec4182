// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"net"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/messagebus"
	"github.com/bitmark-inc/logger"
)

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// bind one IPv4 and one IPv6 socket as needed for the addresses
func (brdc *broadcaster) initialise(log *logger.L, queue *messagebus.Queue, broadcast []string) error {
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	ok := false
	defer func() {
		if !ok {
			brdc.close()
		}
	}()

	for i, address := range broadcast {
		bindTo, v6, err := canonical(address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}

		socket := brdc.socket4
		if v6 {
			socket = brdc.socket6
		}
		if nil == socket {
			socket, err = zmq.NewSocket(zmq.PUB)
			if nil != err {
				return err
			}
			socket.SetLinger(0)
			if v6 {
				socket.SetIpv6(true)
				brdc.socket6 = socket
			} else {
				brdc.socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}

	ok = true
	return nil
}

// Run - send queued messages until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  frames: %d", item.Command, 1+len(item.Parameters))
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}

	brdc.close()
	log.Info("stopped")
}

// send one multipart message, a subscriber that cannot keep up
// loses messages
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.DONTWAIT
	if len(item.Parameters) > 0 {
		flags |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		_, err = socket.SendBytes(p, flags)
		if nil != err {
			brdc.log.Warnf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}

// convert "host:port" to a ZeroMQ tcp endpoint
//
// "*:port" binds all IPv4 interfaces
func canonical(address string) (string, bool, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(address))
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}
	if "" == port {
		return "", false, fault.InvalidIpAddress
	}
	if "*" == host {
		return "tcp://*:" + port, false, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIpAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + port, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + port, true, nil
}

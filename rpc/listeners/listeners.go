// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON RPC listeners with a connection limit
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/loanledger/counter"
	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
	minBandwidth       = 1000000 // 1Mbps
)

// Listener - a started or startable server
type Listener interface {
	Serve() error
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []address
	listeners      []net.Listener
	finished       sync.WaitGroup
}

type address struct {
	network string // tcp, tcp4 or tcp6
	listen  string
}

// NewRPC - validate the configuration and create an RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %.0f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddress(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s", a.listen)
		listener, err := tls.Listen(a.network, a.listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.finished.Add(1)
		go func(listener net.Listener) {
			defer r.finished.Done()
			doServeRPC(listener, r.server, r.maxConnections, r.log, r.count)
		}(listener)
	}
	return nil
}

// Stop - close the listeners, open connections finish their calls
func (r *rpcListener) Stop() {
	r.Lock()
	r.closeAll()
	r.Unlock()

	r.finished.Wait()
}

func (r *rpcListener) closeAll() {
	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if count.Acquire(maximumConnections) {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			log.Warnf("connection limit: %d reached, rejecting: %s", maximumConnections, conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// "*:PORT" listens on both IPv4 and IPv6
func parseListenAddress(addrs []string) ([]address, error) {
	parsed := make([]address, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err || "" == port {
			return nil, fault.InvalidIpAddress
		}

		if "*" == host {
			parsed[i] = address{
				network: "tcp",
				listen:  net.JoinHostPort("::", port),
			}
			continue
		}

		ip := net.ParseIP(host)
		if nil == ip {
			return nil, fault.InvalidIpAddress
		}
		network := "tcp6"
		if nil != ip.To4() {
			network = "tcp4"
		}
		parsed[i] = address{
			network: network,
			listen:  net.JoinHostPort(ip.String(), port),
		}
	}

	return parsed, nil
}

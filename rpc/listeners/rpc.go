// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON RPC listeners
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - accepts connections until closed
type Listener interface {
	Serve() error
	Close()
}

// RPCConfiguration - the client_rpc block of the configuration file
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	RateLimit          float64  `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst          int      `gluamapper:"rate_burst" json:"rate_burst"`
	SignatureWindow    int      `gluamapper:"signature_window" json:"signature_window"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	listen         []*util.Connection
	listeners      []net.Listener
}

// NewRPC - validate the configuration, nothing is opened until Serve
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	listen := make([]*util.Connection, 0, len(configuration.Listen))
	for i, address := range configuration.Listen {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("invalid %s listen[%d]: %q  error: %s", logName, i, address, err)
			return nil, err
		}
		listen = append(listen, c)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		listen:         listen,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, c := range r.listen {
		address := c.CanonicalIPandPort("")
		r.log.Infof("starting RPC server: %s", address)

		listener, err := tls.Listen(c.Network(), address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting, open connections finish their requests
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if r.count.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				r.count.Decrement()
			}()
		} else {
			r.count.Decrement()
			_ = conn.Close()
		}
	}
}

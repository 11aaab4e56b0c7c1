// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind every listen address
//
// creates up to two sockets, one for IPv4 and one for IPv6
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*zmq.Socket, *zmq.Socket, error) {
	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	closeAll := func() {
		if nil != socket4 {
			_ = socket4.Close()
		}
		if nil != socket6 {
			_ = socket6.Close()
		}
	}

	for i, address := range listen {
		v6 := address.IsV6()
		bindTo := address.CanonicalIPandPort("tcp://")

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			s, err := NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			socket = s
			if v6 {
				socket6 = s
			} else {
				socket4 = s
			}
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - a socket for the server side of a connection
//
// without a private key the socket is unencrypted
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	if 0 != len(privateKey) {
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
		if err := socket.SetCurveServer(1); nil != err {
			_ = socket.Close()
			return nil, err
		}
		if err := socket.SetCurveSecretkey(string(privateKey)); nil != err {
			_ = socket.Close()
			return nil, err
		}
		if err := socket.SetZapDomain(zapDomain); nil != err {
			_ = socket.Close()
			return nil, err
		}
		if err := socket.SetIdentity(string(publicKey)); nil != err {
			_ = socket.Close()
			return nil, err
		}
	}

	if err := socket.SetIpv6(v6); nil != err {
		_ = socket.Close()
		return nil, err
	}
	_ = socket.SetLinger(0)

	_ = socket.SetHeartbeatIvl(heartbeatInterval)
	_ = socket.SetHeartbeatTimeout(heartbeatTimeout)
	_ = socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}

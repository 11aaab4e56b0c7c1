// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Connection - a validated IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse "IP:port", "[IPv6]:port" or "*:port"
//
// "*" listens on every IPv4 and IPv6 address
func NewConnection(hostPort string) (*Connection, error) {
	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]" + hostPort[1:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.ErrInvalidIPAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return nil, fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.ErrInvalidPortNumber
	}

	return &Connection{
		ip:   ip,
		port: numericPort,
	}, nil
}

// IsV6 - true if the address is not an IPv4 address
func (conn *Connection) IsV6() bool {
	return nil == conn.ip.To4()
}

// Network - "tcp4", "tcp6", or "tcp" for the unspecified IPv6 address
func (conn *Connection) Network() string {
	if !conn.IsV6() {
		return "tcp4"
	}
	if conn.ip.IsUnspecified() {
		return "tcp"
	}
	return "tcp6"
}

// CanonicalIPandPort - "IP:port" or "[IP]:port" with optional prefix
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func (conn *Connection) CanonicalIPandPort(prefix string) string {
	port := strconv.Itoa(conn.port)
	if conn.IsV6() {
		return prefix + "[" + conn.ip.String() + "]:" + port
	}
	return prefix + conn.ip.String() + ":" + port
}

// CanonicalIPandPort - validate and normalise a single address
func CanonicalIPandPort(prefix string, hostPort string) (string, error) {
	conn, err := NewConnection(hostPort)
	if nil != err {
		return "", err
	}
	return conn.CanonicalIPandPort(prefix), nil
}

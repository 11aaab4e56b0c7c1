// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON RPC calls to an eqledgerd
package rpccalls

import (
	"crypto/ecdsa"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *ecdsa.PrivateKey // signs state changing calls, may be nil
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an eqledgerd
func NewClient(connect string, key *ecdsa.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}
	return newClient(conn, key, verbose, handle), nil
}

func newClient(conn net.Conn, key *ecdsa.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the eqledgerd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// signed arguments get a fresh credential on every call
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if signed, ok := arguments.(credential.Signed); ok {
		if nil == c.key {
			return fault.ErrRequiredCaller
		}
		if err := credential.Sign(c.key, method, signed, time.Now()); nil != err {
			return err
		}
	}

	c.printJson(method+" Request", arguments)
	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}
	c.printJson(method+" Reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) {

	if !c.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/eqledgerd/command/eqledger-cli/rpccalls"
)

type metadata struct {
	connect string
	key     *ecdsa.PrivateKey
	caller  common.Address
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that never connect to a daemon
var offline = map[string]struct{}{
	"":         {},
	"help":     {},
	"h":        {},
	"version":  {},
	"token-id": {},
	"slot":     {},
	"key":      {},
}

func main() {

	app := cli.NewApp()
	app.Name = "eqledger-cli"
	app.Usage = "client for an eqledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			EnvVar: "EQLEDGER_CONNECT",
			Usage:  " eqledgerd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			EnvVar: "EQLEDGER_KEY",
			Usage:  " private `HEX` key of the account signing state changing calls",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if _, ok := offline[command]; ok {
			return nil
		}

		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if s := c.GlobalString("key"); "" != s {
			key, err := parseKey(s)
			if nil != err {
				return err
			}
			m.key = key
			m.caller = crypto.PubkeyToAddress(key.PublicKey)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q\n", m.connect)
			fmt.Fprintf(m.e, "caller: %s\n", m.caller.Hex())
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// connection for the command being run
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

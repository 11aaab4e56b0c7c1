// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/eqledgerd/slot"
	"github.com/bitmark-inc/eqledgerd/tokenid"
)

func runTokenID(c *cli.Context) error {

	originator, err := parseAddress("originator", c.String("originator"))
	if nil != err {
		return err
	}
	percents, shareIds, err := parseShares(c.StringSlice("share"))
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n", tokenid.Derive(percents, shareIds, originator))
	return nil
}

func runSlot(c *cli.Context) error {

	if 0 == c.NArg() {
		return fmt.Errorf("missing namespace")
	}
	for _, namespace := range c.Args() {
		s, err := slot.New(namespace)
		if nil != err {
			return fmt.Errorf("namespace: %q error: %s", namespace, err)
		}
		fmt.Fprintf(c.App.Writer, "%s  %s\n", s, namespace)
	}
	return nil
}

type keyReply struct {
	Key     string `json:"key"`
	Account string `json:"account"`
}

func runKey(c *cli.Context) error {

	key, err := crypto.GenerateKey()
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, keyReply{
		Key:     hex.EncodeToString(crypto.FromECDSA(key)),
		Account: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	})
}

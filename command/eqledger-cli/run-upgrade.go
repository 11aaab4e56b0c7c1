// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runLogicVersion(c *cli.Context) error {

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Version()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runUpgrade(c *cli.Context) error {

	module := c.String("module")
	if err := checkRequired("module", module); nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpgradeTo(module)
	if nil != err {
		return err
	}
	implementation, err := client.Implementation()
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"implementation": implementation,
		"block":          reply.Block,
		"events":         reply.Events,
	})
}

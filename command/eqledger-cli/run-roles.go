// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/eqledgerd/rpc/roles"
)

// sub-command to RPC method
var roleMethods = map[string]string{
	"grant":    "Grant",
	"revoke":   "Revoke",
	"renounce": "Renounce",
}

func runRole(c *cli.Context) error {

	method, ok := roleMethods[c.Args().First()]
	if !ok {
		return fmt.Errorf("role: %q is not one of: grant, revoke, renounce", c.Args().First())
	}
	role := c.String("role")
	if err := checkRequired("role", role); nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	member, err := addressOrDefault("account", c.String("account"), m.caller)
	if nil != err {
		return err
	}

	reply, err := client.RoleChange(method, &roles.MemberArguments{
		Role:    role,
		Account: member,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runHasRole(c *cli.Context) error {

	role := c.String("role")
	if err := checkRequired("role", role); nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	member, err := addressOrDefault("account", c.String("account"), m.caller)
	if nil != err {
		return err
	}

	has, err := client.HasRole(role, member)
	if nil != err {
		return err
	}
	admin, err := client.RoleAdmin(role)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"role":      has.Role,
		"account":   member,
		"member":    has.Member,
		"admin":     admin.Admin,
		"adminName": admin.AdminName,
	})
}

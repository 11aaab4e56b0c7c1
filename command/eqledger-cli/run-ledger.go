// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/ledger"
)

func runInfo(c *cli.Context) error {

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInitialise(c *cli.Context) error {

	uri := c.String("uri")
	if err := checkRequired("uri", uri); nil != err {
		return err
	}
	minter, err := parseAddress("minter", c.String("minter"))
	if nil != err {
		return err
	}
	burner, err := parseAddress("burner", c.String("burner"))
	if nil != err {
		return err
	}
	admin, err := parseAddress("admin", c.String("admin"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Initialise(&ledger.InitialiseArguments{
		Module: c.String("module"),
		URI:    uri,
		Minter: minter,
		Burner: burner,
		Admin:  admin,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runGenerateID(c *cli.Context) error {

	originator, err := parseAddress("originator", c.String("originator"))
	if nil != err {
		return err
	}
	percents, shareIds, err := parseShares(c.StringSlice("share"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GenerateID(&ledger.GenerateIDArguments{
		Percents:   percents,
		ShareIds:   shareIds,
		Originator: originator,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runMint(c *cli.Context) error {

	to, err := parseAddress("to", c.String("to"))
	if nil != err {
		return err
	}
	ids, err := parseWords("ids", c.String("ids"))
	if nil != err {
		return err
	}
	amounts, err := parseWords("amounts", c.String("amounts"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *host.Reply
	if 1 == len(ids) && 1 == len(amounts) {
		reply, err = client.Mint(&ledger.MintArguments{
			To:     to,
			Id:     ids[0],
			Amount: amounts[0],
			Data:   c.String("data"),
		})
	} else {
		reply, err = client.MintBatch(&ledger.MintBatchArguments{
			To:      to,
			Ids:     ids,
			Amounts: amounts,
			Data:    c.String("data"),
		})
	}
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBurn(c *cli.Context) error {

	from, err := parseAddress("from", c.String("from"))
	if nil != err {
		return err
	}
	ids, err := parseWords("ids", c.String("ids"))
	if nil != err {
		return err
	}
	amounts, err := parseWords("amounts", c.String("amounts"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *host.Reply
	if 1 == len(ids) && 1 == len(amounts) {
		reply, err = client.Burn(&ledger.BurnArguments{
			From:   from,
			Id:     ids[0],
			Amount: amounts[0],
		})
	} else {
		reply, err = client.BurnBatch(&ledger.BurnBatchArguments{
			From:    from,
			Ids:     ids,
			Amounts: amounts,
		})
	}
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {

	to, err := parseAddress("to", c.String("to"))
	if nil != err {
		return err
	}
	ids, err := parseWords("ids", c.String("ids"))
	if nil != err {
		return err
	}
	amounts, err := parseWords("amounts", c.String("amounts"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	from, err := addressOrDefault("from", c.String("from"), m.caller)
	if nil != err {
		return err
	}

	var reply *host.Reply
	if 1 == len(ids) && 1 == len(amounts) {
		reply, err = client.Transfer(&ledger.TransferArguments{
			From:   from,
			To:     to,
			Id:     ids[0],
			Amount: amounts[0],
			Data:   c.String("data"),
		})
	} else {
		reply, err = client.TransferBatch(&ledger.TransferBatchArguments{
			From:    from,
			To:      to,
			Ids:     ids,
			Amounts: amounts,
			Data:    c.String("data"),
		})
	}
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runApprove(c *cli.Context) error {

	operator, err := parseAddress("operator", c.String("operator"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.SetApprovalForAll(&ledger.SetApprovalForAllArguments{
		Operator: operator,
		Approved: !c.Bool("revoke"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runIsApproved(c *cli.Context) error {

	operator, err := parseAddress("operator", c.String("operator"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := addressOrDefault("owner", c.String("owner"), m.caller)
	if nil != err {
		return err
	}

	approved, err := client.IsApprovedForAll(owner, operator)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"owner":    owner,
		"operator": operator,
		"approved": approved,
	})
}

func runBalance(c *cli.Context) error {

	ids, err := parseWords("ids", c.String("ids"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	// no accounts: query the caller for every id
	var accounts []common.Address
	if "" == c.String("accounts") {
		for range ids {
			accounts = append(accounts, m.caller)
		}
	} else {
		accounts, err = parseAddresses("accounts", c.String("accounts"))
		if nil != err {
			return err
		}
	}

	balances, err := client.BalanceBatch(accounts, ids)
	if nil != err {
		return err
	}

	type item struct {
		Account common.Address `json:"account"`
		Id      common.Hash    `json:"id"`
		Balance common.Hash    `json:"balance"`
	}
	result := make([]item, len(balances))
	for i, b := range balances {
		result[i] = item{
			Account: accounts[i],
			Id:      ids[i],
			Balance: b,
		}
	}
	return printJson(m.w, result)
}

func runToken(c *cli.Context) error {

	ids, err := parseWords("id", c.String("id"))
	if nil != err {
		return err
	}
	id := ids[0]

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.Exists(id)
	if nil != err {
		return err
	}
	supply, err := client.TotalSupply(id)
	if nil != err {
		return err
	}
	uri, err := client.URI(id)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"id":          id,
		"exists":      exists,
		"totalSupply": supply,
		"uri":         uri.Expanded,
	})
}

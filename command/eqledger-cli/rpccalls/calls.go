// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/ledger"
	"github.com/bitmark-inc/eqledgerd/rpc/node"
	"github.com/bitmark-inc/eqledgerd/rpc/roles"
	"github.com/bitmark-inc/eqledgerd/rpc/upgrade"
)

// Info - daemon and logic module status
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := c.call("Node.Info", &node.InfoArguments{}, &reply)
	return &reply, err
}

// Initialise - deploy and initialise a module
func (c *Client) Initialise(arguments *ledger.InitialiseArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.Initialise", arguments, &reply)
	return &reply, err
}

// GenerateID - register the id of a share structure
func (c *Client) GenerateID(arguments *ledger.GenerateIDArguments) (*ledger.GenerateIDReply, error) {
	var reply ledger.GenerateIDReply
	err := c.call("Ledger.GenerateID", arguments, &reply)
	return &reply, err
}

// Mint - single id
func (c *Client) Mint(arguments *ledger.MintArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.Mint", arguments, &reply)
	return &reply, err
}

// MintBatch - several ids
func (c *Client) MintBatch(arguments *ledger.MintBatchArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.MintBatch", arguments, &reply)
	return &reply, err
}

// Burn - single id
func (c *Client) Burn(arguments *ledger.BurnArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.Burn", arguments, &reply)
	return &reply, err
}

// BurnBatch - several ids
func (c *Client) BurnBatch(arguments *ledger.BurnBatchArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.BurnBatch", arguments, &reply)
	return &reply, err
}

// Transfer - single id
func (c *Client) Transfer(arguments *ledger.TransferArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.Transfer", arguments, &reply)
	return &reply, err
}

// TransferBatch - several ids
func (c *Client) TransferBatch(arguments *ledger.TransferBatchArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.TransferBatch", arguments, &reply)
	return &reply, err
}

// SetApprovalForAll - operator approval for the caller
func (c *Client) SetApprovalForAll(arguments *ledger.SetApprovalForAllArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Ledger.SetApprovalForAll", arguments, &reply)
	return &reply, err
}

// IsApprovedForAll - operator approval of an owner
func (c *Client) IsApprovedForAll(owner common.Address, operator common.Address) (bool, error) {
	arguments := ledger.IsApprovedForAllArguments{
		Owner:    owner,
		Operator: operator,
	}
	var reply ledger.IsApprovedForAllReply
	err := c.call("Ledger.IsApprovedForAll", &arguments, &reply)
	return reply.Approved, err
}

// Balance - of one account and id
func (c *Client) Balance(a common.Address, id common.Hash) (common.Hash, error) {
	arguments := ledger.BalanceArguments{
		Account: a,
		Id:      id,
	}
	var reply ledger.BalanceReply
	err := c.call("Ledger.Balance", &arguments, &reply)
	return reply.Balance, err
}

// BalanceBatch - of account and id pairs
func (c *Client) BalanceBatch(accounts []common.Address, ids []common.Hash) ([]common.Hash, error) {
	arguments := ledger.BalanceBatchArguments{
		Accounts: accounts,
		Ids:      ids,
	}
	var reply ledger.BalanceBatchReply
	err := c.call("Ledger.BalanceBatch", &arguments, &reply)
	return reply.Balances, err
}

// URI - metadata template and its expansion
func (c *Client) URI(id common.Hash) (*ledger.URIReply, error) {
	var reply ledger.URIReply
	err := c.call("Ledger.URI", &ledger.IdArguments{Id: id}, &reply)
	return &reply, err
}

// TotalSupply - of an id
func (c *Client) TotalSupply(id common.Hash) (common.Hash, error) {
	var reply ledger.TotalSupplyReply
	err := c.call("Ledger.TotalSupply", &ledger.IdArguments{Id: id}, &reply)
	return reply.TotalSupply, err
}

// Exists - whether an id was generated
func (c *Client) Exists(id common.Hash) (bool, error) {
	var reply ledger.ExistsReply
	err := c.call("Ledger.Exists", &ledger.IdArguments{Id: id}, &reply)
	return reply.Exists, err
}

// RoleChange - Grant, Revoke or Renounce
func (c *Client) RoleChange(method string, arguments *roles.MemberArguments) (*host.Reply, error) {
	var reply host.Reply
	err := c.call("Roles."+method, arguments, &reply)
	return &reply, err
}

// HasRole - membership of an account
func (c *Client) HasRole(role string, a common.Address) (*roles.HasReply, error) {
	arguments := roles.HasArguments{
		Role:    role,
		Account: a,
	}
	var reply roles.HasReply
	err := c.call("Roles.Has", &arguments, &reply)
	return &reply, err
}

// RoleAdmin - the administering role
func (c *Client) RoleAdmin(role string) (*roles.AdminReply, error) {
	var reply roles.AdminReply
	err := c.call("Roles.Admin", &roles.AdminArguments{Role: role}, &reply)
	return &reply, err
}

// Version - emits a Version event
func (c *Client) Version() (*upgrade.VersionReply, error) {
	var reply upgrade.VersionReply
	err := c.call("Upgrade.Version", &upgrade.VersionArguments{}, &reply)
	return &reply, err
}

// UpgradeTo - replace the logic module
func (c *Client) UpgradeTo(module string) (*host.Reply, error) {
	arguments := upgrade.ToArguments{
		Module: module,
	}
	var reply host.Reply
	err := c.call("Upgrade.To", &arguments, &reply)
	return &reply, err
}

// Implementation - current module name
func (c *Client) Implementation() (string, error) {
	var reply upgrade.ImplementationReply
	err := c.call("Upgrade.Implementation", &upgrade.ImplementationArguments{}, &reply)
	return reply.Implementation, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eqtoken - the role gated multi-asset token logic modules
package eqtoken

import (
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/ledger"
	"github.com/bitmark-inc/eqledgerd/metadata"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/upgrade"
)

// logic module names
const (
	Name   = "EqToken"
	NameV2 = "EqTokenV2"
)

// Token - one version of the token logic
//
// holds no state of its own, everything lives in the region
type Token struct {
	name     string
	log      *logger.L
	roles    *roles.Registry
	ledger   *ledger.Ledger
	upgrade  *upgrade.Controller
	metadata *metadata.Resource
}

// Modules - every version that can be deployed or upgraded to
func Modules() host.Modules {
	return host.Modules{
		Name:   New,
		NameV2: NewV2,
	}
}

// New - the first version bound to a region
func New(region *storage.Region) host.Logic {
	return bind(Name, region)
}

// NewV2 - the second version, same storage binding
func NewV2(region *storage.Region) host.Logic {
	return bind(NameV2, region)
}

func bind(name string, region *storage.Region) *Token {
	pools := &region.Pools
	registry := roles.New(roles.Handles{
		Members: pools.RoleMembers,
		Admins:  pools.RoleAdmin,
	})
	return &Token{
		name:  name,
		log:   logger.New(name),
		roles: registry,
		ledger: ledger.New(ledger.Handles{
			Existence:   pools.TokenExistence,
			Balances:    pools.Balances,
			TotalSupply: pools.TotalSupply,
			Operators:   pools.Operators,
		}, registry),
		upgrade: upgrade.New(upgrade.Handles{
			Initialised: pools.Initialised,
			Version:     pools.Version,
		}, registry),
		metadata: metadata.New(pools.MetadataURI),
	}
}

// Name - logic module name
func (t *Token) Name() string {
	return t.name
}

// Initialise - one time setup of the template and the three roles
func (t *Token) Initialise(ctx *call.Context, uri string, minter common.Address, burner common.Address, admin common.Address) error {
	if account.Zero == minter || account.Zero == burner || account.Zero == admin {
		return fault.ErrZeroAddress
	}
	if err := t.upgrade.Initialise(ctx); nil != err {
		return err
	}

	t.metadata.SetURI(uri)
	t.roles.Setup(ctx, roles.DefaultAdminRole, admin)
	t.roles.Setup(ctx, roles.MinterRole, minter)
	t.roles.Setup(ctx, roles.BurnerRole, burner)

	t.log.Infof("initialised: admin: %s  minter: %s  burner: %s", admin, minter, burner)
	return nil
}

// Version - current version number
func (t *Token) Version() uint64 {
	return t.upgrade.Version()
}

// GetVersion - current version number, observable as an event
func (t *Token) GetVersion(ctx *call.Context) uint64 {
	return t.upgrade.GetVersion(ctx)
}

// AuthoriseUpgrade - a default admin may replace this module
func (t *Token) AuthoriseUpgrade(caller common.Address) bool {
	return t.upgrade.AuthoriseUpgrade(caller)
}

// Upgraded - run once on the replacement module
func (t *Token) Upgraded(ctx *call.Context) error {
	v, err := t.upgrade.BumpVersion(ctx)
	if nil != err {
		return err
	}
	t.log.Infof("upgraded by: %s  version: %d", ctx.Caller, v)
	return nil
}

// GenerateID - derive and register an id, open to any caller
func (t *Token) GenerateID(ctx *call.Context, percents []common.Hash, shareIds []common.Hash, originator common.Address) common.Hash {
	id := t.ledger.Generate(percents, shareIds, originator)
	t.log.Debugf("generate: %s  by: %s", id, ctx.Caller)
	return id
}

// Mint - see ledger
func (t *Token) Mint(ctx *call.Context, to common.Address, id common.Hash, amount common.Hash, data []byte) error {
	return t.ledger.Mint(ctx, to, id, amount, data)
}

// MintBatch - see ledger
func (t *Token) MintBatch(ctx *call.Context, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error {
	return t.ledger.MintBatch(ctx, to, ids, amounts, data)
}

// Burn - see ledger
func (t *Token) Burn(ctx *call.Context, from common.Address, id common.Hash, amount common.Hash) error {
	return t.ledger.Burn(ctx, from, id, amount)
}

// BurnBatch - see ledger
func (t *Token) BurnBatch(ctx *call.Context, from common.Address, ids []common.Hash, amounts []common.Hash) error {
	return t.ledger.BurnBatch(ctx, from, ids, amounts)
}

// SafeTransferFrom - see ledger
func (t *Token) SafeTransferFrom(ctx *call.Context, from common.Address, to common.Address, id common.Hash, amount common.Hash, data []byte) error {
	return t.ledger.SafeTransferFrom(ctx, from, to, id, amount, data)
}

// SafeBatchTransferFrom - see ledger
func (t *Token) SafeBatchTransferFrom(ctx *call.Context, from common.Address, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error {
	return t.ledger.SafeBatchTransferFrom(ctx, from, to, ids, amounts, data)
}

// SetApprovalForAll - see ledger
func (t *Token) SetApprovalForAll(ctx *call.Context, operator common.Address, approved bool) error {
	return t.ledger.SetApprovalForAll(ctx, operator, approved)
}

// IsApprovedForAll - see ledger
func (t *Token) IsApprovedForAll(owner common.Address, operator common.Address) bool {
	return t.ledger.IsApprovedForAll(owner, operator)
}

// BalanceOf - see ledger
func (t *Token) BalanceOf(a common.Address, id common.Hash) common.Hash {
	return t.ledger.BalanceOf(a, id)
}

// BalanceOfBatch - see ledger
func (t *Token) BalanceOfBatch(accounts []common.Address, ids []common.Hash) ([]common.Hash, error) {
	return t.ledger.BalanceOfBatch(accounts, ids)
}

// TotalSupply - see ledger
func (t *Token) TotalSupply(id common.Hash) common.Hash {
	return t.ledger.TotalSupply(id)
}

// Exists - see ledger
func (t *Token) Exists(id common.Hash) bool {
	return t.ledger.Exists(id)
}

// URI - shared template
func (t *Token) URI(id common.Hash) string {
	return t.metadata.URI(id)
}

// HasRole - see roles
func (t *Token) HasRole(role common.Hash, a common.Address) bool {
	return t.roles.HasRole(role, a)
}

// GetRoleAdmin - see roles
func (t *Token) GetRoleAdmin(role common.Hash) common.Hash {
	return t.roles.GetRoleAdmin(role)
}

// GrantRole - see roles
func (t *Token) GrantRole(ctx *call.Context, role common.Hash, a common.Address) error {
	return t.roles.GrantRole(ctx, role, a)
}

// RevokeRole - see roles
func (t *Token) RevokeRole(ctx *call.Context, role common.Hash, a common.Address) error {
	return t.roles.RevokeRole(ctx, role, a)
}

// RenounceRole - see roles
func (t *Token) RenounceRole(ctx *call.Context, role common.Hash, a common.Address) error {
	return t.roles.RenounceRole(ctx, role, a)
}

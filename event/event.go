// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - observable results of ledger calls
//
// Events are collected in a Log while a call runs and are released
// only if the call commits.  A rejected call produces no events.
//
//	TransferSingle    operator, from, to, id, value
//	TransferBatch     operator, from, to, ids, values
//	ApprovalForAll    owner, operator, approved
//	RoleGranted       role, account, sender
//	RoleRevoked       role, account, sender
//	RoleAdminChanged  role, previousAdminRole, newAdminRole
//	Initialized       version
//	Upgraded          implementation
//	Version           value
package event

import (
	"github.com/ethereum/go-ethereum/common"
)

// Event - any observable event
type Event interface {
	Name() string
}

// TransferSingle - mint, burn or transfer of one token id
//
// From is the zero account for a mint, To is the zero account for a burn
type TransferSingle struct {
	Operator common.Address `json:"operator"`
	From     common.Address `json:"from"`
	To       common.Address `json:"to"`
	Id       common.Hash    `json:"id"`
	Value    common.Hash    `json:"value"`
}

// TransferBatch - mint, burn or transfer of several token ids
type TransferBatch struct {
	Operator common.Address `json:"operator"`
	From     common.Address `json:"from"`
	To       common.Address `json:"to"`
	Ids      []common.Hash  `json:"ids"`
	Values   []common.Hash  `json:"values"`
}

// ApprovalForAll - operator approval changed
type ApprovalForAll struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

// RoleGranted - account was added to role by sender
type RoleGranted struct {
	Role    common.Hash    `json:"role"`
	Account common.Address `json:"account"`
	Sender  common.Address `json:"sender"`
}

// RoleRevoked - account was removed from role by sender
type RoleRevoked struct {
	Role    common.Hash    `json:"role"`
	Account common.Address `json:"account"`
	Sender  common.Address `json:"sender"`
}

// RoleAdminChanged - the admin role of a role was replaced
type RoleAdminChanged struct {
	Role              common.Hash `json:"role"`
	PreviousAdminRole common.Hash `json:"previousAdminRole"`
	NewAdminRole      common.Hash `json:"newAdminRole"`
}

// Initialized - one time setup completed
type Initialized struct {
	Version uint64 `json:"version"`
}

// Upgraded - a new logic module is bound to the region
type Upgraded struct {
	Implementation string `json:"implementation"`
}

// Version - the current version counter
type Version struct {
	Value uint64 `json:"value"`
}

func (TransferSingle) Name() string   { return "TransferSingle" }
func (TransferBatch) Name() string    { return "TransferBatch" }
func (ApprovalForAll) Name() string   { return "ApprovalForAll" }
func (RoleGranted) Name() string      { return "RoleGranted" }
func (RoleRevoked) Name() string      { return "RoleRevoked" }
func (RoleAdminChanged) Name() string { return "RoleAdminChanged" }
func (Initialized) Name() string      { return "Initialized" }
func (Upgraded) Name() string         { return "Upgraded" }
func (Version) Name() string          { return "Version" }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/storage"
)

// Ledger - balance entry points
type Ledger interface {
	GenerateID(ctx *call.Context, percents []common.Hash, shareIds []common.Hash, originator common.Address) common.Hash
	Mint(ctx *call.Context, to common.Address, id common.Hash, amount common.Hash, data []byte) error
	MintBatch(ctx *call.Context, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error
	Burn(ctx *call.Context, from common.Address, id common.Hash, amount common.Hash) error
	BurnBatch(ctx *call.Context, from common.Address, ids []common.Hash, amounts []common.Hash) error
	SafeTransferFrom(ctx *call.Context, from common.Address, to common.Address, id common.Hash, amount common.Hash, data []byte) error
	SafeBatchTransferFrom(ctx *call.Context, from common.Address, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error
	SetApprovalForAll(ctx *call.Context, operator common.Address, approved bool) error
	IsApprovedForAll(owner common.Address, operator common.Address) bool
	BalanceOf(a common.Address, id common.Hash) common.Hash
	BalanceOfBatch(accounts []common.Address, ids []common.Hash) ([]common.Hash, error)
	TotalSupply(id common.Hash) common.Hash
	Exists(id common.Hash) bool
	URI(id common.Hash) string
}

// Roles - role membership entry points
type Roles interface {
	HasRole(role common.Hash, a common.Address) bool
	GetRoleAdmin(role common.Hash) common.Hash
	GrantRole(ctx *call.Context, role common.Hash, a common.Address) error
	RevokeRole(ctx *call.Context, role common.Hash, a common.Address) error
	RenounceRole(ctx *call.Context, role common.Hash, a common.Address) error
}

// Logic - a swappable logic module bound to the storage region
//
// AuthoriseUpgrade is asked of the current module before it is
// replaced and Upgraded is run on its replacement, both inside the
// upgrade call
type Logic interface {
	Ledger
	Roles

	Name() string
	Initialise(ctx *call.Context, uri string, minter common.Address, burner common.Address, admin common.Address) error
	Version() uint64
	GetVersion(ctx *call.Context) uint64
	AuthoriseUpgrade(caller common.Address) bool
	Upgraded(ctx *call.Context) error
}

// Constructor - bind a logic module to a storage region
type Constructor func(region *storage.Region) Logic

// Modules - the logic modules that can be deployed, by name
type Modules map[string]Constructor

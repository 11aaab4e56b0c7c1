// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package roles - capability role membership
//
// Every role has an admin role; only members of the admin role may
// grant or revoke it.  The default admin role is its own admin.
package roles

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/word"
)

// well known role names
const (
	DefaultAdminRoleName = "DEFAULT_ADMIN_ROLE"
	MinterRoleName       = "MINTER_ROLE"
	BurnerRoleName       = "BURNER_ROLE"
)

// role identifiers
var (
	DefaultAdminRole = word.Zero
	MinterRole       = FromName(MinterRoleName)
	BurnerRole       = FromName(BurnerRoleName)
)

// membership flag
var member = []byte{0x01}

// FromName - role identifier of a human readable name
func FromName(name string) common.Hash {
	if DefaultAdminRoleName == name {
		return DefaultAdminRole
	}
	return crypto.Keccak256Hash([]byte(name))
}

// Name - readable form of the well known roles, hex otherwise
func Name(role common.Hash) string {
	switch role {
	case DefaultAdminRole:
		return DefaultAdminRoleName
	case MinterRole:
		return MinterRoleName
	case BurnerRole:
		return BurnerRoleName
	default:
		return role.Hex()
	}
}

// Handles - storage fields owned by the registry
type Handles struct {
	Members storage.Handle
	Admins  storage.Handle
}

// Registry - role membership sets
type Registry struct {
	members storage.Handle
	admins  storage.Handle
}

// New - bind a registry to its storage fields
func New(handles Handles) *Registry {
	return &Registry{
		members: handles.Members,
		admins:  handles.Admins,
	}
}

func memberKey(role common.Hash, a common.Address) []byte {
	return append(append(make([]byte, 0, common.HashLength+common.AddressLength), role[:]...), a[:]...)
}

// HasRole - membership test, never fails
func (r *Registry) HasRole(role common.Hash, a common.Address) bool {
	return r.members.Has(memberKey(role, a))
}

// GetRoleAdmin - the role whose members administer role
func (r *Registry) GetRoleAdmin(role common.Hash) common.Hash {
	admin, err := word.FromBytes(r.admins.Get(role[:]))
	if nil != err {
		return DefaultAdminRole
	}
	return admin
}

// Authorise - capability gate: nil if the account holds the role
func (r *Registry) Authorise(role common.Hash, a common.Address) error {
	if !r.HasRole(role, a) {
		return fault.ErrUnauthorised
	}
	return nil
}

// GrantRole - caller must hold the admin role of role
//
// granting a held role succeeds without an event
func (r *Registry) GrantRole(ctx *call.Context, role common.Hash, a common.Address) error {
	if err := r.Authorise(r.GetRoleAdmin(role), ctx.Caller); nil != err {
		return err
	}
	r.grant(ctx, role, a)
	return nil
}

// RevokeRole - caller must hold the admin role of role
//
// revoking an unheld role succeeds without an event
func (r *Registry) RevokeRole(ctx *call.Context, role common.Hash, a common.Address) error {
	if err := r.Authorise(r.GetRoleAdmin(role), ctx.Caller); nil != err {
		return err
	}
	r.revoke(ctx, role, a)
	return nil
}

// RenounceRole - an account giving up one of its own roles
func (r *Registry) RenounceRole(ctx *call.Context, role common.Hash, a common.Address) error {
	if a != ctx.Caller {
		return fault.ErrCanOnlyRenounceForSelf
	}
	r.revoke(ctx, role, a)
	return nil
}

// Setup - unchecked grant for one time initialisation
func (r *Registry) Setup(ctx *call.Context, role common.Hash, a common.Address) {
	r.grant(ctx, role, a)
}

// SetRoleAdmin - unchecked change of the admin role of role
func (r *Registry) SetRoleAdmin(ctx *call.Context, role common.Hash, admin common.Hash) {
	previous := r.GetRoleAdmin(role)
	if previous == admin {
		return
	}
	if DefaultAdminRole == admin {
		r.admins.Delete(role[:])
	} else {
		r.admins.Put(role[:], admin[:])
	}
	ctx.Emit(event.RoleAdminChanged{
		Role:              role,
		PreviousAdminRole: previous,
		NewAdminRole:      admin,
	})
}

func (r *Registry) grant(ctx *call.Context, role common.Hash, a common.Address) {
	if r.HasRole(role, a) {
		return
	}
	r.members.Put(memberKey(role, a), member)
	ctx.Emit(event.RoleGranted{
		Role:    role,
		Account: a,
		Sender:  ctx.Caller,
	})
}

func (r *Registry) revoke(ctx *call.Context, role common.Hash, a common.Address) {
	if !r.HasRole(role, a) {
		return
	}
	r.members.Delete(memberKey(role, a))
	ctx.Emit(event.RoleRevoked{
		Role:    role,
		Account: a,
		Sender:  ctx.Caller,
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package roles_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/word"
)

func TestRoleIdentifiers(t *testing.T) {
	assert.Equal(t, word.Zero, roles.DefaultAdminRole, "default admin role is not zero")
	assert.Equal(t, crypto.Keccak256Hash([]byte("MINTER_ROLE")), roles.MinterRole, "minter role")
	assert.Equal(t, crypto.Keccak256Hash([]byte("BURNER_ROLE")), roles.BurnerRole, "burner role")
	assert.Equal(t, roles.DefaultAdminRole, roles.FromName("DEFAULT_ADMIN_ROLE"), "default admin name")

	assert.Equal(t, "MINTER_ROLE", roles.Name(roles.MinterRole))
	assert.Equal(t, "DEFAULT_ADMIN_ROLE", roles.Name(word.Zero))
	assert.Equal(t, word.FromUint64(7).Hex(), roles.Name(word.FromUint64(7)))
}

func TestGrantByAdmin(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	assert.False(t, r.HasRole(roles.MinterRole, minter), "role held before grant")

	ctx, log := contextFor(admin)
	err := r.GrantRole(ctx, roles.MinterRole, minter)
	assert.Nil(t, err, "grant error")
	assert.True(t, r.HasRole(roles.MinterRole, minter), "role not held after grant")
	assert.Equal(t, []event.Event{
		event.RoleGranted{Role: roles.MinterRole, Account: minter, Sender: admin},
	}, log.Events(), "events")

	// second grant is a silent success
	log.Reset()
	err = r.GrantRole(ctx, roles.MinterRole, minter)
	assert.Nil(t, err, "repeat grant error")
	assert.Empty(t, log.Events(), "repeat grant emitted event")
}

func TestGrantByNonAdmin(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	ctx, log := contextFor(other)
	err := r.GrantRole(ctx, roles.MinterRole, other)
	assert.Equal(t, fault.ErrUnauthorised, err, "non admin grant")
	assert.False(t, r.HasRole(roles.MinterRole, other), "role granted by non admin")
	assert.Empty(t, log.Events(), "failed grant emitted event")
}

func TestRevoke(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	ctx, log := contextFor(admin)
	r.Setup(ctx, roles.BurnerRole, burner)
	log.Reset()

	err := r.RevokeRole(ctx, roles.BurnerRole, burner)
	assert.Nil(t, err, "revoke error")
	assert.False(t, r.HasRole(roles.BurnerRole, burner), "role held after revoke")
	assert.Equal(t, []event.Event{
		event.RoleRevoked{Role: roles.BurnerRole, Account: burner, Sender: admin},
	}, log.Events(), "events")

	log.Reset()
	err = r.RevokeRole(ctx, roles.BurnerRole, burner)
	assert.Nil(t, err, "repeat revoke error")
	assert.Empty(t, log.Events(), "repeat revoke emitted event")

	ctx, _ = contextFor(burner)
	err = r.RevokeRole(ctx, roles.DefaultAdminRole, admin)
	assert.Equal(t, fault.ErrUnauthorised, err, "non admin revoke")
	assert.True(t, r.HasRole(roles.DefaultAdminRole, admin), "admin lost role")
}

func TestRenounce(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	ctx, _ := contextFor(admin)
	r.Setup(ctx, roles.MinterRole, minter)

	ctx, _ = contextFor(other)
	err := r.RenounceRole(ctx, roles.MinterRole, minter)
	assert.Equal(t, fault.ErrCanOnlyRenounceForSelf, err, "renounce for another")
	assert.True(t, r.HasRole(roles.MinterRole, minter), "role lost")

	ctx, log := contextFor(minter)
	err = r.RenounceRole(ctx, roles.MinterRole, minter)
	assert.Nil(t, err, "renounce error")
	assert.False(t, r.HasRole(roles.MinterRole, minter), "role held after renounce")
	assert.Len(t, log.Events(), 1, "events")
}

func TestRoleAdmin(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	assert.Equal(t, roles.DefaultAdminRole, r.GetRoleAdmin(roles.MinterRole), "initial admin")

	ctx, log := contextFor(admin)
	r.SetRoleAdmin(ctx, roles.MinterRole, roles.BurnerRole)
	assert.Equal(t, roles.BurnerRole, r.GetRoleAdmin(roles.MinterRole), "changed admin")
	assert.Equal(t, []event.Event{
		event.RoleAdminChanged{
			Role:              roles.MinterRole,
			PreviousAdminRole: roles.DefaultAdminRole,
			NewAdminRole:      roles.BurnerRole,
		},
	}, log.Events(), "events")

	// default admin no longer administers minters
	err := r.GrantRole(ctx, roles.MinterRole, minter)
	assert.Equal(t, fault.ErrUnauthorised, err, "grant by former admin")

	r.Setup(ctx, roles.BurnerRole, burner)
	ctx, _ = contextFor(burner)
	err = r.GrantRole(ctx, roles.MinterRole, minter)
	assert.Nil(t, err, "grant by new admin")
	assert.True(t, r.HasRole(roles.MinterRole, minter), "minter role")
}

func TestAuthorise(t *testing.T) {
	region, r := setupRegistry(t)
	defer region.Close()

	assert.Nil(t, r.Authorise(roles.DefaultAdminRole, admin), "admin")
	assert.Equal(t, fault.ErrUnauthorised, r.Authorise(roles.MinterRole, admin), "admin is not minter")
}

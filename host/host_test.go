// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"encoding/binary"
	"encoding/json"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/eqtoken"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/messagebus"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/word"
)

const uri = "https://api.example.com/metadata/{id}.json"

var (
	minterM = common.Address{0x4d}
	burnerB = common.Address{0x42}
	adminA  = common.Address{0x41}
	user1   = common.Address{0x75, 0x01}
	other   = common.Address{0x99}
)

func initialise(logic host.Logic, ctx *call.Context) error {
	return logic.Initialise(ctx, uri, minterM, burnerB, adminA)
}

func setupHost(t *testing.T) (*storage.Region, *host.Host) {
	region, err := storage.OpenMemory()
	require.Nil(t, err, "storage open error")
	h, err := host.New(region, eqtoken.Modules())
	require.Nil(t, err, "host error")
	return region, h
}

func setupDeployed(t *testing.T) (*storage.Region, *host.Host) {
	region, h := setupHost(t)
	_, err := h.Deploy(adminA, eqtoken.Name, initialise)
	require.Nil(t, err, "deploy error")
	return region, h
}

func names(events []event.Event) []string {
	n := make([]string, len(events))
	for i, e := range events {
		n[i] = e.Name()
	}
	return n
}

func TestDeploy(t *testing.T) {
	region, h := setupHost(t)
	defer region.Close()

	assert.Equal(t, "", h.Implementation(), "implementation before deploy")
	_, err := h.Execute(adminA, func(logic host.Logic, ctx *call.Context) error { return nil })
	assert.Equal(t, fault.ErrNotDeployed, err, "call before deploy")

	_, err = h.Deploy(adminA, "NoSuchModule", initialise)
	assert.Equal(t, fault.ErrUnknownLogicModule, err, "unknown module")

	receipt, err := h.Deploy(adminA, eqtoken.Name, initialise)
	require.Nil(t, err, "deploy error")
	assert.Equal(t, eqtoken.Name, h.Implementation(), "implementation")
	assert.Equal(t, uint64(1), receipt.Block.Number, "block number")
	assert.Equal(t, []string{"Upgraded", "Initialized", "RoleGranted", "RoleGranted", "RoleGranted"}, names(receipt.Events), "events")

	_, err = h.Deploy(adminA, eqtoken.Name, initialise)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second deploy")
	assert.Equal(t, uint64(1), h.Height(), "second deploy committed")

	// one time initialisation
	_, err = h.Execute(other, initialise)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "re-initialise")

	err = h.Query(other, func(logic host.Logic, ctx *call.Context) error {
		assert.True(t, logic.HasRole(roles.DefaultAdminRole, adminA), "admin role")
		assert.True(t, logic.HasRole(roles.MinterRole, minterM), "minter role")
		assert.True(t, logic.HasRole(roles.BurnerRole, burnerB), "burner role")
		assert.Equal(t, uri, logic.URI(word.FromUint64(1)), "uri")
		return nil
	})
	assert.Nil(t, err, "query error")
}

func TestRequiredCaller(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	_, err := h.Execute(account.Zero, func(logic host.Logic, ctx *call.Context) error { return nil })
	assert.Equal(t, fault.ErrRequiredCaller, err, "zero caller")
}

// the worked example: generate, mint, failed mint, version before and after upgrade
func TestScenario(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	id := word.Zero
	_, err := h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		id = logic.GenerateID(ctx,
			[]common.Hash{word.FromUint64(10), word.FromUint64(20)},
			[]common.Hash{word.FromUint64(1), word.FromUint64(2)},
			minterM,
		)
		return nil
	})
	require.Nil(t, err, "generate error")

	_, err = h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		return logic.Mint(ctx, user1, id, word.FromUint64(1000), []byte("0x"))
	})
	require.Nil(t, err, "mint error")

	_, err = h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		return logic.Mint(ctx, user1, word.FromUint64(99999), word.FromUint64(100), []byte("0x"))
	})
	require.NotNil(t, err, "mint of unknown id")
	assert.Equal(t, "this token is not existent", err.Error(), "reason")

	_ = h.Query(other, func(logic host.Logic, ctx *call.Context) error {
		assert.Equal(t, word.FromUint64(1000), logic.BalanceOf(user1, id), "balance")
		return nil
	})

	receipt, err := h.Execute(other, func(logic host.Logic, ctx *call.Context) error {
		logic.GetVersion(ctx)
		return nil
	})
	require.Nil(t, err, "get version error")
	assert.Equal(t, []event.Event{event.Version{Value: 1}}, receipt.Events, "version before upgrade")

	_, err = h.UpgradeTo(adminA, eqtoken.NameV2)
	require.Nil(t, err, "upgrade error")

	receipt, err = h.Execute(other, func(logic host.Logic, ctx *call.Context) error {
		logic.GetVersion(ctx)
		return nil
	})
	require.Nil(t, err, "get version error")
	assert.Equal(t, []event.Event{event.Version{Value: 2}}, receipt.Events, "version after upgrade")

	// balances survive the logic replacement
	_ = h.Query(other, func(logic host.Logic, ctx *call.Context) error {
		assert.Equal(t, eqtoken.NameV2, logic.Name(), "logic name")
		assert.Equal(t, word.FromUint64(1000), logic.BalanceOf(user1, id), "balance after upgrade")
		return nil
	})
}

func TestUpgradeAuthorisation(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	height := h.Height()
	_, err := h.UpgradeTo(other, eqtoken.Name)
	assert.Equal(t, fault.ErrUnauthorised, err, "upgrade by non admin")
	assert.Equal(t, height, h.Height(), "refused upgrade committed")
	assert.Equal(t, eqtoken.Name, h.Implementation(), "implementation changed")

	_ = h.Query(other, func(logic host.Logic, ctx *call.Context) error {
		assert.Equal(t, uint64(1), logic.Version(), "version changed by refused upgrade")
		return nil
	})

	_, err = h.UpgradeTo(adminA, "NoSuchModule")
	assert.Equal(t, fault.ErrUnknownLogicModule, err, "unknown module")

	// replacing with the same module still counts as an upgrade
	receipt, err := h.UpgradeTo(adminA, eqtoken.Name)
	require.Nil(t, err, "upgrade error")
	assert.Equal(t, []event.Event{event.Version{Value: 2}}, receipt.Events, "same module upgrade")

	receipt, err = h.UpgradeTo(adminA, eqtoken.NameV2)
	require.Nil(t, err, "upgrade error")
	assert.Equal(t, []event.Event{
		event.Upgraded{Implementation: eqtoken.NameV2},
		event.Version{Value: 3},
	}, receipt.Events, "upgrade events")
}

// a failed call leaves no trace
func TestAtomicity(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	id := word.Zero
	_, err := h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		id = logic.GenerateID(ctx, nil, nil, minterM)
		return logic.Mint(ctx, user1, id, word.FromUint64(5), nil)
	})
	require.Nil(t, err, "mint error")

	queue := messagebus.Bus.Broadcast.Chan(0)
	defer messagebus.Bus.Broadcast.Release()

	height := h.Height()
	_, err = h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		if err := logic.Mint(ctx, user1, id, word.FromUint64(10), nil); nil != err {
			return err
		}
		return logic.Mint(ctx, user1, word.FromUint64(7), word.FromUint64(1), nil)
	})
	assert.Equal(t, fault.ErrNonexistentToken, err, "second mint")
	assert.Equal(t, height, h.Height(), "failed call committed")

	_ = h.Query(other, func(logic host.Logic, ctx *call.Context) error {
		assert.Equal(t, word.FromUint64(5), logic.BalanceOf(user1, id), "first mint of failed call kept")
		assert.Equal(t, word.FromUint64(5), logic.TotalSupply(id), "supply")
		return nil
	})

	select {
	case m := <-queue:
		t.Errorf("failed call published: %q", m.Command)
	default:
	}

	// a committed call publishes its events in order
	receipt, err := h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
		return logic.Mint(ctx, user1, id, word.FromUint64(1), nil)
	})
	require.Nil(t, err, "mint error")
	m := <-queue
	assert.Equal(t, "TransferSingle", m.Command, "published event")
	require.Len(t, m.Parameters, 2, "published parameters")
	assert.Equal(t, receipt.Block.Number, binary.BigEndian.Uint64(m.Parameters[0]), "published block number")
	data, err := json.Marshal(receipt.Events[0])
	require.Nil(t, err, "marshal error")
	assert.Equal(t, data, m.Parameters[1], "published event data")
}

// height is only read between calls
func TestHeightWaitsForCall(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	height := h.Height()

	for _, fail := range []bool{false, true} {
		expected := height
		if !fail {
			expected += 1
		}

		seen := make(chan uint64, 1)
		_, err := h.Execute(minterM, func(logic host.Logic, ctx *call.Context) error {
			go func() {
				seen <- h.Height()
			}()
			select {
			case n := <-seen:
				t.Errorf("height: %d read during call", n)
			case <-time.After(50 * time.Millisecond):
			}
			if fail {
				return fault.ErrNonexistentToken
			}
			return nil
		})
		if fail {
			assert.Equal(t, fault.ErrNonexistentToken, err, "failed call")
		} else {
			require.Nil(t, err, "call error")
		}

		select {
		case n := <-seen:
			assert.Equal(t, expected, n, "height after call  fail: %t", fail)
		case <-time.After(time.Second):
			t.Fatalf("height not read after call  fail: %t", fail)
		}
		height = expected
	}
}

func TestRestore(t *testing.T) {
	region, h := setupDeployed(t)
	defer region.Close()

	_, err := h.UpgradeTo(adminA, eqtoken.NameV2)
	require.Nil(t, err, "upgrade error")

	restored, err := host.New(region, eqtoken.Modules())
	require.Nil(t, err, "restore error")
	assert.Equal(t, eqtoken.NameV2, restored.Implementation(), "restored implementation")
	assert.Equal(t, h.Height(), restored.Height(), "restored height")

	_, err = host.New(region, host.Modules{})
	assert.Equal(t, fault.ErrUnknownLogicModule, err, "missing module")
}

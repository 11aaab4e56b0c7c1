// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/ledger"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/word"
)

const (
	testingDirName = "testing"
)

var (
	admin  = common.Address{0xad}
	minter = common.Address{0x01}
	burner = common.Address{0x02}
	other  = common.Address{0x03}
	user1  = common.Address{0x11}
	user2  = common.Address{0x12}
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// a ledger in an open transaction with the minter and burner roles set up
func setupLedger(t *testing.T) (*storage.Region, *ledger.Ledger) {
	region, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	if _, err := region.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	r := roles.New(roles.Handles{
		Members: region.Pools.RoleMembers,
		Admins:  region.Pools.RoleAdmin,
	})
	ctx, _ := call.New(admin, call.Block{})
	r.Setup(ctx, roles.DefaultAdminRole, admin)
	r.Setup(ctx, roles.MinterRole, minter)
	r.Setup(ctx, roles.BurnerRole, burner)

	l := ledger.New(ledger.Handles{
		Existence:   region.Pools.TokenExistence,
		Balances:    region.Pools.Balances,
		TotalSupply: region.Pools.TotalSupply,
		Operators:   region.Pools.Operators,
	}, r)
	return region, l
}

// generate the identifier used by most tests
func generate(l *ledger.Ledger) common.Hash {
	return l.Generate(
		[]common.Hash{word.FromUint64(10), word.FromUint64(20)},
		[]common.Hash{word.FromUint64(1), word.FromUint64(2)},
		minter,
	)
}

func amount(n uint64) common.Hash {
	return word.FromUint64(n)
}

func contextFor(caller common.Address) (*call.Context, *event.Log) {
	return call.New(caller, call.Block{Number: 1})
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

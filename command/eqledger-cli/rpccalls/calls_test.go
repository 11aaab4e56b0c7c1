// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/ecdsa"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/fixtures"
	"github.com/bitmark-inc/eqledgerd/rpc/ledger"
	"github.com/bitmark-inc/eqledgerd/rpc/listeners"
	"github.com/bitmark-inc/eqledgerd/rpc/mocks"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/eqledgerd/rpc/roles"
	"github.com/bitmark-inc/eqledgerd/rpc/server"
	"github.com/bitmark-inc/eqledgerd/word"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func connect(e *mocks.MockExecutor, key *ecdsa.PrivateKey, handle *bytes.Buffer) (*Client, func()) {
	c := listeners.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", e, credential.NewVerifier(time.Minute), &c, ratelimit.NewGroup(1000, 100))

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := newClient(clientConn, key, nil != handle, handle)
	return client, client.Close
}

func TestLedgerCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	region, logic, err := fixtures.Deployed()
	require.Nil(t, err, "deployed fixture")
	defer region.Close()

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(fixtures.Run(logic)).AnyTimes()
	e.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(fixtures.Query(logic)).AnyTimes()

	verbose := &bytes.Buffer{}
	client, done := connect(e, fixtures.MinterKey, verbose)
	defer done()

	generated, err := client.GenerateID(&ledger.GenerateIDArguments{
		Percents:   []common.Hash{word.FromUint64(100)},
		ShareIds:   []common.Hash{word.FromUint64(9)},
		Originator: fixtures.Minter,
	})
	require.Nil(t, err, "generate id")
	id := generated.Id

	exists, err := client.Exists(id)
	assert.Nil(t, err, "exists")
	assert.True(t, exists, "id missing")

	_, err = client.Mint(&ledger.MintArguments{
		To:     fixtures.User,
		Id:     id,
		Amount: word.FromUint64(25),
	})
	assert.Nil(t, err, "mint")

	balance, err := client.Balance(fixtures.User, id)
	assert.Nil(t, err, "balance")
	assert.Equal(t, word.FromUint64(25), balance, "wrong balance")

	_, err = client.Burn(&ledger.BurnArguments{
		From:   fixtures.User,
		Id:     id,
		Amount: word.FromUint64(1),
	})
	require.NotNil(t, err, "burn by non burner")
	assert.Equal(t, fault.ErrUnauthorised.Error(), err.Error(), "burn by non burner")

	supply, err := client.TotalSupply(id)
	assert.Nil(t, err, "total supply")
	assert.Equal(t, word.FromUint64(25), supply, "wrong supply")

	balances, err := client.BalanceBatch([]common.Address{fixtures.User, fixtures.Admin}, []common.Hash{id, id})
	assert.Nil(t, err, "balance batch")
	assert.Equal(t, []common.Hash{word.FromUint64(25), word.Zero}, balances, "wrong balances")

	assert.Contains(t, verbose.String(), "Ledger.Mint Request", "verbose output")
}

func TestRoleCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	region, logic, err := fixtures.Deployed()
	require.Nil(t, err, "deployed fixture")
	defer region.Close()

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(fixtures.Run(logic)).AnyTimes()
	e.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(fixtures.Query(logic)).AnyTimes()

	client, done := connect(e, fixtures.AdminKey, nil)
	defer done()

	reply, err := client.RoleChange("Grant", &roles.MemberArguments{
		Role:    "BURNER_ROLE",
		Account: fixtures.User,
	})
	assert.Nil(t, err, "grant")
	assert.Equal(t, 1, len(reply.Events), "wrong event count")

	has, err := client.HasRole("BURNER_ROLE", fixtures.User)
	assert.Nil(t, err, "has role")
	assert.True(t, has.Member, "not a member")

	admin, err := client.RoleAdmin("BURNER_ROLE")
	assert.Nil(t, err, "role admin")
	assert.Equal(t, "DEFAULT_ADMIN_ROLE", admin.AdminName, "wrong admin")
}

func TestUnsignedClient(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client, done := connect(mocks.NewMockExecutor(ctl), nil, nil)
	defer done()

	_, err := client.Version()
	assert.Equal(t, fault.ErrRequiredCaller, err, "state change without key")
}

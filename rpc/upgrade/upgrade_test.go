// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/fixtures"
	"github.com/bitmark-inc/eqledgerd/rpc/mocks"
	"github.com/bitmark-inc/eqledgerd/rpc/upgrade"
)

func TestVersion(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	region, logic, err := fixtures.Deployed()
	require.Nil(t, err, "deployed fixture")
	defer region.Close()

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().Execute(fixtures.User, gomock.Any()).DoAndReturn(fixtures.Run(logic)).Times(1)

	u := upgrade.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 10), e, credential.NewVerifier(time.Minute))

	arguments := &upgrade.VersionArguments{}
	fixtures.Sign(fixtures.UserKey, "Upgrade.Version", arguments)

	var reply upgrade.VersionReply
	err = u.Version(arguments, &reply)
	assert.Nil(t, err, "wrong Version")
	assert.Equal(t, uint64(1), reply.Version, "wrong version")
	require.Equal(t, 1, len(reply.Events), "wrong event count")
	assert.Equal(t, event.Version{Value: 1}, reply.Events[0].Data, "wrong event")
}

func TestTo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	receipt := &host.Receipt{
		Block:  call.Block{Number: 9},
		Events: []event.Event{event.Upgraded{Implementation: "EqTokenV2"}, event.Version{Value: 2}},
	}

	e := mocks.NewMockExecutor(ctl)
	e.EXPECT().UpgradeTo(fixtures.Admin, "EqTokenV2").Return(receipt, nil).Times(1)
	e.EXPECT().UpgradeTo(fixtures.User, "EqTokenV2").Return(nil, fault.ErrUnauthorised).Times(1)
	e.EXPECT().Implementation().Return("EqTokenV2").Times(1)

	u := upgrade.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 10), e, credential.NewVerifier(time.Minute))

	byUser := &upgrade.ToArguments{Module: "EqTokenV2"}
	fixtures.Sign(fixtures.UserKey, "Upgrade.To", byUser)

	var reply host.Reply
	err := u.To(byUser, &reply)
	assert.Equal(t, fault.ErrUnauthorised, err, "upgrade by non admin")

	// unsigned requests never reach the executor
	err = u.To(&upgrade.ToArguments{Module: "EqTokenV2"}, &reply)
	assert.Equal(t, fault.ErrRequiredCaller, err, "upgrade without caller")

	byAdmin := &upgrade.ToArguments{Module: "EqTokenV2"}
	fixtures.Sign(fixtures.AdminKey, "Upgrade.To", byAdmin)

	err = u.To(byAdmin, &reply)
	assert.Nil(t, err, "wrong To")
	assert.Equal(t, uint64(9), reply.Block.Number, "wrong block")
	require.Equal(t, 2, len(reply.Events), "wrong event count")
	assert.Equal(t, "Upgraded", reply.Events[0].Name, "wrong first event")
	assert.Equal(t, "Version", reply.Events[1].Name, "wrong second event")

	var implementation upgrade.ImplementationReply
	err = u.Implementation(&upgrade.ImplementationArguments{}, &implementation)
	assert.Nil(t, err, "wrong Implementation")
	assert.Equal(t, "EqTokenV2", implementation.Implementation, "wrong implementation")
}

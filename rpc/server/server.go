// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/ledger"
	"github.com/bitmark-inc/eqledgerd/rpc/listeners"
	"github.com/bitmark-inc/eqledgerd/rpc/node"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/eqledgerd/rpc/roles"
	"github.com/bitmark-inc/eqledgerd/rpc/upgrade"
)

// Create - an RPC server with every service registered, each service
// has its own limiter from the group
//
// state changing calls are accepted only with a credential that the
// verifier authenticates
func Create(log *logger.L, version string, executor host.Executor, verifier *credential.Verifier, rpcCount *listeners.Counter, group *ratelimit.Group) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, group.NewLimiter(), executor, verifier))
	_ = server.Register(roles.New(log, group.NewLimiter(), executor, verifier))
	_ = server.Register(upgrade.New(log, group.NewLimiter(), executor, verifier))
	_ = server.Register(node.New(log, group.NewLimiter(), executor, start, version, rpcCount))

	return server
}

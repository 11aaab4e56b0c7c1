// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/listeners"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Executor host.Executor
	counter  *listeners.Counter
}

// New - node information service
func New(log *logger.L, limiter *rate.Limiter, executor host.Executor, start time.Time, version string, counter *listeners.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  limiter,
		Start:    start,
		Version:  version,
		Executor: executor,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Implementation string `json:"implementation"`
	LogicVersion   uint64 `json:"logicVersion"`
	Height         uint64 `json:"height"`
	RPCs           uint64 `json:"rpcs"`
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
}

// Info - state of the deployed logic and of this daemon
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Implementation = node.Executor.Implementation()
	if "" != reply.Implementation {
		err := node.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
			reply.LogicVersion = logic.Version()
			return nil
		})
		if nil != err {
			return err
		}
	}
	reply.Height = node.Executor.Height()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
)

// Upgrade - type for the RPC
type Upgrade struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor host.Executor
	Verifier *credential.Verifier
}

// New - logic module version and replacement service
func New(log *logger.L, limiter *rate.Limiter, executor host.Executor, verifier *credential.Verifier) *Upgrade {
	return &Upgrade{
		Log:      log,
		Limiter:  limiter,
		Executor: executor,
		Verifier: verifier,
	}
}

// VersionArguments - version is an executed call so it has a caller
type VersionArguments struct {
	credential.Credential
}

// VersionReply - current version and the emitted event
type VersionReply struct {
	host.Reply
	Version uint64 `json:"version"`
}

// Version - emits the Version event
func (u *Upgrade) Version(arguments *VersionArguments, reply *VersionReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Infof("Upgrade.Version: %+v", arguments)

	caller, err := u.Verifier.Verify("Upgrade.Version", arguments)
	if nil != err {
		return err
	}

	version := uint64(0)
	receipt, err := u.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		version = logic.GetVersion(ctx)
		return nil
	})
	if nil != err {
		return err
	}
	reply.Reply = receipt.Reply()
	reply.Version = version
	return nil
}

// ToArguments - the registered module to switch to
type ToArguments struct {
	credential.Credential
	Module string `json:"module"`
}

// To - replace the logic module, caller must hold the default admin role
func (u *Upgrade) To(arguments *ToArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Warnf("Upgrade.To: %+v", arguments)

	caller, err := u.Verifier.Verify("Upgrade.To", arguments)
	if nil != err {
		return err
	}

	receipt, err := u.Executor.UpgradeTo(caller, arguments.Module)
	if nil != err {
		u.Log.Errorf("Upgrade.To: %s error: %s", arguments.Module, err)
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// ImplementationArguments - empty arguments
type ImplementationArguments struct{}

// ImplementationReply - name of the current logic module
type ImplementationReply struct {
	Implementation string `json:"implementation"`
}

// Implementation - empty until deployed
func (u *Upgrade) Implementation(_ *ImplementationArguments, reply *ImplementationReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	reply.Implementation = u.Executor.Implementation()
	return nil
}

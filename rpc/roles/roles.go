// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package roles

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	registry "github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/eqledgerd/word"
)

// Roles - type for the RPC
type Roles struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor host.Executor
	Verifier *credential.Verifier
}

// New - role membership service
func New(log *logger.L, limiter *rate.Limiter, executor host.Executor, verifier *credential.Verifier) *Roles {
	return &Roles{
		Log:      log,
		Limiter:  limiter,
		Executor: executor,
		Verifier: verifier,
	}
}

// Parse - a role is given by name or as 0x prefixed hex
func Parse(role string) (common.Hash, error) {
	if "" == role {
		return word.Zero, fault.ErrMissingParameters
	}
	if strings.HasPrefix(role, "0x") || strings.HasPrefix(role, "0X") {
		return word.Parse(role)
	}
	return registry.FromName(role), nil
}

// MemberArguments - a role and an account
type MemberArguments struct {
	credential.Credential
	Role    string         `json:"role"`
	Account common.Address `json:"account"`
}

type change func(logic host.Logic, ctx *call.Context, role common.Hash, a common.Address) error

func (r *Roles) change(name string, arguments *MemberArguments, reply *host.Reply, f change) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Roles.%s: %+v", name, arguments)

	caller, err := r.Verifier.Verify("Roles."+name, arguments)
	if nil != err {
		return err
	}

	role, err := Parse(arguments.Role)
	if nil != err {
		return err
	}
	receipt, err := r.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return f(logic, ctx, role, arguments.Account)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// Grant - caller must hold the admin role of the role
func (r *Roles) Grant(arguments *MemberArguments, reply *host.Reply) error {
	return r.change("Grant", arguments, reply, func(logic host.Logic, ctx *call.Context, role common.Hash, a common.Address) error {
		return logic.GrantRole(ctx, role, a)
	})
}

// Revoke - caller must hold the admin role of the role
func (r *Roles) Revoke(arguments *MemberArguments, reply *host.Reply) error {
	return r.change("Revoke", arguments, reply, func(logic host.Logic, ctx *call.Context, role common.Hash, a common.Address) error {
		return logic.RevokeRole(ctx, role, a)
	})
}

// Renounce - account must be the caller
func (r *Roles) Renounce(arguments *MemberArguments, reply *host.Reply) error {
	return r.change("Renounce", arguments, reply, func(logic host.Logic, ctx *call.Context, role common.Hash, a common.Address) error {
		return logic.RenounceRole(ctx, role, a)
	})
}

// HasArguments - membership query
type HasArguments struct {
	Role    string         `json:"role"`
	Account common.Address `json:"account"`
}

// HasReply - membership result
type HasReply struct {
	Role   common.Hash `json:"role"`
	Member bool        `json:"member"`
}

// Has - read only
func (r *Roles) Has(arguments *HasArguments, reply *HasReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	role, err := Parse(arguments.Role)
	if nil != err {
		return err
	}
	return r.Executor.Query(arguments.Account, func(logic host.Logic, _ *call.Context) error {
		reply.Role = role
		reply.Member = logic.HasRole(role, arguments.Account)
		return nil
	})
}

// AdminArguments - role to look up
type AdminArguments struct {
	Role string `json:"role"`
}

// AdminReply - the role that administers the role
type AdminReply struct {
	Role      common.Hash `json:"role"`
	Admin     common.Hash `json:"admin"`
	AdminName string      `json:"adminName"`
}

// Admin - read only
func (r *Roles) Admin(arguments *AdminArguments, reply *AdminReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	role, err := Parse(arguments.Role)
	if nil != err {
		return err
	}
	return r.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
		reply.Role = role
		reply.Admin = logic.GetRoleAdmin(role)
		reply.AdminName = registry.Name(reply.Admin)
		return nil
	})
}

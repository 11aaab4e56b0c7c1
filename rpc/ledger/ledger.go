// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/eqtoken"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/metadata"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/eqledgerd/word"
)

// limit for ids in one batch
const maximumBatch = 100

// Ledger - type for the RPC
type Ledger struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor host.Executor
	Verifier *credential.Verifier
}

// New - ledger service
func New(log *logger.L, limiter *rate.Limiter, executor host.Executor, verifier *credential.Verifier) *Ledger {
	return &Ledger{
		Log:      log,
		Limiter:  limiter,
		Executor: executor,
		Verifier: verifier,
	}
}

// only 0x prefixed hex is accepted, empty is no data
func decodeData(s string) ([]byte, error) {
	if "" == s {
		return nil, nil
	}
	if !strings.HasPrefix(s, "0x") {
		return nil, fault.ErrInvalidHexData
	}
	data, err := hex.DecodeString(s[2:])
	if nil != err {
		return nil, fault.ErrInvalidHexData
	}
	return data, nil
}

// ---

// InitialiseArguments - deploy a logic module and initialise it
type InitialiseArguments struct {
	credential.Credential
	Module string         `json:"module"`
	URI    string         `json:"uri"`
	Minter common.Address `json:"minter"`
	Burner common.Address `json:"burner"`
	Admin  common.Address `json:"admin"`
}

// Initialise - one time deployment, module defaults to the first version
func (ledger *Ledger) Initialise(arguments *InitialiseArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.Initialise: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.Initialise", arguments)
	if nil != err {
		return err
	}

	module := arguments.Module
	if "" == module {
		module = eqtoken.Name
	}

	receipt, err := ledger.Executor.Deploy(caller, module, func(logic host.Logic, ctx *call.Context) error {
		return logic.Initialise(ctx, arguments.URI, arguments.Minter, arguments.Burner, arguments.Admin)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// ---

// GenerateIDArguments - inputs of the id derivation
type GenerateIDArguments struct {
	credential.Credential
	Percents   []common.Hash  `json:"percents"`
	ShareIds   []common.Hash  `json:"shareIds"`
	Originator common.Address `json:"originator"`
}

// GenerateIDReply - the derived id
type GenerateIDReply struct {
	host.Reply
	Id common.Hash `json:"id"`
}

// GenerateID - derive and register an id
func (ledger *Ledger) GenerateID(arguments *GenerateIDArguments, reply *GenerateIDReply) error {
	if err := ratelimit.LimitN(ledger.Limiter, len(arguments.Percents)+len(arguments.ShareIds)+1, 2*maximumBatch+1); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.GenerateID: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.GenerateID", arguments)
	if nil != err {
		return err
	}

	id := word.Zero
	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		id = logic.GenerateID(ctx, arguments.Percents, arguments.ShareIds, arguments.Originator)
		return nil
	})
	if nil != err {
		return err
	}
	reply.Reply = receipt.Reply()
	reply.Id = id
	return nil
}

// ---

// MintArguments - create tokens
type MintArguments struct {
	credential.Credential
	To     common.Address `json:"to"`
	Id     common.Hash    `json:"id"`
	Amount common.Hash    `json:"amount"`
	Data   string         `json:"data"`
}

// Mint - caller must be a minter
func (ledger *Ledger) Mint(arguments *MintArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.Mint: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.Mint", arguments)
	if nil != err {
		return err
	}

	data, err := decodeData(arguments.Data)
	if nil != err {
		return err
	}
	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.Mint(ctx, arguments.To, arguments.Id, arguments.Amount, data)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// MintBatchArguments - create several tokens
type MintBatchArguments struct {
	credential.Credential
	To      common.Address `json:"to"`
	Ids     []common.Hash  `json:"ids"`
	Amounts []common.Hash  `json:"amounts"`
	Data    string         `json:"data"`
}

// MintBatch - all or nothing
func (ledger *Ledger) MintBatch(arguments *MintBatchArguments, reply *host.Reply) error {
	if err := ratelimit.LimitN(ledger.Limiter, len(arguments.Ids), maximumBatch); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.MintBatch: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.MintBatch", arguments)
	if nil != err {
		return err
	}

	data, err := decodeData(arguments.Data)
	if nil != err {
		return err
	}
	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.MintBatch(ctx, arguments.To, arguments.Ids, arguments.Amounts, data)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// ---

// BurnArguments - destroy tokens
type BurnArguments struct {
	credential.Credential
	From   common.Address `json:"from"`
	Id     common.Hash    `json:"id"`
	Amount common.Hash    `json:"amount"`
}

// Burn - caller must be a burner
func (ledger *Ledger) Burn(arguments *BurnArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.Burn: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.Burn", arguments)
	if nil != err {
		return err
	}

	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.Burn(ctx, arguments.From, arguments.Id, arguments.Amount)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// BurnBatchArguments - destroy several tokens
type BurnBatchArguments struct {
	credential.Credential
	From    common.Address `json:"from"`
	Ids     []common.Hash  `json:"ids"`
	Amounts []common.Hash  `json:"amounts"`
}

// BurnBatch - all or nothing
func (ledger *Ledger) BurnBatch(arguments *BurnBatchArguments, reply *host.Reply) error {
	if err := ratelimit.LimitN(ledger.Limiter, len(arguments.Ids), maximumBatch); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.BurnBatch: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.BurnBatch", arguments)
	if nil != err {
		return err
	}

	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.BurnBatch(ctx, arguments.From, arguments.Ids, arguments.Amounts)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// ---

// TransferArguments - move tokens
type TransferArguments struct {
	credential.Credential
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Id     common.Hash    `json:"id"`
	Amount common.Hash    `json:"amount"`
	Data   string         `json:"data"`
}

// Transfer - caller must be the owner or an approved operator
func (ledger *Ledger) Transfer(arguments *TransferArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.Transfer: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.Transfer", arguments)
	if nil != err {
		return err
	}

	data, err := decodeData(arguments.Data)
	if nil != err {
		return err
	}
	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.SafeTransferFrom(ctx, arguments.From, arguments.To, arguments.Id, arguments.Amount, data)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// TransferBatchArguments - move several tokens
type TransferBatchArguments struct {
	credential.Credential
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Ids     []common.Hash  `json:"ids"`
	Amounts []common.Hash  `json:"amounts"`
	Data    string         `json:"data"`
}

// TransferBatch - all or nothing
func (ledger *Ledger) TransferBatch(arguments *TransferBatchArguments, reply *host.Reply) error {
	if err := ratelimit.LimitN(ledger.Limiter, len(arguments.Ids), maximumBatch); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.TransferBatch: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.TransferBatch", arguments)
	if nil != err {
		return err
	}

	data, err := decodeData(arguments.Data)
	if nil != err {
		return err
	}
	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.SafeBatchTransferFrom(ctx, arguments.From, arguments.To, arguments.Ids, arguments.Amounts, data)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// ---

// SetApprovalForAllArguments - approve or disapprove an operator
type SetApprovalForAllArguments struct {
	credential.Credential
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

// SetApprovalForAll - for the caller's own tokens
func (ledger *Ledger) SetApprovalForAll(arguments *SetApprovalForAllArguments, reply *host.Reply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	ledger.Log.Infof("Ledger.SetApprovalForAll: %+v", arguments)

	caller, err := ledger.Verifier.Verify("Ledger.SetApprovalForAll", arguments)
	if nil != err {
		return err
	}

	receipt, err := ledger.Executor.Execute(caller, func(logic host.Logic, ctx *call.Context) error {
		return logic.SetApprovalForAll(ctx, arguments.Operator, arguments.Approved)
	})
	if nil != err {
		return err
	}
	*reply = receipt.Reply()
	return nil
}

// IsApprovedForAllArguments - owner and operator
type IsApprovedForAllArguments struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
}

// IsApprovedForAllReply - approval state
type IsApprovedForAllReply struct {
	Approved bool `json:"approved"`
}

// IsApprovedForAll - read only
func (ledger *Ledger) IsApprovedForAll(arguments *IsApprovedForAllArguments, reply *IsApprovedForAllReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}
	return ledger.Executor.Query(arguments.Owner, func(logic host.Logic, _ *call.Context) error {
		reply.Approved = logic.IsApprovedForAll(arguments.Owner, arguments.Operator)
		return nil
	})
}

// ---

// BalanceArguments - one account and id
type BalanceArguments struct {
	Account common.Address `json:"account"`
	Id      common.Hash    `json:"id"`
}

// BalanceReply - zero for unknown pairs
type BalanceReply struct {
	Balance common.Hash `json:"balance"`
}

// Balance - read only
func (ledger *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}
	return ledger.Executor.Query(arguments.Account, func(logic host.Logic, _ *call.Context) error {
		reply.Balance = logic.BalanceOf(arguments.Account, arguments.Id)
		return nil
	})
}

// BalanceBatchArguments - pairs from equal length lists
type BalanceBatchArguments struct {
	Accounts []common.Address `json:"accounts"`
	Ids      []common.Hash    `json:"ids"`
}

// BalanceBatchReply - one balance per pair
type BalanceBatchReply struct {
	Balances []common.Hash `json:"balances"`
}

// BalanceBatch - read only
func (ledger *Ledger) BalanceBatch(arguments *BalanceBatchArguments, reply *BalanceBatchReply) error {
	if err := ratelimit.LimitN(ledger.Limiter, len(arguments.Ids), maximumBatch); nil != err {
		return err
	}
	return ledger.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
		balances, err := logic.BalanceOfBatch(arguments.Accounts, arguments.Ids)
		reply.Balances = balances
		return err
	})
}

// ---

// IdArguments - a single id
type IdArguments struct {
	Id common.Hash `json:"id"`
}

// URIReply - the template and its expansion for the id
type URIReply struct {
	URI      string `json:"uri"`
	Expanded string `json:"expanded"`
}

// URI - read only
func (ledger *Ledger) URI(arguments *IdArguments, reply *URIReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}
	return ledger.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
		reply.URI = logic.URI(arguments.Id)
		reply.Expanded = metadata.Expand(reply.URI, arguments.Id)
		return nil
	})
}

// TotalSupplyReply - minted less burned
type TotalSupplyReply struct {
	TotalSupply common.Hash `json:"totalSupply"`
}

// TotalSupply - read only
func (ledger *Ledger) TotalSupply(arguments *IdArguments, reply *TotalSupplyReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}
	return ledger.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
		reply.TotalSupply = logic.TotalSupply(arguments.Id)
		return nil
	})
}

// ExistsReply - whether the id was generated
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - read only
func (ledger *Ledger) Exists(arguments *IdArguments, reply *ExistsReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}
	return ledger.Executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
		reply.Exists = logic.Exists(arguments.Id)
		return nil
	})
}

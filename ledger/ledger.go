// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - multi-asset balances gated by roles and token existence
package ledger

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/tokenid"
	"github.com/bitmark-inc/eqledgerd/word"
)

// existence and approval flag
var flag = []byte{0x01}

// Handles - storage fields owned by the ledger
type Handles struct {
	Existence   storage.Handle
	Balances    storage.Handle
	TotalSupply storage.Handle
	Operators   storage.Handle
}

// Ledger - balances of every (account, id) pair
type Ledger struct {
	roles       *roles.Registry
	existence   storage.Handle
	balances    storage.Handle
	totalSupply storage.Handle
	operators   storage.Handle
}

// New - bind a ledger to its storage fields
func New(handles Handles, registry *roles.Registry) *Ledger {
	return &Ledger{
		roles:       registry,
		existence:   handles.Existence,
		balances:    handles.Balances,
		totalSupply: handles.TotalSupply,
		operators:   handles.Operators,
	}
}

// BalanceKey - key of a balance: id ++ account
func BalanceKey(id common.Hash, a common.Address) []byte {
	return append(append(make([]byte, 0, common.HashLength+common.AddressLength), id[:]...), a[:]...)
}

func operatorKey(owner common.Address, operator common.Address) []byte {
	return append(append(make([]byte, 0, 2*common.AddressLength), owner[:]...), operator[:]...)
}

func read(h storage.Handle, key []byte) common.Hash {
	w, err := word.FromBytes(h.Get(key))
	if nil != err {
		return word.Zero
	}
	return w
}

func write(h storage.Handle, key []byte, w common.Hash) {
	if word.Zero == w {
		h.Delete(key)
		return
	}
	h.Put(key, w[:])
}

// Generate - derive an id and record its existence
//
// repeating identical inputs returns the same id and changes nothing
func (l *Ledger) Generate(percents []common.Hash, shareIds []common.Hash, originator common.Address) common.Hash {
	id := tokenid.Derive(percents, shareIds, originator)
	if !l.existence.Has(id[:]) {
		l.existence.Put(id[:], flag)
	}
	return id
}

// Exists - true once an id has been generated
func (l *Ledger) Exists(id common.Hash) bool {
	return l.existence.Has(id[:])
}

// BalanceOf - zero for unknown pairs, never fails
func (l *Ledger) BalanceOf(a common.Address, id common.Hash) common.Hash {
	return read(l.balances, BalanceKey(id, a))
}

// BalanceOfBatch - balances of pairs taken from two equal length lists
func (l *Ledger) BalanceOfBatch(accounts []common.Address, ids []common.Hash) ([]common.Hash, error) {
	if len(accounts) != len(ids) {
		return nil, fault.ErrLengthMismatch
	}
	balances := make([]common.Hash, len(ids))
	for i, id := range ids {
		balances[i] = l.BalanceOf(accounts[i], id)
	}
	return balances, nil
}

// TotalSupply - amount minted less amount burned
func (l *Ledger) TotalSupply(id common.Hash) common.Hash {
	return read(l.totalSupply, id[:])
}

// IsApprovedForAll - whether operator may move every token of owner
func (l *Ledger) IsApprovedForAll(owner common.Address, operator common.Address) bool {
	return l.operators.Has(operatorKey(owner, operator))
}

// SetApprovalForAll - caller approves or disapproves an operator
func (l *Ledger) SetApprovalForAll(ctx *call.Context, operator common.Address, approved bool) error {
	if ctx.Caller == operator {
		return fault.ErrSelfApproval
	}
	if account.Zero == operator {
		return fault.ErrZeroAddress
	}
	key := operatorKey(ctx.Caller, operator)
	if approved {
		l.operators.Put(key, flag)
	} else {
		l.operators.Delete(key)
	}
	ctx.Emit(event.ApprovalForAll{
		Owner:    ctx.Caller,
		Operator: operator,
		Approved: approved,
	})
	return nil
}

// Mint - create amount of id for an account
func (l *Ledger) Mint(ctx *call.Context, to common.Address, id common.Hash, amount common.Hash, data []byte) error {
	if err := l.roles.Authorise(roles.MinterRole, ctx.Caller); nil != err {
		return err
	}
	if account.Zero == to {
		return fault.ErrZeroAddress
	}

	s := newStage(l)
	if err := s.mint(to, id, amount); nil != err {
		return err
	}
	s.apply()

	ctx.Emit(event.TransferSingle{
		Operator: ctx.Caller,
		From:     account.Zero,
		To:       to,
		Id:       id,
		Value:    amount,
	})
	return nil
}

// MintBatch - all or nothing mint of several ids
func (l *Ledger) MintBatch(ctx *call.Context, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error {
	if err := l.roles.Authorise(roles.MinterRole, ctx.Caller); nil != err {
		return err
	}
	if account.Zero == to {
		return fault.ErrZeroAddress
	}
	if len(ids) != len(amounts) {
		return fault.ErrLengthMismatch
	}

	s := newStage(l)
	for i, id := range ids {
		if err := s.mint(to, id, amounts[i]); nil != err {
			return err
		}
	}
	s.apply()

	ctx.Emit(event.TransferBatch{
		Operator: ctx.Caller,
		From:     account.Zero,
		To:       to,
		Ids:      ids,
		Values:   amounts,
	})
	return nil
}

// Burn - destroy amount of id held by an account
func (l *Ledger) Burn(ctx *call.Context, from common.Address, id common.Hash, amount common.Hash) error {
	if err := l.roles.Authorise(roles.BurnerRole, ctx.Caller); nil != err {
		return err
	}
	if account.Zero == from {
		return fault.ErrZeroAddress
	}

	s := newStage(l)
	if err := s.burn(from, id, amount); nil != err {
		return err
	}
	s.apply()

	ctx.Emit(event.TransferSingle{
		Operator: ctx.Caller,
		From:     from,
		To:       account.Zero,
		Id:       id,
		Value:    amount,
	})
	return nil
}

// BurnBatch - all or nothing burn of several ids
func (l *Ledger) BurnBatch(ctx *call.Context, from common.Address, ids []common.Hash, amounts []common.Hash) error {
	if err := l.roles.Authorise(roles.BurnerRole, ctx.Caller); nil != err {
		return err
	}
	if account.Zero == from {
		return fault.ErrZeroAddress
	}
	if len(ids) != len(amounts) {
		return fault.ErrLengthMismatch
	}

	s := newStage(l)
	for i, id := range ids {
		if err := s.burn(from, id, amounts[i]); nil != err {
			return err
		}
	}
	s.apply()

	ctx.Emit(event.TransferBatch{
		Operator: ctx.Caller,
		From:     from,
		To:       account.Zero,
		Ids:      ids,
		Values:   amounts,
	})
	return nil
}

// SafeTransferFrom - move amount of id between accounts
//
// the caller must be the owner or an approved operator
func (l *Ledger) SafeTransferFrom(ctx *call.Context, from common.Address, to common.Address, id common.Hash, amount common.Hash, data []byte) error {
	if err := l.authoriseTransfer(ctx.Caller, from, to); nil != err {
		return err
	}

	s := newStage(l)
	if err := s.transfer(from, to, id, amount); nil != err {
		return err
	}
	s.apply()

	ctx.Emit(event.TransferSingle{
		Operator: ctx.Caller,
		From:     from,
		To:       to,
		Id:       id,
		Value:    amount,
	})
	return nil
}

// SafeBatchTransferFrom - all or nothing transfer of several ids
func (l *Ledger) SafeBatchTransferFrom(ctx *call.Context, from common.Address, to common.Address, ids []common.Hash, amounts []common.Hash, data []byte) error {
	if err := l.authoriseTransfer(ctx.Caller, from, to); nil != err {
		return err
	}
	if len(ids) != len(amounts) {
		return fault.ErrLengthMismatch
	}

	s := newStage(l)
	for i, id := range ids {
		if err := s.transfer(from, to, id, amounts[i]); nil != err {
			return err
		}
	}
	s.apply()

	ctx.Emit(event.TransferBatch{
		Operator: ctx.Caller,
		From:     from,
		To:       to,
		Ids:      ids,
		Values:   amounts,
	})
	return nil
}

func (l *Ledger) authoriseTransfer(caller common.Address, from common.Address, to common.Address) error {
	if caller != from && !l.IsApprovedForAll(from, caller) {
		return fault.ErrUnauthorised
	}
	if account.Zero == from || account.Zero == to {
		return fault.ErrZeroAddress
	}
	return nil
}

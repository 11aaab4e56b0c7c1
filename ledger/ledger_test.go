// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/tokenid"
	"github.com/bitmark-inc/eqledgerd/word"
)

func TestGenerate(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	expected := tokenid.DeriveUint64([]uint64{10, 20}, []uint64{1, 2}, minter)
	assert.False(t, l.Exists(expected), "exists before generate")

	id := generate(l)
	assert.Equal(t, expected, id, "derived id")
	assert.True(t, l.Exists(id), "not existent after generate")

	again := generate(l)
	assert.Equal(t, id, again, "repeat generate")
	assert.Equal(t, word.Zero, l.TotalSupply(id), "generate created supply")
}

func TestMintExistenceGate(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	ctx, log := contextFor(minter)
	err := l.Mint(ctx, user1, amount(99999), amount(100), []byte("0x"))
	assert.Equal(t, fault.ErrNonexistentToken, err, "mint of unknown id")
	assert.Equal(t, "this token is not existent", err.Error(), "reason")
	assert.Equal(t, word.Zero, l.BalanceOf(user1, amount(99999)), "balance of unknown id")
	assert.Empty(t, log.Events(), "failed mint emitted event")

	id := generate(l)
	err = l.Mint(ctx, user1, id, amount(1000), []byte("0x"))
	assert.Nil(t, err, "mint error")
	assert.Equal(t, amount(1000), l.BalanceOf(user1, id), "balance")
	assert.Equal(t, amount(1000), l.TotalSupply(id), "supply")
	assert.Equal(t, []event.Event{
		event.TransferSingle{Operator: minter, From: account.Zero, To: user1, Id: id, Value: amount(1000)},
	}, log.Events(), "events")
}

func TestMintRoleGate(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	id := generate(l)

	ctx, _ := contextFor(other)
	err := l.Mint(ctx, user1, id, amount(1), nil)
	assert.Equal(t, fault.ErrUnauthorised, err, "mint without minter role")

	// burner holds a different role
	ctx, _ = contextFor(burner)
	err = l.Mint(ctx, user1, id, amount(1), nil)
	assert.Equal(t, fault.ErrUnauthorised, err, "mint by burner")
	assert.Equal(t, word.Zero, l.BalanceOf(user1, id), "unauthorised mint changed balance")
}

func TestMintInvalid(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	id := generate(l)
	ctx, _ := contextFor(minter)

	assert.Equal(t, fault.ErrZeroAmount, l.Mint(ctx, user1, id, word.Zero, nil), "zero amount")
	assert.Equal(t, fault.ErrZeroAddress, l.Mint(ctx, account.Zero, id, amount(1), nil), "zero address")

	max := common.Hash{}
	for i := range max {
		max[i] = 0xff
	}
	assert.Nil(t, l.Mint(ctx, user1, id, max, nil), "mint of maximum")
	assert.Equal(t, fault.ErrValueOverflow, l.Mint(ctx, user2, id, amount(1), nil), "supply overflow")
	assert.Equal(t, word.Zero, l.BalanceOf(user2, id), "overflowing mint changed balance")
}

func TestBurn(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	id := generate(l)
	ctx, _ := contextFor(minter)
	assert.Nil(t, l.Mint(ctx, user1, id, amount(100), nil), "mint error")

	ctx, log := contextFor(burner)
	err := l.Burn(ctx, user1, id, amount(101))
	assert.Equal(t, fault.ErrInsufficientBalance, err, "burn more than held")
	assert.Equal(t, amount(100), l.BalanceOf(user1, id), "failed burn changed balance")
	assert.Empty(t, log.Events(), "failed burn emitted event")

	err = l.Burn(ctx, user1, id, amount(40))
	assert.Nil(t, err, "burn error")
	assert.Equal(t, amount(60), l.BalanceOf(user1, id), "balance")
	assert.Equal(t, amount(60), l.TotalSupply(id), "supply")
	assert.Equal(t, []event.Event{
		event.TransferSingle{Operator: burner, From: user1, To: account.Zero, Id: id, Value: amount(40)},
	}, log.Events(), "events")

	ctx, _ = contextFor(minter)
	assert.Equal(t, fault.ErrUnauthorised, l.Burn(ctx, user1, id, amount(1)), "burn by minter")
}

func TestTransfer(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	id := generate(l)
	ctx, _ := contextFor(minter)
	assert.Nil(t, l.Mint(ctx, user1, id, amount(100), nil), "mint error")

	// not the owner and not approved
	ctx, _ = contextFor(other)
	assert.Equal(t, fault.ErrUnauthorised, l.SafeTransferFrom(ctx, user1, user2, id, amount(1), nil), "unapproved")

	ctx, log := contextFor(user1)
	assert.Equal(t, fault.ErrInsufficientBalance, l.SafeTransferFrom(ctx, user1, user2, id, amount(101), nil), "overdraw")
	assert.Equal(t, fault.ErrZeroAddress, l.SafeTransferFrom(ctx, user1, account.Zero, id, amount(1), nil), "to zero")
	assert.Empty(t, log.Events(), "failed transfers emitted events")

	assert.Nil(t, l.SafeTransferFrom(ctx, user1, user2, id, amount(30), nil), "transfer error")
	assert.Equal(t, amount(70), l.BalanceOf(user1, id), "sender")
	assert.Equal(t, amount(30), l.BalanceOf(user2, id), "receiver")
	assert.Equal(t, amount(100), l.TotalSupply(id), "supply changed by transfer")

	// self transfer conserves the balance
	assert.Nil(t, l.SafeTransferFrom(ctx, user1, user1, id, amount(70), nil), "self transfer error")
	assert.Equal(t, amount(70), l.BalanceOf(user1, id), "self transfer")
}

func TestApproval(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	id := generate(l)
	ctx, _ := contextFor(minter)
	assert.Nil(t, l.Mint(ctx, user1, id, amount(10), nil), "mint error")

	ctx, log := contextFor(user1)
	assert.Equal(t, fault.ErrSelfApproval, l.SetApprovalForAll(ctx, user1, true), "self approval")
	assert.Nil(t, l.SetApprovalForAll(ctx, other, true), "approve error")
	assert.True(t, l.IsApprovedForAll(user1, other), "not approved")
	assert.False(t, l.IsApprovedForAll(other, user1), "approval is not symmetric")
	assert.Equal(t, []event.Event{
		event.ApprovalForAll{Owner: user1, Operator: other, Approved: true},
	}, log.Events(), "events")

	ctx, _ = contextFor(other)
	assert.Nil(t, l.SafeTransferFrom(ctx, user1, user2, id, amount(4), nil), "operator transfer")
	assert.Equal(t, amount(4), l.BalanceOf(user2, id), "receiver")

	ctx, _ = contextFor(user1)
	assert.Nil(t, l.SetApprovalForAll(ctx, other, false), "revoke approval error")
	ctx, _ = contextFor(other)
	assert.Equal(t, fault.ErrUnauthorised, l.SafeTransferFrom(ctx, user1, user2, id, amount(1), nil), "revoked operator")
}

func TestBatch(t *testing.T) {
	region, l := setupLedger(t)
	defer region.Close()

	a := generate(l)
	b := l.Generate([]common.Hash{amount(1)}, []common.Hash{amount(9)}, user1)
	unknown := amount(5)

	ctx, log := contextFor(minter)
	err := l.MintBatch(ctx, user1, []common.Hash{a, b}, []common.Hash{amount(1)}, nil)
	assert.Equal(t, fault.ErrLengthMismatch, err, "length mismatch")

	// one bad element rejects every element
	err = l.MintBatch(ctx, user1, []common.Hash{a, unknown}, []common.Hash{amount(1), amount(1)}, nil)
	assert.Equal(t, fault.ErrNonexistentToken, err, "batch with unknown id")
	assert.Equal(t, word.Zero, l.BalanceOf(user1, a), "partial batch mint")
	assert.Empty(t, log.Events(), "failed batch emitted event")

	// a repeated id accumulates
	err = l.MintBatch(ctx, user1, []common.Hash{a, b, a}, []common.Hash{amount(5), amount(7), amount(3)}, nil)
	assert.Nil(t, err, "batch mint error")
	assert.Equal(t, amount(8), l.BalanceOf(user1, a), "balance a")
	assert.Equal(t, amount(7), l.BalanceOf(user1, b), "balance b")
	assert.Equal(t, amount(8), l.TotalSupply(a), "supply a")
	assert.Len(t, log.Events(), 1, "one batch event")

	balances, err := l.BalanceOfBatch([]common.Address{user1, user1, user2}, []common.Hash{a, b, a})
	assert.Nil(t, err, "balance batch error")
	assert.Equal(t, []common.Hash{amount(8), amount(7), word.Zero}, balances, "balance batch")
	_, err = l.BalanceOfBatch([]common.Address{user1}, nil)
	assert.Equal(t, fault.ErrLengthMismatch, err, "balance batch mismatch")

	ctx, _ = contextFor(user1)
	err = l.SafeBatchTransferFrom(ctx, user1, user2, []common.Hash{a, a}, []common.Hash{amount(5), amount(4)}, nil)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "cumulative overdraw")
	assert.Equal(t, amount(8), l.BalanceOf(user1, a), "partial batch transfer")

	err = l.SafeBatchTransferFrom(ctx, user1, user2, []common.Hash{a, b}, []common.Hash{amount(5), amount(7)}, nil)
	assert.Nil(t, err, "batch transfer error")
	assert.Equal(t, amount(3), l.BalanceOf(user1, a), "sender a")
	assert.Equal(t, word.Zero, l.BalanceOf(user1, b), "sender b")
	assert.Equal(t, amount(7), l.BalanceOf(user2, b), "receiver b")

	ctx, _ = contextFor(burner)
	err = l.BurnBatch(ctx, user2, []common.Hash{a, b}, []common.Hash{amount(5), amount(8)})
	assert.Equal(t, fault.ErrInsufficientBalance, err, "batch overburn")
	err = l.BurnBatch(ctx, user2, []common.Hash{a, b}, []common.Hash{amount(5), amount(7)})
	assert.Nil(t, err, "batch burn error")
	assert.Equal(t, amount(3), l.TotalSupply(a), "supply a after burn")
	assert.Equal(t, word.Zero, l.TotalSupply(b), "supply b after burn")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/word"
)

// stage - new values computed before anything is written
//
// a batch may name the same id more than once so every step reads
// through the values staged by the steps before it
type stage struct {
	ledger *Ledger
	keys   []string
	values map[string]staged
}

type staged struct {
	handle storage.Handle
	key    []byte
	value  common.Hash
}

func newStage(l *Ledger) *stage {
	return &stage{
		ledger: l,
		values: make(map[string]staged),
	}
}

func (s *stage) get(h storage.Handle, prefix byte, key []byte) common.Hash {
	if v, ok := s.values[string(append([]byte{prefix}, key...))]; ok {
		return v.value
	}
	return read(h, key)
}

func (s *stage) set(h storage.Handle, prefix byte, key []byte, value common.Hash) {
	k := string(append([]byte{prefix}, key...))
	if _, ok := s.values[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.values[k] = staged{
		handle: h,
		key:    key,
		value:  value,
	}
}

const (
	balancePrefix = 'b'
	supplyPrefix  = 's'
)

func (s *stage) mint(to common.Address, id common.Hash, amount common.Hash) error {
	if word.Zero == amount {
		return fault.ErrZeroAmount
	}
	if !s.ledger.Exists(id) {
		return fault.ErrNonexistentToken
	}

	supply, err := word.Add(s.get(s.ledger.totalSupply, supplyPrefix, id[:]), amount)
	if nil != err {
		return err
	}
	key := BalanceKey(id, to)
	balance, err := word.Add(s.get(s.ledger.balances, balancePrefix, key), amount)
	if nil != err {
		return err
	}

	s.set(s.ledger.totalSupply, supplyPrefix, id[:], supply)
	s.set(s.ledger.balances, balancePrefix, key, balance)
	return nil
}

func (s *stage) burn(from common.Address, id common.Hash, amount common.Hash) error {
	if word.Zero == amount {
		return fault.ErrZeroAmount
	}

	key := BalanceKey(id, from)
	balance, err := word.Sub(s.get(s.ledger.balances, balancePrefix, key), amount)
	if nil != err {
		return fault.ErrInsufficientBalance
	}
	supply, err := word.Sub(s.get(s.ledger.totalSupply, supplyPrefix, id[:]), amount)
	if nil != err {
		return fault.ErrInsufficientBalance
	}

	s.set(s.ledger.balances, balancePrefix, key, balance)
	s.set(s.ledger.totalSupply, supplyPrefix, id[:], supply)
	return nil
}

func (s *stage) transfer(from common.Address, to common.Address, id common.Hash, amount common.Hash) error {
	if word.Zero == amount {
		return fault.ErrZeroAmount
	}

	fromKey := BalanceKey(id, from)
	fromBalance, err := word.Sub(s.get(s.ledger.balances, balancePrefix, fromKey), amount)
	if nil != err {
		return fault.ErrInsufficientBalance
	}
	s.set(s.ledger.balances, balancePrefix, fromKey, fromBalance)

	// a self transfer reads the debited value
	toKey := BalanceKey(id, to)
	toBalance, err := word.Add(s.get(s.ledger.balances, balancePrefix, toKey), amount)
	if nil != err {
		return err
	}
	s.set(s.ledger.balances, balancePrefix, toKey, toBalance)
	return nil
}

// apply - write every staged value in the order first staged
func (s *stage) apply() {
	for _, k := range s.keys {
		v := s.values[k]
		write(v.handle, v.key, v.value)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenid - derive token identifiers from their share structure
//
//   id = keccak256(abi.encode(uint256[] percents, uint256[] shareIds, address originator))
//
// The derivation is pure: the same ordered inputs always give the same
// identifier and there is no nonce.  Recording that an identifier
// exists is the ledger's job.
package tokenid

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/word"
)

var shareArguments abi.Arguments

func init() {
	array, err := abi.NewType("uint256[]", "", nil)
	if nil != err {
		fault.Panicf("tokenid: abi type error: %s", err)
	}
	address, err := abi.NewType("address", "", nil)
	if nil != err {
		fault.Panicf("tokenid: abi type error: %s", err)
	}
	shareArguments = abi.Arguments{
		{Name: "percents", Type: array},
		{Name: "shareIds", Type: array},
		{Name: "originator", Type: address},
	}
}

// Encode - the packed share structure that is hashed into an id
func Encode(percents []common.Hash, shareIds []common.Hash, originator common.Address) []byte {
	encoded, err := shareArguments.Pack(toBig(percents), toBig(shareIds), originator)
	if nil != err {
		fault.Panicf("tokenid: encode error: %s", err)
	}
	return encoded
}

// Derive - compute the token identifier
func Derive(percents []common.Hash, shareIds []common.Hash, originator common.Address) common.Hash {
	return crypto.Keccak256Hash(Encode(percents, shareIds, originator))
}

// DeriveUint64 - Derive for small integer inputs
func DeriveUint64(percents []uint64, shareIds []uint64, originator common.Address) common.Hash {
	return Derive(fromUint64(percents), fromUint64(shareIds), originator)
}

func toBig(values []common.Hash) []*big.Int {
	n := make([]*big.Int, len(values))
	for i, v := range values {
		n[i] = v.Big()
	}
	return n
}

func fromUint64(values []uint64) []common.Hash {
	words := make([]common.Hash, len(values))
	for i, v := range values {
		words[i] = word.FromUint64(v)
	}
	return words
}

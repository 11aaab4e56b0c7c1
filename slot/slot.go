// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package slot - namespaced storage locations
//
// Each upgradeable component owns one namespace.  The namespace
// string is hashed into a 256 bit base location whose low byte is
// cleared:
//
//   slot = keccak256(encode(uint256(keccak256(namespace)) - 1)) & ^0xff
//
// The cleared byte gives each component 256 field offsets that can
// never collide with another namespace's base.  Fields are appended,
// never reordered, when the logic is upgraded.
package slot

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Slot - the base location of a namespace
type Slot common.Hash

var uint256Arguments = abi.Arguments{
	{Type: mustType("uint256")},
}

func mustType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if nil != err {
		fault.Panicf("slot: abi type: %q  error: %s", name, err)
	}
	return t
}

// New - compute the slot of a namespace
func New(namespace string) (Slot, error) {
	if "" == namespace {
		return Slot{}, fault.ErrEmptyNamespace
	}
	return Compute(namespace), nil
}

// MustCompute - for package level constants
func MustCompute(namespace string) Slot {
	s, err := New(namespace)
	if nil != err {
		fault.Panicf("slot: namespace: %q  error: %s", namespace, err)
	}
	return s
}

// Compute - the slot calculation, defined for any string
func Compute(namespace string) Slot {
	h1 := crypto.Keccak256Hash([]byte(namespace))

	// subtraction wraps modulo 2^256
	n := new(uint256.Int).SetBytes32(h1[:])
	n.Sub(n, uint256.NewInt(1))

	encoded, err := uint256Arguments.Pack(n.ToBig())
	if nil != err {
		fault.Panicf("slot: namespace: %q  encode error: %s", namespace, err)
	}
	h2 := crypto.Keccak256Hash(encoded)
	h2[common.HashLength-1] = 0
	return Slot(h2)
}

// Field - the base key of the field at a fixed offset in the namespace
func (s Slot) Field(offset byte) []byte {
	key := make([]byte, common.HashLength)
	copy(key, s[:])
	key[common.HashLength-1] = offset
	return key
}

// Word - the slot as a plain word
func (s Slot) Word() common.Hash {
	return common.Hash(s)
}

// String - 0x prefixed hex for the fmt package (%s)
func (s Slot) String() string {
	return common.Hash(s).Hex()
}

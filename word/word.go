// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package word - checked arithmetic and text parsing for the 256 bit
// values shared by token identifiers, roles, storage slots and balances
//
// Values are held as big endian common.Hash so that byte comparison
// and numeric comparison agree and so that they can be used directly
// inside storage keys.
package word

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Zero - the all zero word
var Zero = common.Hash{}

// FromUint64 - small value as a word
func FromUint64(n uint64) common.Hash {
	return common.Hash(uint256.NewInt(n).Bytes32())
}

// FromBytes - convert and validate a big endian byte slice
func FromBytes(buffer []byte) (common.Hash, error) {
	if common.HashLength != len(buffer) {
		return Zero, fault.ErrNotWord
	}
	return common.BytesToHash(buffer), nil
}

// Uint64 - value if it fits in 64 bits
func Uint64(w common.Hash) (uint64, bool) {
	n := new(uint256.Int).SetBytes32(w[:])
	if !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// Add - sum, failing if it exceeds 2^256-1
func Add(a common.Hash, b common.Hash) (common.Hash, error) {
	x := new(uint256.Int).SetBytes32(a[:])
	y := new(uint256.Int).SetBytes32(b[:])
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return Zero, fault.ErrValueOverflow
	}
	return common.Hash(sum.Bytes32()), nil
}

// Sub - difference, failing if it would be negative
func Sub(a common.Hash, b common.Hash) (common.Hash, error) {
	x := new(uint256.Int).SetBytes32(a[:])
	y := new(uint256.Int).SetBytes32(b[:])
	difference, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return Zero, fault.ErrValueUnderflow
	}
	return common.Hash(difference.Bytes32()), nil
}

// Parse - 0x prefixed hex of up to 64 digits or a decimal integer
func Parse(s string) (common.Hash, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if 0 == len(digits) || len(digits) > 2*common.HashLength {
			return Zero, fault.ErrNotWord
		}
		if 0 != len(digits)%2 {
			digits = "0" + digits
		}
		buffer, err := hexutil.Decode("0x" + digits)
		if nil != err {
			return Zero, fault.ErrNotWord
		}
		return common.BytesToHash(buffer), nil
	}

	if "" == s {
		return Zero, fault.ErrNotWord
	}
	n, err := uint256.FromDecimal(s)
	if nil != err {
		if uint256.ErrBig256Range == err {
			return Zero, fault.ErrValueOverflow
		}
		return Zero, fault.ErrNotWord
	}
	return common.Hash(n.Bytes32()), nil
}

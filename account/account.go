// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account addresses
//
// An address is the 20 byte identifier of a caller or balance holder.
// The all zero address is reserved: it is the "from" of a mint and the
// "to" of a burn and can never hold a balance.
package account

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Zero - the reserved zero account
var Zero = common.Address{}

// FromBytes - convert and validate a byte slice
func FromBytes(buffer []byte) (common.Address, error) {
	if common.AddressLength != len(buffer) {
		return Zero, fault.ErrNotAddress
	}
	return common.BytesToAddress(buffer), nil
}

// Parse - decode 0x prefixed hex text, any letter case
func Parse(s string) (common.Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Zero, fault.ErrNotAddress
	}
	if !common.IsHexAddress(s) {
		return Zero, fault.ErrNotAddress
	}
	return common.HexToAddress(s), nil
}
